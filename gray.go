// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ecgen

import (
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// BinaryToGray returns the reflected binary Gray code of x.
func BinaryToGray[T constraints.Unsigned](x T) T {
	return x ^ (x >> 1)
}

// GrayToBinary inverts BinaryToGray.
func GrayToBinary[T constraints.Unsigned](g T) T {
	x := g
	for g >>= 1; g != 0; g >>= 1 {
		x ^= g
	}
	return x
}

// GrayCode walks the 2^n codes of n bits in reflected order, starting
// from 0. Consecutive codes differ in exactly one bit. n must be in
// [1, 64], otherwise nothing is produced.
type GrayCode struct {
	i, last uint64
	code    uint64
	started bool
	done    bool
}

func NewGrayCode(n int) *GrayCode {
	if n <= 0 || n > 64 {
		return &GrayCode{done: true}
	}
	return &GrayCode{last: maskOfWidth(n)}
}

func (g *GrayCode) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
	} else if g.i == g.last {
		g.done = true
		return false
	} else {
		g.i++
	}
	g.code = BinaryToGray(g.i)
	return true
}

// Code returns the current code.
func (g *GrayCode) Code() uint64 {
	return g.code
}

// Rank returns the position of the current code in the sequence.
func (g *GrayCode) Rank() uint64 {
	return g.i
}

func (g *GrayCode) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for g.Next() {
			if !yield(g.code) {
				return
			}
		}
	}
}

// GrayFlips produces the 2^n - 1 bit positions that turn each n-bit
// reflected Gray code into the next one, starting from 0.
type GrayFlips struct {
	i, last uint64
	bit     int
	done    bool
}

func NewGrayFlips(n int) *GrayFlips {
	if n <= 0 || n > 64 {
		return &GrayFlips{done: true}
	}
	return &GrayFlips{last: maskOfWidth(n)}
}

func (f *GrayFlips) Next() bool {
	if f.done || f.i == f.last {
		f.done = true
		return false
	}
	f.i++
	f.bit = bits.TrailingZeros64(f.i)
	return true
}

// Bit returns the position of the bit to flip.
func (f *GrayFlips) Bit() int {
	return f.bit
}

func (f *GrayFlips) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for f.Next() {
			if !yield(f.bit) {
				return
			}
		}
	}
}

// GraySubsets walks all subsets of items, each one obtained from the
// previous by adding or removing a single element. The first subset is
// the empty one; members keep the order in which they were added.
type GraySubsets[T any] struct {
	items   []T
	flips   *GrayFlips
	code    uint64
	current []T
	// idx[i] is the index in items of current[i]
	idx     []int
	started bool
	done    bool
	added   bool
	changed int
}

// NewGraySubsets returns a walk over the subsets of items, which must
// hold at most 64 elements. items is not copied.
func NewGraySubsets[T any](items []T) *GraySubsets[T] {
	if len(items) > 64 {
		return &GraySubsets[T]{done: true}
	}
	return &GraySubsets[T]{
		items:   items,
		flips:   NewGrayFlips(len(items)),
		current: make([]T, 0, len(items)),
		idx:     make([]int, 0, len(items)),
	}
}

func (s *GraySubsets[T]) Next() bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		s.changed = -1
		return true
	}
	if !s.flips.Next() {
		s.done = true
		return false
	}
	bit := s.flips.Bit()
	s.code ^= uint64(1) << bit
	s.changed = bit
	s.added = s.code&(uint64(1)<<bit) != 0
	if s.added {
		s.current = append(s.current, s.items[bit])
		s.idx = append(s.idx, bit)
		return true
	}
	for i, j := range s.idx {
		if j != bit {
			continue
		}
		copy(s.current[i:], s.current[i+1:])
		copy(s.idx[i:], s.idx[i+1:])
		var zero T
		s.current[len(s.current)-1] = zero
		s.current = s.current[:len(s.current)-1]
		s.idx = s.idx[:len(s.idx)-1]
		break
	}
	return true
}

// Subset returns the current subset.
func (s *GraySubsets[T]) Subset() []T {
	return s.current
}

// Mask returns the current subset as a bitmask over the indices of
// items.
func (s *GraySubsets[T]) Mask() uint64 {
	return s.code
}

// Changed returns the index in items of the element added or removed by
// the last step, and whether it was added. It returns -1 for the first
// (empty) subset.
func (s *GraySubsets[T]) Changed() (int, bool) {
	return s.changed, s.added
}

func (s *GraySubsets[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for s.Next() {
			if !yield(s.current) {
				return
			}
		}
	}
}
