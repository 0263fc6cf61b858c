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

	"github.com/krnowak/ecgen/internal/callstack"
)

// SetBipart splits {1, ..., n} into two non-empty blocks in every
// possible way. The plain variant walks the masks 1 to 2^n - 2, so each
// split is produced twice, once for each order of the blocks. The
// variant created with NewSetBipartK only produces splits whose first
// block holds k elements.
type SetBipart struct {
	n     int
	mask  uint64
	last  uint64
	comb  *CombGen
	first []int
	other []int
	done  bool
}

// NewSetBipart returns the ordered bipartitions of {1, ..., n}, for
// 2 <= n <= 64.
func NewSetBipart(n int) *SetBipart {
	if n <= 1 || n > 64 {
		return &SetBipart{n: n, done: true}
	}
	return &SetBipart{
		n:     n,
		last:  maskOfWidth(n) - 1,
		first: make([]int, 0, n),
		other: make([]int, 0, n),
	}
}

// NewSetBipartK returns the bipartitions of {1, ..., n} whose first
// block has k elements, for 0 < k < n <= 64.
func NewSetBipartK(n, k int) *SetBipart {
	if k <= 0 || k >= n || n > 64 {
		return &SetBipart{n: n, done: true}
	}
	return &SetBipart{
		n:     n,
		comb:  NewCombGen(n, k),
		first: make([]int, 0, k),
		other: make([]int, 0, n-k),
	}
}

func (b *SetBipart) Next() bool {
	if b.done {
		return false
	}
	if b.comb != nil {
		if !b.comb.Next() {
			b.done = true
			return false
		}
		b.mask = b.comb.Mask()
	} else {
		if b.mask == b.last {
			b.done = true
			return false
		}
		b.mask++
	}
	b.first = b.first[:0]
	b.other = b.other[:0]
	for i := 0; i < b.n; i++ {
		if b.mask&(uint64(1)<<i) != 0 {
			b.first = append(b.first, i+1)
		} else {
			b.other = append(b.other, i+1)
		}
	}
	return true
}

// Blocks returns the two blocks of the current bipartition, both in
// increasing order.
func (b *SetBipart) Blocks() ([]int, []int) {
	return b.first, b.other
}

// Mask returns the current first block as a mask, bit i standing for
// element i+1.
func (b *SetBipart) Mask() uint64 {
	return b.mask
}

func (b *SetBipart) All() iter.Seq2[[]int, []int] {
	return func(yield func([]int, []int) bool) {
		for b.Next() {
			if !yield(b.first, b.other) {
				return
			}
		}
	}
}

// BipartMoves lists the unordered bipartitions of {1, ..., n} as a Gray
// code. The starting split has 1, ..., n-1 in one block and n in the
// other; every move names a single element that switches blocks. There
// are S(n, 2) - 1 moves, none for n < 3.
type BipartMoves struct {
	m *callstack.Machine[int]
}

func NewBipartMoves(n int) *BipartMoves {
	if n < 3 {
		return &BipartMoves{m: callstack.Empty[int]()}
	}
	return &BipartMoves{m: callstack.New(bipartGen0, n, 0)}
}

func bipartGen0(b *callstack.Body[int], n, _ int) {
	if n < 3 {
		return
	}
	b.Emit(n - 1)
	b.Call(bipartGen1, n-1, 0)
	b.Emit(n)
	b.Call(bipartNeg1, n-1, 0)
}

func bipartGen1(b *callstack.Body[int], n, _ int) {
	if n < 3 {
		return
	}
	b.Emit(2)
	b.Call(bipartNeg1, n-1, 0)
	b.Emit(n)
	b.Call(bipartGen1, n-1, 0)
}

// bipartNeg1 produces the moves of bipartGen1 in reverse order.
func bipartNeg1(b *callstack.Body[int], n, _ int) {
	if n < 3 {
		return
	}
	b.Call(bipartNeg1, n-1, 0)
	b.Emit(n)
	b.Call(bipartGen1, n-1, 0)
	b.Emit(2)
}

func (b *BipartMoves) Next() bool {
	return b.m.Next()
}

// Element returns the element (1-based) that switches blocks.
func (b *BipartMoves) Element() int {
	return b.m.Value()
}

func (b *BipartMoves) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for b.m.Next() {
			if !yield(b.m.Value()) {
				return
			}
		}
	}
}
