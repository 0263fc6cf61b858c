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
)

// CombGen walks the n-bit masks with exactly k bits set in increasing
// numeric order, using Gosper's hack for the successor. Consecutive
// masks keep their popcount but may differ in more than two bits, 0110
// is followed by 1001. EMK and Revolving give a minimal change order.
type CombGen struct {
	n, k    int
	mask    uint64
	last    uint64
	idxs    []int
	started bool
	done    bool
}

// NewCombGen returns a generator of the k-subsets of {0, ..., n-1}.
// It produces nothing unless 0 < k <= n <= 64.
func NewCombGen(n, k int) *CombGen {
	if k <= 0 || k > n || n > 64 {
		return &CombGen{n: n, k: k, done: true}
	}
	low := maskOfWidth(k)
	return &CombGen{
		n:    n,
		k:    k,
		mask: low,
		last: low << (n - k),
		idxs: make([]int, 0, k),
	}
}

// NCombs returns the number of masks the generator produces.
func (g *CombGen) NCombs() uint64 {
	if g.k <= 0 || g.k > g.n || g.n > 64 {
		return 0
	}
	return Binomial(g.n, g.k)
}

func (g *CombGen) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
	} else if g.mask == g.last {
		g.done = true
		g.idxs = g.idxs[:0]
		return false
	} else {
		g.mask = gosperNext(g.mask)
	}
	g.idxs = g.idxs[:0]
	for m := g.mask; m != 0; m &= m - 1 {
		g.idxs = append(g.idxs, bits.TrailingZeros64(m))
	}
	return true
}

// gosperNext returns the smallest integer above x with the same number
// of set bits. x must not be the largest such value of its width.
func gosperNext(x uint64) uint64 {
	t := x & -x
	y := x + t
	// (x &^ y) / t, t being a power of two
	return ((x&^y)>>bits.TrailingZeros64(t))>>1 | y
}

// Mask returns the current mask.
func (g *CombGen) Mask() uint64 {
	return g.mask
}

// Get returns the positions of the set bits of the current mask in
// increasing order.
func (g *CombGen) Get() []int {
	return g.idxs
}

func (g *CombGen) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for g.Next() {
			if !yield(g.mask) {
				return
			}
		}
	}
}
