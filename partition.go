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
)

// SetPartition lists the partitions of a set of n elements as
// restricted growth strings in lexicographic order. In a restricted
// growth string a, a[0] is 0 and every a[j] is at most one more than
// the largest of a[0], ..., a[j-1]; element j+1 belongs to block a[j].
type SetPartition struct {
	n int
	// k < 0 means any number of blocks
	k int
	a []int
	// mx[i] is the largest of a[0], ..., a[i]
	mx      []int
	started bool
	done    bool
}

// NewSetPartition returns the generator of all Bell(n) restricted
// growth strings of length n, starting with all zeros. For n = 0 a
// single empty string is produced.
func NewSetPartition(n int) *SetPartition {
	if n < 0 {
		return &SetPartition{n: n, k: -1, done: true}
	}
	p := &SetPartition{
		n:  n,
		k:  -1,
		a:  make([]int, n),
		mx: make([]int, n),
	}
	return p
}

// NewSetPartitionK returns the generator of the S(n, k) restricted
// growth strings of length n using exactly k labels. The first one is
// 0^(n-k) 0 1 ... k-1.
func NewSetPartitionK(n, k int) *SetPartition {
	if n < 0 || k < 0 || k > n || (k == 0) != (n == 0) {
		return &SetPartition{n: n, k: k, done: true}
	}
	p := &SetPartition{
		n:  n,
		k:  k,
		a:  make([]int, n),
		mx: make([]int, n),
	}
	for i := n - k; i < n; i++ {
		p.a[i] = i - (n - k)
	}
	p.updateMax(0)
	return p
}

func (p *SetPartition) updateMax(from int) {
	for i := from; i < p.n; i++ {
		p.mx[i] = p.a[i]
		if i > 0 && p.mx[i-1] > p.mx[i] {
			p.mx[i] = p.mx[i-1]
		}
	}
}

func (p *SetPartition) Next() bool {
	if p.done {
		return false
	}
	if !p.started {
		p.started = true
		return true
	}
	for j := p.n - 1; j >= 1; j-- {
		v := p.a[j] + 1
		if v > p.mx[j-1]+1 {
			continue
		}
		top := max(p.mx[j-1], v)
		need := 0
		if p.k >= 0 {
			if v >= p.k {
				continue
			}
			// labels still missing after position j
			need = p.k - 1 - top
			if need > p.n-1-j {
				continue
			}
		}
		p.a[j] = v
		// The smallest tail is all zeros followed by the missing
		// labels in increasing order.
		for i := j + 1; i < p.n; i++ {
			if p.n-i <= need {
				p.a[i] = top + 1 + need - (p.n - i)
			} else {
				p.a[i] = 0
			}
		}
		p.updateMax(j)
		return true
	}
	p.done = true
	return false
}

// Get returns the current restricted growth string. The slice is owned
// by the generator and changes with the next call to Next.
func (p *SetPartition) Get() []int {
	return p.a
}

func (p *SetPartition) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for p.Next() {
			if !yield(p.a) {
				return
			}
		}
	}
}

// Blocks renders a restricted growth string as its blocks of 1-based
// elements.
func Blocks(rg []int) [][]int {
	var blocks [][]int
	for i, b := range rg {
		for len(blocks) <= b {
			blocks = append(blocks, nil)
		}
		blocks[b] = append(blocks[b], i+1)
	}
	return blocks
}
