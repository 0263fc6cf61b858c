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

// Ehrlich lists the permutations of 1, ..., n with Knuth's Algorithm P.
// Consecutive permutations differ by a swap of two adjacent items; the
// generator owns the permutation and applies the swaps itself.
type Ehrlich struct {
	n    int
	perm []int
	// 1-based, per item count j
	c       []int
	o       []int
	started bool
	done    bool
}

// NewEhrlich returns the generator of the n! permutations of 1, ..., n.
// For n = 0 a single empty permutation is produced, for negative n
// nothing.
func NewEhrlich(n int) *Ehrlich {
	if n < 0 {
		return &Ehrlich{n: n, done: true}
	}
	e := &Ehrlich{
		n:    n,
		perm: make([]int, n),
		c:    make([]int, n+1),
		o:    make([]int, n+1),
	}
	for i := range e.perm {
		e.perm[i] = i + 1
	}
	for j := range e.o {
		e.o[j] = 1
	}
	return e
}

func (e *Ehrlich) Next() bool {
	if e.done {
		return false
	}
	if !e.started {
		e.started = true
		return true
	}
	j, s := e.n, 0
	for j >= 1 {
		q := e.c[j] + e.o[j]
		if q == j {
			if j == 1 {
				break
			}
			s++
		}
		if q < 0 || q == j {
			e.o[j] = -e.o[j]
			j--
			continue
		}
		x, y := j-e.c[j]+s-1, j-q+s-1
		e.perm[x], e.perm[y] = e.perm[y], e.perm[x]
		e.c[j] = q
		return true
	}
	e.done = true
	return false
}

// Get returns the current permutation. The slice is owned by the
// generator and changes with the next call to Next.
func (e *Ehrlich) Get() []int {
	return e.perm
}

func (e *Ehrlich) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for e.Next() {
			if !yield(e.perm) {
				return
			}
		}
	}
}

// StarTranspositions lists the permutations of n items as n! - 1 star
// transpositions: each index x tells the caller to swap positions 0
// and x of its buffer. Nothing is produced for n < 2.
type StarTranspositions struct {
	n     int
	perm  []int
	state []int
	idx   int
	done  bool
}

func NewStarTranspositions(n int) *StarTranspositions {
	if n < 2 {
		return &StarTranspositions{n: n, done: true}
	}
	st := &StarTranspositions{
		n:     n,
		perm:  make([]int, n),
		state: make([]int, n+1),
	}
	for i := range st.perm {
		st.perm[i] = i
	}
	return st
}

func (st *StarTranspositions) Next() bool {
	if st.done {
		return false
	}
	i := 1
	for {
		if st.state[i] == i {
			st.state[i] = 0
			i++
		}
		if st.state[i] < i {
			break
		}
	}
	if i == st.n {
		st.done = true
		return false
	}
	st.state[i]++
	st.idx = st.perm[i]
	// reverse perm[1:i]
	for lo, hi := 1, i-1; lo < hi; lo, hi = lo+1, hi-1 {
		st.perm[lo], st.perm[hi] = st.perm[hi], st.perm[lo]
	}
	return true
}

// Index returns the position to swap with position 0.
func (st *StarTranspositions) Index() int {
	return st.idx
}

func (st *StarTranspositions) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for st.Next() {
			if !yield(st.idx) {
				return
			}
		}
	}
}
