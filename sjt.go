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

// SJT produces the Steinhaus-Johnson-Trotter order of the permutations
// of n items as n! - 1 adjacent transpositions. A move x tells the
// caller to swap positions x and x+1 of its buffer. Nothing is produced
// for n < 2.
//
// The recursive definition sweeps the largest item across the
// permutations of the n-1 smaller ones, alternating the direction of
// the sweep and applying one move of the smaller list between two
// sweeps. Every level keeps the position of its largest item, how many
// steps of the current sweep are left and the direction of the sweep;
// level 2 contributes a single move.
type SJT struct {
	n int
	// indexed by level size
	pos  []int
	left []int
	down []bool
	// set once level 2 produced its move
	baseUsed bool
	move     int
	done     bool
}

func NewSJT(n int) *SJT {
	if n < 2 {
		return &SJT{n: n, done: true}
	}
	s := &SJT{
		n:    n,
		pos:  make([]int, n+1),
		left: make([]int, n+1),
		down: make([]bool, n+1),
	}
	for size := 3; size <= n; size++ {
		s.pos[size] = size - 1
		s.left[size] = size - 1
		s.down[size] = true
	}
	return s
}

func (s *SJT) Next() bool {
	if s.done {
		return false
	}
	j := s.n
	for j > 2 && s.left[j] == 0 {
		j--
	}
	var x int
	if j == 2 {
		if s.baseUsed {
			// the next move would return to the first permutation
			s.done = true
			return false
		}
		s.baseUsed = true
		x = 0
	} else {
		if s.down[j] {
			s.pos[j]--
			x = s.pos[j]
		} else {
			x = s.pos[j]
			s.pos[j]++
		}
		s.left[j]--
	}
	// The move of level j becomes a move of every larger level, whose
	// largest items sit at one of the ends. Those levels start their
	// next sweep in the opposite direction.
	for size := j + 1; size <= s.n; size++ {
		if s.pos[size] == 0 {
			x++
		}
		s.left[size] = size - 1
		s.down[size] = !s.down[size]
	}
	s.move = x
	return true
}

// Pos returns the left position of the adjacent pair to swap.
func (s *SJT) Pos() int {
	return s.move
}

func (s *SJT) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for s.Next() {
			if !yield(s.move) {
				return
			}
		}
	}
}

// PlainChanges produces the same kind of adjacent transpositions as SJT
// from the textbook recursion, each level being a closure that sweeps
// its largest item between the moves of the level below.
func PlainChanges(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		plainChanges(n, yield)
	}
}

func plainChanges(n int, yield func(int) bool) bool {
	if n < 2 {
		return true
	}
	down := true
	sweep := func() bool {
		if down {
			for i := n - 2; i >= 0; i-- {
				if !yield(i) {
					return false
				}
			}
		} else {
			for i := 0; i < n-1; i++ {
				if !yield(i) {
					return false
				}
			}
		}
		return true
	}
	if !sweep() {
		return false
	}
	return plainChanges(n-1, func(x int) bool {
		if down {
			// the largest item is in front of the smaller ones
			x++
		}
		if !yield(x) {
			return false
		}
		down = !down
		return sweep()
	})
}
