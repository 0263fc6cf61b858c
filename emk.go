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

// Transposition is a swap of two positions in a caller-held buffer.
type Transposition struct {
	X, Y int
}

// EMK produces the Eades-McKay revolving door order of the k-subsets of
// n elements as a stream of transpositions. The caller owns a buffer of
// n slots whose first k slots are the selected ones and swaps the two
// positions of every move; each move exchanges one selected slot with
// one unselected slot, and the C(n, k) - 1 moves visit every k-subset
// exactly once. Nothing is produced unless 0 < k < n.
type EMK struct {
	m *callstack.Machine[Transposition]
}

func NewEMK(n, k int) *EMK {
	if k <= 0 || k >= n {
		return &EMK{m: callstack.Empty[Transposition]()}
	}
	return &EMK{m: callstack.New(emkForward, n, k)}
}

// emkForward emits the moves of the list for n and k, emkBackward the
// same list walked from its end, which swaps both the order of the
// moves and the two positions of every move. The two routines are one
// recurrence for both parities of k.
func emkForward(b *callstack.Body[Transposition], n, k int) {
	switch k {
	case 0:
		return
	case 1:
		b.Run(0, n-1, 1, func(i int) Transposition { return Transposition{i, i + 1} })
		return
	}
	if k < n-1 {
		b.Call(emkForward, n-1, k)
		b.Emit(Transposition{n - 2, n - 1})
		b.Call(emkBackward, n-2, k-1)
	} else {
		b.Emit(Transposition{n - 2, n - 1})
	}
	b.Emit(Transposition{k - 2, n - 2})
	b.Call(emkForward, n-2, k-2)
}

func emkBackward(b *callstack.Body[Transposition], n, k int) {
	switch k {
	case 0:
		return
	case 1:
		b.Run(n-1, 0, -1, func(i int) Transposition { return Transposition{i, i - 1} })
		return
	}
	b.Call(emkBackward, n-2, k-2)
	b.Emit(Transposition{n - 2, k - 2})
	if k < n-1 {
		b.Call(emkForward, n-2, k-1)
		b.Emit(Transposition{n - 1, n - 2})
		b.Call(emkBackward, n-1, k)
	} else {
		b.Emit(Transposition{n - 1, n - 2})
	}
}

func (e *EMK) Next() bool {
	return e.m.Next()
}

// Move returns the two positions to swap.
func (e *EMK) Move() (int, int) {
	t := e.m.Value()
	return t.X, t.Y
}

func (e *EMK) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for e.m.Next() {
			t := e.m.Value()
			if !yield(t.X, t.Y) {
				return
			}
		}
	}
}

// Revolving applies the EMK moves to its own buffer of n values, the
// first k of which are one and the rest zero, and yields the buffer
// after every move. It always yields the initial buffer, so for k <= 0
// or k >= n there is exactly one combination.
type Revolving[T any] struct {
	emk     *EMK
	buf     []T
	started bool
	done    bool
}

func NewRevolving[T any](n, k int, zero, one T) *Revolving[T] {
	if n < 0 {
		n = 0
	}
	buf := make([]T, n)
	for i := range buf {
		if i < k {
			buf[i] = one
		} else {
			buf[i] = zero
		}
	}
	return &Revolving[T]{
		emk: NewEMK(n, k),
		buf: buf,
	}
}

func (r *Revolving[T]) Next() bool {
	if r.done {
		return false
	}
	if !r.started {
		r.started = true
		return true
	}
	if !r.emk.Next() {
		r.done = true
		return false
	}
	x, y := r.emk.Move()
	r.buf[x], r.buf[y] = r.buf[y], r.buf[x]
	return true
}

// Get returns the current buffer.
func (r *Revolving[T]) Get() []T {
	return r.buf
}

func (r *Revolving[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for r.Next() {
			if !yield(r.buf) {
				return
			}
		}
	}
}
