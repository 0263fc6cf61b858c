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

// Package callstack runs recursive generator definitions on an
// explicit stack.
//
// A Routine describes one invocation by recording its body: values to
// emit, runs of values and calls to other routines. The Machine
// expands a body only when the invocation is entered and produces the
// emitted values one at a time, so the depth of the stack is bounded by
// the depth of the recursion and nothing else is kept around.
package callstack

// Routine records the body of an invocation with arguments n and k.
type Routine[T any] func(b *Body[T], n, k int)

type stepKind int

const (
	stepEmit stepKind = iota
	stepRun
	stepCall
)

type step[T any] struct {
	kind stepKind
	val  T
	// run
	from, to, stride int
	at               func(int) T
	// call
	r    Routine[T]
	n, k int
}

// Body collects the steps of a single invocation.
type Body[T any] struct {
	steps []step[T]
}

// Emit appends a single value.
func (b *Body[T]) Emit(v T) {
	b.steps = append(b.steps, step[T]{kind: stepEmit, val: v})
}

// Run appends the values at(i) for i going from "from" towards "to"
// (exclusive) in increments of stride. A zero stride or an empty range
// emits nothing.
func (b *Body[T]) Run(from, to, stride int, at func(int) T) {
	if stride == 0 || (stride > 0 && from >= to) || (stride < 0 && from <= to) {
		return
	}
	b.steps = append(b.steps, step[T]{
		kind:   stepRun,
		from:   from,
		to:     to,
		stride: stride,
		at:     at,
	})
}

// Call appends an invocation of r with n and k.
func (b *Body[T]) Call(r Routine[T], n, k int) {
	b.steps = append(b.steps, step[T]{kind: stepCall, r: r, n: n, k: k})
}

type frame[T any] struct {
	steps  []step[T]
	pc     int
	inRun  bool
	cursor int
}

// Machine produces the values emitted by a routine and everything it
// calls, in order.
type Machine[T any] struct {
	stack []frame[T]
	cur   T
	done  bool
}

// New returns a machine that will run r with n and k.
func New[T any](r Routine[T], n, k int) *Machine[T] {
	m := &Machine[T]{}
	m.push(r, n, k)
	return m
}

// Empty returns a machine that produces nothing.
func Empty[T any]() *Machine[T] {
	return &Machine[T]{done: true}
}

func (m *Machine[T]) push(r Routine[T], n, k int) {
	b := Body[T]{}
	r(&b, n, k)
	if len(b.steps) == 0 {
		return
	}
	m.stack = append(m.stack, frame[T]{steps: b.steps})
}

func (m *Machine[T]) pop() {
	m.stack[len(m.stack)-1] = frame[T]{}
	m.stack = m.stack[:len(m.stack)-1]
}

// Next advances to the next emitted value. It returns false once the
// outermost routine has returned.
func (m *Machine[T]) Next() bool {
	if m.done {
		return false
	}
	for len(m.stack) > 0 {
		f := &m.stack[len(m.stack)-1]
		if f.pc == len(f.steps) {
			m.pop()
			continue
		}
		s := &f.steps[f.pc]
		switch s.kind {
		case stepEmit:
			f.pc++
			m.cur = s.val
			return true
		case stepRun:
			if !f.inRun {
				f.inRun = true
				f.cursor = s.from
			}
			if (s.stride > 0 && f.cursor < s.to) || (s.stride < 0 && f.cursor > s.to) {
				m.cur = s.at(f.cursor)
				f.cursor += s.stride
				return true
			}
			f.inRun = false
			f.pc++
		case stepCall:
			f.pc++
			r, n, k := s.r, s.n, s.k
			if f.pc == len(f.steps) {
				// tail call, the caller has nothing left to do
				m.pop()
			}
			m.push(r, n, k)
		}
	}
	m.done = true
	var zero T
	m.cur = zero
	return false
}

// Value returns the value produced by the last successful Next.
func (m *Machine[T]) Value() T {
	return m.cur
}

// Depth returns the number of live frames.
func (m *Machine[T]) Depth() int {
	return len(m.stack)
}
