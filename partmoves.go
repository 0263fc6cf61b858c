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

type blockMove struct {
	elem, block int
}

// PartitionMoves lists the partitions of {1, ..., n} into exactly k
// blocks as a Gray code (Ruskey's ordering). The caller keeps a
// restricted growth string that starts as 0^(n-k) 0 1 ... k-1 and, for
// every move, puts an element into another block; each partition with
// k blocks is visited once, in S(n, k) - 1 moves. Nothing is produced
// unless 1 < k < n.
type PartitionMoves struct {
	m *callstack.Machine[blockMove]
}

func NewPartitionMoves(n, k int) *PartitionMoves {
	switch {
	case k <= 1 || k >= n:
		return &PartitionMoves{m: callstack.Empty[blockMove]()}
	case k%2 == 0:
		return &PartitionMoves{m: callstack.New(partGen0Even, n, k)}
	default:
		return &PartitionMoves{m: callstack.New(partGen0Odd, n, k)}
	}
}

// The routines come in pairs, genX producing a list and negX the same
// list backwards. The 0 lists start from the initial string of their
// (n, k), the 1 lists from the string with element k moved to block
// k-1 relative to it. Even and odd k recurse differently.

func partGen0Even(b *callstack.Body[blockMove], n, k int) {
	if k > 2 {
		b.Call(partGen0Odd, n-1, k-1)
	}
	b.Emit(blockMove{n - 1, k - 1})
	if k < n-1 {
		b.Call(partGen1Even, n-1, k)
		b.Emit(blockMove{n, k - 2})
		b.Call(partNeg1Even, n-1, k)
		for i := k - 3; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Call(partGen1Even, n-1, k)
			b.Emit(blockMove{n, i - 1})
			b.Call(partNeg1Even, n-1, k)
		}
	} else {
		b.Emit(blockMove{n, k - 2})
		for i := k - 3; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i - 1})
		}
	}
}

func partNeg0Even(b *callstack.Body[blockMove], n, k int) {
	if k < n-1 {
		for i := 1; i < k-2; i += 2 {
			b.Call(partGen1Even, n-1, k)
			b.Emit(blockMove{n, i})
			b.Call(partNeg1Even, n-1, k)
			b.Emit(blockMove{n, i + 1})
		}
		b.Call(partGen1Even, n-1, k)
		b.Emit(blockMove{n, k - 1})
		b.Call(partNeg1Even, n-1, k)
	} else {
		for i := 1; i < k-2; i += 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i + 1})
		}
		b.Emit(blockMove{n, k - 1})
	}
	b.Emit(blockMove{n - 1, 0})
	if k > 3 {
		b.Call(partNeg0Odd, n-1, k-1)
	}
}

func partGen1Even(b *callstack.Body[blockMove], n, k int) {
	if k > 3 {
		b.Call(partGen1Odd, n-1, k-1)
	}
	b.Emit(blockMove{k, k - 1})
	if k < n-1 {
		b.Call(partNeg1Even, n-1, k)
		b.Emit(blockMove{n, k - 2})
		b.Call(partGen1Even, n-1, k)
		for i := k - 3; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Call(partNeg1Even, n-1, k)
			b.Emit(blockMove{n, i - 1})
			b.Call(partGen1Even, n-1, k)
		}
	} else {
		b.Emit(blockMove{n, k - 2})
		for i := k - 3; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i - 1})
		}
	}
}

func partNeg1Even(b *callstack.Body[blockMove], n, k int) {
	if k < n-1 {
		for i := 1; i < k-2; i += 2 {
			b.Call(partNeg1Even, n-1, k)
			b.Emit(blockMove{n, i})
			b.Call(partGen1Even, n-1, k)
			b.Emit(blockMove{n, i + 1})
		}
		b.Call(partNeg1Even, n-1, k)
		b.Emit(blockMove{n, k - 1})
		b.Call(partGen1Even, n-1, k)
	} else {
		for i := 1; i < k-2; i += 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i + 1})
		}
		b.Emit(blockMove{n, k - 1})
	}
	b.Emit(blockMove{k, 0})
	if k > 3 {
		b.Call(partNeg1Odd, n-1, k-1)
	}
}

func partGen0Odd(b *callstack.Body[blockMove], n, k int) {
	b.Call(partGen1Even, n-1, k-1)
	b.Emit(blockMove{k, k - 1})
	if k < n-1 {
		b.Call(partNeg1Odd, n-1, k)
		for i := k - 2; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Call(partGen1Odd, n-1, k)
			b.Emit(blockMove{n, i - 1})
			b.Call(partNeg1Odd, n-1, k)
		}
	} else {
		for i := k - 2; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i - 1})
		}
	}
}

func partNeg0Odd(b *callstack.Body[blockMove], n, k int) {
	if k < n-1 {
		for i := 1; i < k-1; i += 2 {
			b.Call(partGen1Odd, n-1, k)
			b.Emit(blockMove{n, i})
			b.Call(partNeg1Odd, n-1, k)
			b.Emit(blockMove{n, i + 1})
		}
		b.Call(partGen1Odd, n-1, k)
	} else {
		for i := 1; i < k-1; i += 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i + 1})
		}
	}
	b.Emit(blockMove{k, 0})
	b.Call(partNeg1Even, n-1, k-1)
}

func partGen1Odd(b *callstack.Body[blockMove], n, k int) {
	b.Call(partGen0Even, n-1, k-1)
	b.Emit(blockMove{n - 1, k - 1})
	if k < n-1 {
		b.Call(partGen1Odd, n-1, k)
		for i := k - 2; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Call(partNeg1Odd, n-1, k)
			b.Emit(blockMove{n, i - 1})
			b.Call(partGen1Odd, n-1, k)
		}
	} else {
		for i := k - 2; i > 0; i -= 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i - 1})
		}
	}
}

func partNeg1Odd(b *callstack.Body[blockMove], n, k int) {
	if k < n-1 {
		for i := 1; i < k-1; i += 2 {
			b.Call(partNeg1Odd, n-1, k)
			b.Emit(blockMove{n, i})
			b.Call(partGen1Odd, n-1, k)
			b.Emit(blockMove{n, i + 1})
		}
		b.Call(partNeg1Odd, n-1, k)
	} else {
		for i := 1; i < k-1; i += 2 {
			b.Emit(blockMove{n, i})
			b.Emit(blockMove{n, i + 1})
		}
	}
	b.Emit(blockMove{n - 1, 0})
	b.Call(partNeg0Even, n-1, k-1)
}

func (p *PartitionMoves) Next() bool {
	return p.m.Next()
}

// Move returns the element (1-based) to move and the block (0-based)
// it goes to.
func (p *PartitionMoves) Move() (int, int) {
	mv := p.m.Value()
	return mv.elem, mv.block
}

func (p *PartitionMoves) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for p.m.Next() {
			mv := p.m.Value()
			if !yield(mv.elem, mv.block) {
				return
			}
		}
	}
}
