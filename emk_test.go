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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/krnowak/ecgen/internal/strset"
)

func collectEMK(n, k int) []Transposition {
	var moves []Transposition
	for x, y := range NewEMK(n, k).All() {
		moves = append(moves, Transposition{x, y})
	}
	return moves
}

func TestEMKMoves(t *testing.T) {
	type testcase struct {
		n, k  int
		moves []Transposition
	}
	tcs := []testcase{
		{n: 4, k: 0, moves: nil},
		{n: 4, k: 4, moves: nil},
		{n: 3, k: 5, moves: nil},
		{n: 2, k: 1, moves: []Transposition{{0, 1}}},
		{n: 4, k: 1, moves: []Transposition{{0, 1}, {1, 2}, {2, 3}}},
		{n: 4, k: 2, moves: []Transposition{{1, 2}, {0, 1}, {2, 3}, {1, 0}, {0, 2}}},
		{
			n: 5,
			k: 3,
			moves: []Transposition{
				{2, 3}, {1, 2}, {0, 1}, {3, 4}, {1, 0}, {2, 1}, {1, 3}, {0, 1}, {1, 2},
			},
		},
		{
			n: 6,
			k: 3,
			moves: []Transposition{
				{2, 3}, {1, 2}, {0, 1}, {3, 4}, {1, 0}, {2, 1}, {1, 3}, {0, 1}, {1, 2},
				{4, 5}, {2, 0}, {0, 1}, {3, 2}, {1, 0}, {2, 1}, {1, 4}, {0, 1}, {1, 2},
				{2, 3},
			},
		},
	}
	for _, tc := range tcs {
		got := collectEMK(tc.n, tc.k)
		if diff := cmp.Diff(tc.moves, got); diff != "" {
			t.Errorf("EMK(%d, %d) mismatch (-want +got):\n%s", tc.n, tc.k, diff)
		}
	}
}

// selected returns the 1-based slots holding a selected marker.
func selected(flags []bool) []int {
	var sel []int
	for i, f := range flags {
		if f {
			sel = append(sel, i+1)
		}
	}
	return sel
}

func TestEMKRevolvingDoor(t *testing.T) {
	type testcase struct {
		n, k int
	}
	tcs := []testcase{
		{n: 4, k: 2},
		{n: 5, k: 3},
		{n: 7, k: 1},
		{n: 8, k: 4},
	}
	for _, tc := range tcs {
		flags := make([]bool, tc.n)
		for i := range flags {
			flags[i] = i < tc.k
		}
		prev := selected(flags)
		seen := strset.Set{}
		seen.Add(strset.Key(prev))
		e := NewEMK(tc.n, tc.k)
		for e.Next() {
			x, y := e.Move()
			require.NotEqual(t, flags[x], flags[y], "n=%d k=%d: move (%d, %d) swaps two slots of the same kind", tc.n, tc.k, x, y)
			flags[x], flags[y] = flags[y], flags[x]
			cur := selected(flags)
			require.True(t, seen.Insert(strset.Key(cur)), "n=%d k=%d: subset %v visited twice", tc.n, tc.k, cur)
			assert.Equal(t, 2, symmetricDifference(prev, cur), "n=%d k=%d: %v -> %v", tc.n, tc.k, prev, cur)
			prev = cur
		}
		assert.Equal(t, Binomial(tc.n, tc.k), uint64(seen.Len()), "n=%d k=%d", tc.n, tc.k)
	}
}

func symmetricDifference(a, b []int) int {
	in := map[int]int{}
	for _, v := range a {
		in[v]++
	}
	for _, v := range b {
		in[v]--
	}
	d := 0
	for _, c := range in {
		if c != 0 {
			d++
		}
	}
	return d
}

func TestEMKAllSubsets(t *testing.T) {
	for n := 2; n <= 12; n++ {
		for k := 1; k < n; k++ {
			buf := make([]bool, n)
			for i := 0; i < k; i++ {
				buf[i] = true
			}
			got := strset.Set{}
			got.Add(maskKey(buf))
			count := uint64(1)
			e := NewEMK(n, k)
			for e.Next() {
				x, y := e.Move()
				require.NotEqual(t, buf[x], buf[y], "n=%d k=%d: move (%d, %d) swaps equal slots", n, k, x, y)
				buf[x], buf[y] = buf[y], buf[x]
				require.True(t, got.Insert(maskKey(buf)), "n=%d k=%d: duplicate %s", n, k, maskKey(buf))
				count++
			}
			require.Equal(t, Binomial(n, k), count, "n=%d k=%d", n, k)
			if n <= 8 {
				expected := strset.Set{}
				for _, c := range combin.Combinations(n, k) {
					b := make([]bool, n)
					for _, i := range c {
						b[i] = true
					}
					expected.Add(maskKey(b))
				}
				assert.Empty(t, expected.Diff(got).ToSlice(), "n=%d k=%d", n, k)
			}
		}
	}
}

func maskKey(buf []bool) string {
	sb := strings.Builder{}
	for _, b := range buf {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestRevolving(t *testing.T) {
	var got []string
	for buf := range NewRevolving(4, 2, "0", "1").All() {
		got = append(got, strings.Join(buf, ""))
	}
	assert.Equal(t, []string{"1100", "1010", "0110", "0101", "1001", "0011"}, got)

	r := NewRevolving(3, 3, 0, 1)
	require.True(t, r.Next())
	assert.Equal(t, []int{1, 1, 1}, r.Get())
	assert.False(t, r.Next())

	r = NewRevolving(3, 0, 0, 1)
	require.True(t, r.Next())
	assert.Equal(t, []int{0, 0, 0}, r.Get())
	assert.False(t, r.Next())
}

func TestEMKStopEarly(t *testing.T) {
	count := 0
	for range NewEMK(10, 5).All() {
		count++
		if count == 7 {
			break
		}
	}
	assert.Equal(t, 7, count)
}
