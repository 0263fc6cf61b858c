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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krnowak/ecgen/internal/strset"
)

func TestPartitionMovesSequence(t *testing.T) {
	type testcase struct {
		n, k  int
		moves [][2]int
	}
	tcs := []testcase{
		{n: 3, k: 1, moves: nil},
		{n: 3, k: 3, moves: nil},
		{n: 2, k: 2, moves: nil},
		{
			n: 5, k: 2,
			moves: [][2]int{
				{4, 1}, {2, 1}, {3, 1}, {2, 0}, {4, 0}, {2, 1}, {3, 0},
				{5, 0}, {3, 1}, {2, 0}, {4, 1}, {2, 1}, {3, 0}, {2, 0},
			},
		},
		{
			n: 5, k: 3,
			moves: [][2]int{
				{2, 1}, {3, 1}, {2, 0}, {4, 0}, {2, 1}, {3, 0}, {3, 2}, {4, 1},
				{4, 2}, {3, 0}, {3, 1}, {2, 0}, {5, 1}, {2, 1}, {3, 0}, {3, 2},
				{4, 1}, {4, 0}, {5, 0}, {4, 1}, {4, 2}, {3, 0}, {3, 1}, {2, 0},
			},
		},
	}
	for _, tc := range tcs {
		var moves [][2]int
		for elem, block := range NewPartitionMoves(tc.n, tc.k).All() {
			moves = append(moves, [2]int{elem, block})
		}
		if diff := cmp.Diff(tc.moves, moves); diff != "" {
			t.Errorf("PartitionMoves(%d, %d) mismatch (-want +got):\n%s", tc.n, tc.k, diff)
		}
	}
}

func TestPartitionMovesVisitAll(t *testing.T) {
	for n := 3; n <= 9; n++ {
		for k := 2; k < n; k++ {
			rg := make([]int, n)
			for i := n - k; i < n; i++ {
				rg[i] = i - (n - k)
			}
			seen := strset.Set{}
			seen.Add(strset.Key(rg))
			pm := NewPartitionMoves(n, k)
			for pm.Next() {
				elem, block := pm.Move()
				require.True(t, elem >= 1 && elem <= n, "n=%d k=%d: element %d", n, k, elem)
				require.NotEqual(t, block, rg[elem-1], "n=%d k=%d: element %d stays in block %d", n, k, elem, block)
				rg[elem-1] = block
				require.True(t, isRestrictedGrowth(rg), "n=%d k=%d: %v", n, k, rg)
				require.Equal(t, k, labels(rg), "n=%d k=%d: %v", n, k, rg)
				require.True(t, seen.Insert(strset.Key(rg)), "n=%d k=%d: %v twice", n, k, rg)
			}
			assert.Equal(t, Stirling2nd(n, k), uint64(seen.Len()), "n=%d k=%d", n, k)
		}
	}
}
