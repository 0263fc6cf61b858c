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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayRoundTrip(t *testing.T) {
	for x := 0; x < 1<<16; x++ {
		u := uint16(x)
		require.Equal(t, u, GrayToBinary(BinaryToGray(u)), "round trip of %d", x)
		require.Equal(t, uint64(x), GrayToBinary(BinaryToGray(uint64(x))), "round trip of %d", x)
	}
	assert.Equal(t, ^uint64(0), GrayToBinary(BinaryToGray(^uint64(0))))
	assert.Equal(t, uint8(0b110), BinaryToGray(uint8(4)))
}

func TestGrayCode(t *testing.T) {
	type testcase struct {
		n     int
		codes []uint64
	}
	tcs := []testcase{
		{
			n:     0,
			codes: nil,
		},
		{
			n:     1,
			codes: []uint64{0, 1},
		},
		{
			n:     2,
			codes: []uint64{0, 1, 3, 2},
		},
		{
			n:     3,
			codes: []uint64{0, 1, 3, 2, 6, 7, 5, 4},
		},
	}
	for _, tc := range tcs {
		var codes []uint64
		for c := range NewGrayCode(tc.n).All() {
			codes = append(codes, c)
		}
		require.Equal(t, tc.codes, codes, "GrayCode(%d)", tc.n)
		seen := map[uint64]bool{}
		for i, c := range codes {
			assert.False(t, seen[c], "duplicate code %b", c)
			seen[c] = true
			if i > 0 {
				assert.Equal(t, 1, bits.OnesCount64(c^codes[i-1]), "codes %b and %b", codes[i-1], c)
			}
		}
	}
}

func TestGrayCodeAgainstFlips(t *testing.T) {
	for n := 1; n <= 10; n++ {
		g := NewGrayCode(n)
		f := NewGrayFlips(n)
		require.True(t, g.Next())
		code := g.Code()
		count := uint64(1)
		for f.Next() {
			require.True(t, g.Next(), "n=%d", n)
			code ^= uint64(1) << f.Bit()
			require.Equal(t, g.Code(), code, "n=%d step %d", n, count)
			require.Equal(t, count, g.Rank())
			count++
		}
		assert.False(t, g.Next())
		assert.Equal(t, SubsetCount(n), count, "n=%d", n)
	}
}

func TestGrayFlips(t *testing.T) {
	var flips []int
	for b := range NewGrayFlips(3).All() {
		flips = append(flips, b)
	}
	assert.Equal(t, []int{0, 1, 0, 2, 0, 1, 0}, flips)
	assert.False(t, NewGrayFlips(0).Next())
	assert.False(t, NewGrayFlips(65).Next())
}

func TestGrayCodeFullWidth(t *testing.T) {
	g := NewGrayCode(64)
	require.True(t, g.Next())
	assert.Equal(t, uint64(0), g.Code())
	// jump to the end of the sequence
	g.i = ^uint64(0) - 1
	require.True(t, g.Next())
	assert.Equal(t, uint64(1)<<63, g.Code())
	assert.False(t, g.Next())
}

func TestGraySubsets(t *testing.T) {
	items := []string{"a", "b", "c"}
	expected := [][]string{
		{},
		{"a"},
		{"a", "b"},
		{"b"},
		{"b", "c"},
		{"b", "c", "a"},
		{"c", "a"},
		{"c"},
	}
	s := NewGraySubsets(items)
	var got [][]string
	for s.Next() {
		subset := append([]string{}, s.Subset()...)
		got = append(got, subset)
		assert.Equal(t, bits.OnesCount64(s.Mask()), len(subset))
	}
	assert.Equal(t, expected, got)
	assert.False(t, s.Next())
}

func TestGraySubsetsChanges(t *testing.T) {
	s := NewGraySubsets([]int{10, 20, 30, 40})
	require.True(t, s.Next())
	idx, _ := s.Changed()
	assert.Equal(t, -1, idx)
	count := 1
	prev := 0
	for s.Next() {
		count++
		idx, added := s.Changed()
		require.GreaterOrEqual(t, idx, 0)
		if added {
			assert.Equal(t, prev+1, len(s.Subset()))
			assert.Contains(t, s.Subset(), (idx+1)*10)
		} else {
			assert.Equal(t, prev-1, len(s.Subset()))
			assert.NotContains(t, s.Subset(), (idx+1)*10)
		}
		prev = len(s.Subset())
	}
	assert.Equal(t, 16, count)
}

func TestGraySubsetsEmpty(t *testing.T) {
	s := NewGraySubsets[int](nil)
	require.True(t, s.Next())
	assert.Empty(t, s.Subset())
	assert.False(t, s.Next())
}
