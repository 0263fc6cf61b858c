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

package strset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s1 := Set{}
	assert.Equal(t, 0, s1.Len())
	assert.False(t, s1.Has("0,1"))
	s1.Add("0,1")
	assert.Equal(t, 1, s1.Len())
	assert.True(t, s1.Has("0,1"))
	s1.Add("0,1")
	assert.Equal(t, 1, s1.Len())

	s1.AddSlice([]string{"0,1", "0,2", "1,2", "0,2"})
	assert.Equal(t, 3, s1.Len())
	assert.True(t, s1.Has("0,2"))
	assert.True(t, s1.Has("1,2"))

	s2 := Set{}
	s2.AddSlice([]string{"0,1", "0,3"})

	s3 := Set{}
	s3.AddSet(s1)
	s3.AddSet(s2)
	assert.Equal(t, 4, s3.Len())

	d12 := s1.Diff(s2)
	d21 := s2.Diff(s1)
	assert.Equal(t, []string{"0,2", "1,2"}, d12.ToSlice())
	assert.Equal(t, []string{"0,3"}, d21.ToSlice())
}

func TestInsert(t *testing.T) {
	s := Set{}
	assert.True(t, s.Insert("a"))
	assert.False(t, s.Insert("a"))
	assert.True(t, s.Insert("b"))
	assert.Equal(t, []string{"a", "b"}, s.ToSlice())
}

func TestKey(t *testing.T) {
	type testcase struct {
		ints []int
		key  string
	}
	tcs := []testcase{
		{
			ints: nil,
			key:  "",
		},
		{
			ints: []int{7},
			key:  "7",
		},
		{
			ints: []int{0, 1, 0, 2},
			key:  "0,1,0,2",
		},
		{
			ints: []int{-1, 10},
			key:  "-1,10",
		},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.key, Key(tc.ints), "Key(%v)", tc.ints)
	}
}
