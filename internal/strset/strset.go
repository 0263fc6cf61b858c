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

// Package strset keeps sets of rendered objects, so that enumerations
// can be checked for duplicates and compared against expectations.
package strset

import (
	"sort"
	"strconv"
	"strings"
)

type Set map[string]struct{}

func (s Set) Add(str string) {
	s[str] = struct{}{}
}

// Insert adds str and reports whether it was not in the set yet.
func (s Set) Insert(str string) bool {
	if s.Has(str) {
		return false
	}
	s.Add(str)
	return true
}

func (s Set) AddSet(other Set) {
	for str := range other {
		s.Add(str)
	}
}

func (s Set) AddSlice(other []string) {
	for _, str := range other {
		s.Add(str)
	}
}

func (s Set) Has(str string) bool {
	_, ok := s[str]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Diff returns the elements of s missing from other.
func (s Set) Diff(other Set) Set {
	diff := Set{}
	for str := range s {
		if !other.Has(str) {
			diff.Add(str)
		}
	}
	return diff
}

func (s Set) ToSlice() []string {
	slice := make([]string, 0, len(s))
	for str := range s {
		slice = append(slice, str)
	}
	sort.Strings(slice)
	return slice
}

// Key renders ints as a comma separated string usable as a set element.
func Key(ints []int) string {
	sb := strings.Builder{}
	for i, v := range ints {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
