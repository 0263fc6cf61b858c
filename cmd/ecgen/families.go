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

package main

import (
	"fmt"
	"strings"

	"github.com/krnowak/ecgen"
	"github.com/krnowak/ecgen/internal/strset"
)

// family lists the objects of one generator as lines of text. Move
// streams are applied to a buffer, so every line is a whole object.
type family struct {
	usage string
	check func(n, k int) error
	list  func(n, k int, yield func(string) bool)
	count func(n, k int) uint64
}

var families = map[string]family{
	"comb": {
		usage: "k-subsets of {0, ..., n-1} by Gosper's hack",
		check: needKIn(1, 64),
		list: func(n, k int, yield func(string) bool) {
			g := ecgen.NewCombGen(n, k)
			for g.Next() {
				if !yield(strset.Key(g.Get())) {
					return
				}
			}
		},
		count: ecgen.Binomial,
	},
	"emk": {
		usage: "k-subsets in revolving door order, as 0/1 strings",
		check: needKIn(0, -1),
		list: func(n, k int, yield func(string) bool) {
			for buf := range ecgen.NewRevolving(n, k, byte('0'), byte('1')).All() {
				if !yield(string(buf)) {
					return
				}
			}
		},
		count: ecgen.Binomial,
	},
	"sjt": {
		usage: "permutations by adjacent swaps, iterative",
		check: needN(0, -1),
		list: func(n, _ int, yield func(string) bool) {
			applyAdjacent(n, ecgen.NewSJT(n).All(), yield)
		},
		count: factorial,
	},
	"plain": {
		usage: "permutations by adjacent swaps, recursive",
		check: needN(0, -1),
		list: func(n, _ int, yield func(string) bool) {
			applyAdjacent(n, ecgen.PlainChanges(n), yield)
		},
		count: factorial,
	},
	"ehr": {
		usage: "permutations by Algorithm P",
		check: needN(0, -1),
		list: func(n, _ int, yield func(string) bool) {
			for p := range ecgen.NewEhrlich(n).All() {
				if !yield(strset.Key(p)) {
					return
				}
			}
		},
		count: factorial,
	},
	"star": {
		usage: "permutations by swaps with the first position",
		check: needN(0, -1),
		list: func(n, _ int, yield func(string) bool) {
			perm := identity(n, 1)
			if !yield(strset.Key(perm)) {
				return
			}
			for x := range ecgen.NewStarTranspositions(n).All() {
				perm[0], perm[x] = perm[x], perm[0]
				if !yield(strset.Key(perm)) {
					return
				}
			}
		},
		count: factorial,
	},
	"partition": {
		usage: "set partitions as restricted growth strings, all of them or only those with k blocks",
		check: func(n, k int) error {
			if err := needN(0, -1)(n, k); err != nil {
				return err
			}
			if k > n {
				return fmt.Errorf("k must be at most n (%d), got %d", n, k)
			}
			return nil
		},
		list: func(n, k int, yield func(string) bool) {
			p := ecgen.NewSetPartition(n)
			if k >= 0 {
				p = ecgen.NewSetPartitionK(n, k)
			}
			for rg := range p.All() {
				if !yield(strset.Key(rg)) {
					return
				}
			}
		},
		count: func(n, k int) uint64 {
			if k < 0 {
				return ecgen.Bell(n)
			}
			return ecgen.Stirling2nd(n, k)
		},
	},
	"partition-moves": {
		usage: "set partitions with k blocks, each moving one element",
		check: func(n, k int) error {
			if k <= 1 || k >= n {
				return fmt.Errorf("need 1 < k < n, got n = %d, k = %d", n, k)
			}
			return nil
		},
		list: func(n, k int, yield func(string) bool) {
			rg := make([]int, n)
			for i := n - k; i < n; i++ {
				rg[i] = i - (n - k)
			}
			if !yield(strset.Key(rg)) {
				return
			}
			for elem, block := range ecgen.NewPartitionMoves(n, k).All() {
				rg[elem-1] = block
				if !yield(strset.Key(rg)) {
					return
				}
			}
		},
		count: ecgen.Stirling2nd,
	},
	"gray": {
		usage: "binary reflected Gray code of width n",
		check: needN(1, 64),
		list: func(n, _ int, yield func(string) bool) {
			for code := range ecgen.NewGrayCode(n).All() {
				if !yield(fmt.Sprintf("%0*b", n, code)) {
					return
				}
			}
		},
		count: subsetCount,
	},
	"gray-flips": {
		usage: "binary reflected Gray code of width n, built from bit flips",
		check: needN(1, 64),
		list: func(n, _ int, yield func(string) bool) {
			bits := []byte(strings.Repeat("0", n))
			if !yield(string(bits)) {
				return
			}
			for bit := range ecgen.NewGrayFlips(n).All() {
				pos := n - 1 - bit
				bits[pos] ^= '0' ^ '1'
				if !yield(string(bits)) {
					return
				}
			}
		},
		count: subsetCount,
	},
	"subsets": {
		usage: "subsets of {1, ..., n}, each adding or removing one element",
		check: needN(0, 64),
		list: func(n, _ int, yield func(string) bool) {
			for s := range ecgen.NewGraySubsets(identity(n, 1)).All() {
				if !yield("{" + strset.Key(s) + "}") {
					return
				}
			}
		},
		count: subsetCount,
	},
	"bipart": {
		usage: "ordered splits of {1, ..., n} into two blocks",
		check: needN(2, 64),
		list: func(n, _ int, yield func(string) bool) {
			for a, b := range ecgen.NewSetBipart(n).All() {
				if !yield(renderBlocks([][]int{a, b})) {
					return
				}
			}
		},
		count: func(n, _ int) uint64 {
			return ecgen.BipartCount(n)
		},
	},
	"bipart-k": {
		usage: "splits of {1, ..., n} whose first block has k elements",
		check: func(n, k int) error {
			if k <= 0 || k >= n || n > 64 {
				return fmt.Errorf("need 0 < k < n <= 64, got n = %d, k = %d", n, k)
			}
			return nil
		},
		list: func(n, k int, yield func(string) bool) {
			for a, b := range ecgen.NewSetBipartK(n, k).All() {
				if !yield(renderBlocks([][]int{a, b})) {
					return
				}
			}
		},
		count: ecgen.BipartKCount,
	},
	"bipart-moves": {
		usage: "unordered splits of {1, ..., n}, each moving one element",
		check: needN(2, -1),
		list: func(n, _ int, yield func(string) bool) {
			rg := make([]int, n)
			rg[n-1] = 1
			if !yield(renderBlocks(ecgen.Blocks(rg))) {
				return
			}
			for elem := range ecgen.NewBipartMoves(n).All() {
				rg[elem-1] ^= 1
				if !yield(renderBlocks(ecgen.Blocks(rg))) {
					return
				}
			}
		},
		count: func(n, _ int) uint64 {
			return ecgen.UnorderedBipartCount(n)
		},
	},
}

// needN accepts lo <= n <= hi, a negative hi means no upper bound.
func needN(lo, hi int) func(n, k int) error {
	return func(n, _ int) error {
		if n < lo || (hi >= 0 && n > hi) {
			if hi < 0 {
				return fmt.Errorf("n must be at least %d, got %d", lo, n)
			}
			return fmt.Errorf("n must be between %d and %d, got %d", lo, hi, n)
		}
		return nil
	}
}

// needKIn accepts lo <= k <= n, with n at most maxN unless maxN is
// negative.
func needKIn(lo, maxN int) func(n, k int) error {
	return func(n, k int) error {
		if err := needN(0, maxN)(n, k); err != nil {
			return err
		}
		if k < lo || k > n {
			return fmt.Errorf("k must be between %d and n (%d), got %d", lo, n, k)
		}
		return nil
	}
}

func factorial(n, _ int) uint64 {
	return ecgen.Factorial(n)
}

func subsetCount(n, _ int) uint64 {
	return ecgen.SubsetCount(n)
}

func identity(n, first int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = first + i
	}
	return perm
}

func applyAdjacent(n int, moves func(func(int) bool), yield func(string) bool) {
	perm := identity(n, 1)
	if !yield(strset.Key(perm)) {
		return
	}
	for x := range moves {
		perm[x], perm[x+1] = perm[x+1], perm[x]
		if !yield(strset.Key(perm)) {
			return
		}
	}
}

func renderBlocks(blocks [][]int) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, "{"+strset.Key(b)+"}")
	}
	return strings.Join(parts, " ")
}
