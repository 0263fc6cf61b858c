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
	"errors"
	"fmt"
	"math"
	"math/bits"
)

//go:generate go run ./cmd/ecgen-tables -outfile tables.go -package ecgen

// ErrOverflow is returned by the checked counting functions when the
// exact result does not fit in a uint64.
var ErrOverflow = errors.New("result overflows uint64")

func saturate(v uint64, err error) uint64 {
	if err != nil {
		return math.MaxUint64
	}
	return v
}

// Binomial returns the number of k-subsets of an n-set, or
// math.MaxUint64 if it does not fit.
func Binomial(n, k int) uint64 {
	return saturate(BinomialChecked(n, k))
}

func BinomialChecked(n, k int) (uint64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, nil
	}
	if k == 0 || k == n {
		return 1, nil
	}
	if n-k < k {
		k = n - k
	}
	// result holds C(n-k+i, i) after step i, never more than the
	// final value, and the division is always exact.
	result := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(result, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, fmt.Errorf("binomial(%d, %d): %w", n, k, ErrOverflow)
		}
		result, _ = bits.Div64(hi, lo, uint64(i))
	}
	return result, nil
}

// Stirling2nd returns the number of partitions of an n-set into exactly
// k non-empty blocks, or math.MaxUint64 if it does not fit.
func Stirling2nd(n, k int) uint64 {
	return saturate(Stirling2ndChecked(n, k))
}

func Stirling2ndChecked(n, k int) (uint64, error) {
	if n < 0 || k < 0 {
		return 0, nil
	}
	if k == n {
		return 1, nil
	}
	if k == 0 || k > n {
		return 0, nil
	}
	if k == 1 {
		return 1, nil
	}
	prev := make([]uint64, k+1)
	curr := make([]uint64, k+1)
	prev[1] = 1
	for idx := 2; idx <= n; idx++ {
		// Only the entries S(n, k) depends on are computed, each of
		// them is at most S(n, k).
		lo := k - (n - idx)
		if lo <= 1 {
			curr[1] = 1
			lo = 2
		}
		for pos := lo; pos <= k && pos <= idx; pos++ {
			hi, v := bits.Mul64(uint64(pos), prev[pos])
			var carry uint64
			v, carry = bits.Add64(v, prev[pos-1], 0)
			if hi != 0 || carry != 0 {
				return 0, fmt.Errorf("stirling2nd(%d, %d): %w", n, k, ErrOverflow)
			}
			curr[pos] = v
		}
		prev, curr = curr, prev
	}
	return prev[k], nil
}

// Bell returns the number of partitions of an n-set, or math.MaxUint64
// if it does not fit.
func Bell(n int) uint64 {
	return saturate(BellChecked(n))
}

func BellChecked(n int) (uint64, error) {
	if n < 0 {
		return 0, nil
	}
	if n >= len(bellTable) {
		return 0, fmt.Errorf("bell(%d): %w", n, ErrOverflow)
	}
	return bellTable[n], nil
}

// Factorial returns n!, or math.MaxUint64 if it does not fit. The
// factorial of zero and of negative numbers is 1.
func Factorial(n int) uint64 {
	return saturate(FactorialChecked(n))
}

func FactorialChecked(n int) (uint64, error) {
	if n <= 0 {
		return 1, nil
	}
	if n >= len(factorialTable) {
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrOverflow)
	}
	return factorialTable[n], nil
}

// SubsetCount returns 2^n, the number of subsets of an n-set and of
// n-bit Gray codes.
func SubsetCount(n int) uint64 {
	return saturate(SubsetCountChecked(n))
}

func SubsetCountChecked(n int) (uint64, error) {
	if n < 0 {
		return 0, nil
	}
	if n >= 64 {
		return 0, fmt.Errorf("subsets(%d): %w", n, ErrOverflow)
	}
	return uint64(1) << n, nil
}

// BipartCount returns 2^n - 2, the number of ordered pairs of
// complementary non-empty blocks produced by SetBipart.
func BipartCount(n int) uint64 {
	if n <= 1 {
		return 0
	}
	if n > 64 {
		return math.MaxUint64
	}
	return maskOfWidth(n) - 1
}

// BipartKCount returns the number of bipartitions whose first block has
// k elements.
func BipartKCount(n, k int) uint64 {
	if k <= 0 || k >= n {
		return 0
	}
	return Binomial(n, k)
}

// UnorderedBipartCount returns S(n, 2), the number of ways to split an
// n-set into two unlabeled non-empty blocks.
func UnorderedBipartCount(n int) uint64 {
	if n <= 1 {
		return 0
	}
	if n > 65 {
		return math.MaxUint64
	}
	return maskOfWidth(n - 1)
}

// maskOfWidth returns a mask with the lowest n bits set, 0 < n <= 64.
func maskOfWidth(n int) uint64 {
	return ^uint64(0) >> (64 - n)
}
