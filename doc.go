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

// Package ecgen enumerates combinatorial objects one at a time:
// k-subsets, permutations, set partitions, bipartitions, subsets and
// Gray codes.
//
// Every generator is a small value owning its own state, advanced with
// Next until it returns false. There are two kinds of generators.
// Move generators (EMK, SJT, StarTranspositions, PartitionMoves,
// BipartMoves, GrayFlips) do not hold the objects; they describe the
// change the caller has to apply to its own buffer to reach the next
// object. Object generators (Ehrlich, SetPartition, CombGen, SetBipart,
// GraySubsets, GrayCode, Revolving) hold the current object and hand out
// a view of their internal buffer, which must not be modified and is
// only valid until the following call to Next.
//
// Parameters outside of a family's domain are not errors, they just
// produce an empty or a single-object enumeration. Generators are not
// safe for concurrent use, but separate generators share nothing.
package ecgen
