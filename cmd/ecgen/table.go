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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/krnowak/ecgen"
)

func cell(v uint64, err error) string {
	if err != nil {
		return "overflow"
	}
	return strconv.FormatUint(v, 10)
}

func printTables(out io.Writer, maxN int) error {
	fmt.Fprintln(out, "Counts")
	counts := tablewriter.NewWriter(out)
	counts.SetHeader([]string{"n", "n!", "Bell", "subsets"})
	counts.SetAlignment(tablewriter.ALIGN_RIGHT)
	for n := 0; n <= maxN; n++ {
		counts.Append([]string{
			strconv.Itoa(n),
			cell(ecgen.FactorialChecked(n)),
			cell(ecgen.BellChecked(n)),
			cell(ecgen.SubsetCountChecked(n)),
		})
	}
	counts.Render()

	fmt.Fprintln(out, "Binomial coefficients C(n, k)")
	printTriangle(out, maxN, ecgen.BinomialChecked)
	fmt.Fprintln(out, "Stirling numbers of the second kind S(n, k)")
	printTriangle(out, maxN, ecgen.Stirling2ndChecked)
	return nil
}

func printTriangle(out io.Writer, maxN int, f func(n, k int) (uint64, error)) {
	table := tablewriter.NewWriter(out)
	header := []string{"n\\k"}
	for k := 0; k <= maxN; k++ {
		header = append(header, strconv.Itoa(k))
	}
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for n := 0; n <= maxN; n++ {
		row := []string{strconv.Itoa(n)}
		for k := 0; k <= maxN; k++ {
			if k > n {
				row = append(row, "")
				continue
			}
			row = append(row, cell(f(n, k)))
		}
		table.Append(row)
	}
	table.Render()
}
