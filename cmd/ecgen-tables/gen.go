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
	"bytes"
	"fmt"
	"go/format"
	"io"
	"math"
	"math/big"
	"strings"
)

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

func fits(x *big.Int) bool {
	return x.Cmp(maxUint64) <= 0
}

// factorials returns 0!, 1!, ... up to the last one that fits in a
// uint64.
func factorials() []uint64 {
	var table []uint64
	f := big.NewInt(1)
	for n := int64(1); fits(f); n++ {
		table = append(table, f.Uint64())
		f.Mul(f, big.NewInt(n))
	}
	return table
}

// bellNumbers returns B(0), B(1), ... up to the last one that fits in
// a uint64, computed with the Bell triangle.
func bellNumbers() []uint64 {
	table := []uint64{1}
	row := []*big.Int{big.NewInt(1)}
	for {
		next := []*big.Int{new(big.Int).Set(row[len(row)-1])}
		for _, x := range row {
			next = append(next, new(big.Int).Add(next[len(next)-1], x))
		}
		if !fits(next[0]) {
			return table
		}
		table = append(table, next[0].Uint64())
		row = next
	}
}

func printTable(w io.Writer, doc, name string, values []uint64) {
	fmt.Fprintf(w, "// %s\n", doc)
	fmt.Fprintf(w, "var %s = [...]uint64{\n", name)
	for _, v := range values {
		fmt.Fprintf(w, "\t%d,\n", v)
	}
	fmt.Fprintf(w, "}\n")
}

// generate returns the formatted source of the tables file. On a
// formatting failure the unformatted source is returned together with
// the error.
func generate(args []string, pkgName string) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by \"ecgen-tables %s\"; DO NOT EDIT.\n", strings.Join(args, " "))
	fmt.Fprintf(buf, "\n")
	fmt.Fprintf(buf, "package %s\n", pkgName)
	fmt.Fprintf(buf, "\n")
	printTable(buf, "factorialTable holds n! for every n whose factorial fits in a uint64.", "factorialTable", factorials())
	fmt.Fprintf(buf, "\n")
	printTable(buf, "bellTable holds the Bell numbers B(n) that fit in a uint64.", "bellTable", bellNumbers())
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), err
	}
	return src, nil
}
