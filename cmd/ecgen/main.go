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

// Command ecgen lists combinatorial objects produced by the ecgen
// generators, one per line, and prints tables of the counting
// functions.
//
// Every flag can also be set through an environment variable with the
// ECGEN_ prefix, like ECGEN_FAMILY=sjt.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/namsral/flag"

	"github.com/krnowak/ecgen/internal/clilog"
	"github.com/krnowak/ecgen/internal/strset"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		clilog.Fail("%v", err)
	}
}

func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSetWithEnvPrefix("ecgen", "ECGEN", flag.ContinueOnError)
	var (
		familyStr = fs.String("family", "", fmt.Sprintf("generator to run, one of %s", strings.Join(familyNames(), ", ")))
		n         = fs.Int("n", 0, "size of the ground set")
		k         = fs.Int("k", -1, "size of the subset or number of blocks, negative means unset")
		limit     = fs.Int("limit", 0, "stop after this many objects, 0 means no limit")
		verify    = fs.Bool("verify", false, "check that the objects are distinct and that their number matches the counting functions")
		table     = fs.Bool("table", false, "print tables of the counting functions instead of listing objects")
		maxN      = fs.Int("maxn", 10, "largest n in the tables")
		dbg       = fs.Bool("debug", false, "print debug messages")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbg {
		clilog.SetDebug(true)
	}
	if *table {
		if *maxN < 0 {
			return fmt.Errorf("maxn must not be negative, got %d", *maxN)
		}
		return printTables(out, *maxN)
	}
	if *familyStr == "" {
		return fmt.Errorf("no family, use -family to specify one of %s", strings.Join(familyNames(), ", "))
	}
	fam, ok := families[*familyStr]
	if !ok {
		return fmt.Errorf("unknown family %q, expected one of %s", *familyStr, strings.Join(familyNames(), ", "))
	}
	if err := fam.check(*n, *k); err != nil {
		return fmt.Errorf("invalid arguments for %s (%s): %w", *familyStr, fam.usage, err)
	}
	if *limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", *limit)
	}
	clilog.Debug("running %s with n = %d, k = %d", *familyStr, *n, *k)
	return list(out, fam, *n, *k, *limit, *verify)
}

func list(out io.Writer, fam family, n, k, limit int, verify bool) error {
	w := bufio.NewWriter(out)
	seen := strset.Set{}
	var (
		listed  uint64
		dup     string
		hasDup  bool
		stopped bool
	)
	fam.list(n, k, func(line string) bool {
		if limit > 0 && listed == uint64(limit) {
			stopped = true
			return false
		}
		if verify && !seen.Insert(line) {
			dup, hasDup = line, true
			return false
		}
		listed++
		fmt.Fprintln(w, line)
		return true
	})
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write the objects: %w", err)
	}
	if !verify {
		return nil
	}
	if hasDup {
		return fmt.Errorf("object %q listed twice", dup)
	}
	if stopped {
		clilog.Warn("stopped after %d objects, not comparing with the expected count", listed)
		return nil
	}
	if expected := fam.count(n, k); expected != listed {
		return fmt.Errorf("listed %d objects, expected %d", listed, expected)
	}
	clilog.Info("verified %d distinct objects", listed)
	return nil
}
