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

// Command ecgen-tables generates the lookup tables of the counting
// functions: every factorial and every Bell number that fits in a
// uint64.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/krnowak/ecgen/internal/clilog"
)

func main() {
	outFileStr := flag.String("outfile", "", "output file, if empty, tables.go next to the file in GOFILE env var")
	pkgName := flag.String("package", "", "package name of the generated file, if empty, will be deduced from the file in GOFILE env var")
	flag.Parse()

	inFile := os.Getenv("GOFILE")
	outFile := *outFileStr
	if outFile == "" {
		if inFile == "" {
			clilog.Fail("no out file, use -outfile to specify it or export the GOFILE environment variable")
		}
		outFile = filepath.Join(filepath.Dir(inFile), "tables.go")
	}
	name := *pkgName
	if name == "" {
		if inFile == "" {
			clilog.Fail("no package name, use -package to specify it or export the GOFILE environment variable")
		}
		var err error
		name, err = packageOf(inFile)
		if err != nil {
			clilog.Fail("failed to deduce the package name: %v", err)
		}
	}
	clilog.Debug("generating package %s tables into %s", name, outFile)

	src, err := generate(os.Args[1:], name)
	if err != nil {
		clilog.Warn("failed to format the code, compile to see what's wrong: %v", err)
	}
	if err := os.WriteFile(outFile, src, 0644); err != nil {
		clilog.Fail("failed to write source to outfile %s: %v", outFile, err)
	}
}

func packageOf(inFile string) (string, error) {
	absInFile, err := filepath.Abs(inFile)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of %s: %w", inFile, err)
	}
	pattern := fmt.Sprintf("file=%s", absInFile)
	cfg := packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Fset: token.NewFileSet(),
	}
	pkgs, err := packages.Load(&cfg, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to load packages with pattern %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return "", fmt.Errorf("loaded %d packages for pattern %s, expected one", len(pkgs), pattern)
	}
	return pkgs[0].Name, nil
}
