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

// Package clilog holds the diagnostics helpers shared by the commands.
// Messages go to stderr as "PREFIX: message" lines.
package clilog

import (
	"fmt"
	"io"
	"os"
)

var (
	// Output receives every message.
	Output io.Writer = os.Stderr
	// Exit is called by Fail after printing.
	Exit = os.Exit

	isDbg = os.Getenv("DBG") == "1"
)

// SetDebug turns debug messages on or off, overriding DBG.
func SetDebug(on bool) {
	isDbg = on
}

func Fail(formatStr string, args ...interface{}) {
	printWithPrefix("ERROR", formatStr, args...)
	Exit(1)
}

func Warn(formatStr string, args ...interface{}) {
	printWithPrefix("WARN", formatStr, args...)
}

func Info(formatStr string, args ...interface{}) {
	printWithPrefix("INFO", formatStr, args...)
}

func Debug(formatStr string, args ...interface{}) {
	if !isDbg {
		return
	}
	printWithPrefix("DEBUG", formatStr, args...)
}

func printWithPrefix(prefix, formatStr string, args ...interface{}) {
	newFormatStr := fmt.Sprintf("%s: %s\n", prefix, formatStr)
	fmt.Fprintf(Output, newFormatStr, args...)
}
