// Command bslint is the static-analysis CLI: it walks a metadata tree of
// 1C modules, runs the analyzer plugin set over each one, and emits a
// SonarQube-compatible generic-issue report.
package main

import (
	"fmt"
	"os"

	"github.com/go-bsl/bslint/cmd/bslint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
