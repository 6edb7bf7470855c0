// Command mython is the Mython interpreter CLI: lex, parse, and run
// subcommands wired onto internal/lexer, internal/parser, and
// internal/interp/evaluator.
package main

import (
	"fmt"
	"os"

	"github.com/mythonlang/mython/cmd/mython/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
