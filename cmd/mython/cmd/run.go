package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mythonlang/mython/internal/config"
	"github.com/mythonlang/mython/internal/errors"
	"github.com/mythonlang/mython/internal/interp/evaluator"
	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Mython file or expression",
	Long: `Execute a Mython program from a file or inline expression.

Examples:
  # Run a script file
  mython run script.my

  # Evaluate an inline expression
  mython run -e 'print 1 + 2'

  # Run with AST dump (for debugging)
  mython run --dump-ast script.my`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program, err := p.ParseProgram()
	if err != nil {
		printParseError(err, input, filename)
		return fmt.Errorf("parsing failed")
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}

	eval := evaluator.New(os.Stdout)
	if opts, err := config.Load(config.DefaultPath); err == nil && opts.MaxCallDepth > 0 {
		eval.SetMaxCallDepth(opts.MaxCallDepth)
	}
	if err := eval.Eval(program); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %s\n", err.Error())
		return fmt.Errorf("execution failed")
	}
	return nil
}

// printParseError renders a parser error with source context using
// the shared CompilerError formatter when the error carries a
// position (lexer/parser errors always format as "... at LINE:COL").
func printParseError(err error, source, filename string) {
	compilerErrors := errors.FromStringErrors([]string{err.Error()}, source, filename)
	fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, wantColor()))
	fmt.Fprintln(os.Stderr)
}
