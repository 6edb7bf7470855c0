package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/errors"
	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/parser"
)

var (
	parseEvalExpr string
	parseDumpTree bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Mython file or expression and display the AST",
	Long: `Parse a Mython program and display its Abstract Syntax Tree.

Examples:
  # Parse a script file
  mython parse script.my

  # Parse an inline expression
  mython parse -e "x = 1 + 2"

  # Show the AST as an indented node tree instead of reconstructed source
  mython parse --tree script.my`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpTree, "tree", false, "print an indented node tree instead of reconstructed source")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program, err := p.ParseProgram()
	if err != nil {
		compilerErrors := errors.FromStringErrors([]string{err.Error()}, input, filename)
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrors, wantColor()))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpTree {
		dumpNode(program, 0)
		return nil
	}
	fmt.Print(program.String())
	return nil
}

func dumpNode(node ast.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(s, indent+1)
		}
	case *ast.Compound:
		fmt.Printf("%sCompound (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(s, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpNode(n.Expr, indent+1)
	case *ast.Assignment:
		fmt.Printf("%sAssignment: %s =\n", prefix, n.Name)
		dumpNode(n.Value, indent+1)
	case *ast.FieldAssignment:
		fmt.Printf("%sFieldAssignment: %s.%s =\n", prefix, n.Target, n.Field)
		dumpNode(n.Value, indent+1)
	case *ast.Print:
		fmt.Printf("%sPrint (%d args)\n", prefix, len(n.Args))
		for _, a := range n.Args {
			dumpNode(a, indent+1)
		}
	case *ast.Stringify:
		fmt.Printf("%sStringify\n", prefix)
		dumpNode(n.Arg, indent+1)
	case *ast.Arithmetic:
		fmt.Printf("%sArithmetic (%s)\n", prefix, n.Op)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.Comparison:
		fmt.Printf("%sComparison (%s)\n", prefix, n.Op)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.Logical:
		fmt.Printf("%sLogical\n", prefix)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.Not:
		fmt.Printf("%sNot\n", prefix)
		dumpNode(n.Arg, indent+1)
	case *ast.MethodCall:
		fmt.Printf("%sMethodCall: .%s (%d args)\n", prefix, n.Method, len(n.Args))
		dumpNode(n.Receiver, indent+1)
		for _, a := range n.Args {
			dumpNode(a, indent+1)
		}
	case *ast.NewInstance:
		fmt.Printf("%sNewInstance: %s (%d args)\n", prefix, n.ClassName, len(n.Args))
		for _, a := range n.Args {
			dumpNode(a, indent+1)
		}
	case *ast.IfElse:
		fmt.Printf("%sIfElse\n", prefix)
		dumpNode(n.Condition, indent+1)
		dumpNode(n.Then, indent+1)
		if n.Else != nil {
			dumpNode(n.Else, indent+1)
		}
	case *ast.Return:
		fmt.Printf("%sReturn\n", prefix)
		dumpNode(n.Value, indent+1)
	case *ast.ClassDefinition:
		fmt.Printf("%sClassDefinition: %s(%s)\n", prefix, n.Name, n.Parent)
		for _, m := range n.Methods {
			fmt.Printf("%s  MethodDecl: %s(self, %v)\n", prefix, m.Name, m.Params)
			dumpNode(m.Body, indent+2)
		}
	case *ast.VariableValue:
		fmt.Printf("%sVariableValue: %s\n", prefix, n)
	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral: %d\n", prefix, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", prefix, n.Value)
	case *ast.BoolLiteral:
		fmt.Printf("%sBoolLiteral: %v\n", prefix, n.Value)
	case *ast.NoneLiteral:
		fmt.Printf("%sNoneLiteral\n", prefix)
	default:
		fmt.Printf("%s%T: %s\n", prefix, node, node)
	}
}
