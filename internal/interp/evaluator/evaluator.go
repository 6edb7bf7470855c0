// Package evaluator walks a parsed Mython program against a top-level
// environment, producing side effects on a configured output sink.
// It implements AST evaluation, the truthiness/comparison kernel, and
// return-signal unwinding.
package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/interp/runtime"
)

// Evaluator runs a parsed program. It owns the class registry (kept
// separate from the environment chain so that a method frame, which
// does not inherit its defining scope, can still resolve `new C(...)`
// by name) and the call stack used for recursion-depth tracking and
// stack traces.
type Evaluator struct {
	Out       io.Writer
	classes   map[string]*runtime.ClassInfo
	callStack *runtime.CallStack
}

// New creates an Evaluator writing Print output to out. If out is nil,
// os.Stdout is used.
func New(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{
		Out:       out,
		classes:   make(map[string]*runtime.ClassInfo),
		callStack: runtime.NewCallStack(0),
	}
}

// Eval runs program against a fresh top-level environment, which
// persists for the whole evaluation.
func (e *Evaluator) Eval(program *ast.Program) error {
	env := runtime.NewEnvironment()
	cf := &runtime.ControlFlow{}
	for _, stmt := range program.Statements {
		if err := e.execStatement(env, cf, stmt); err != nil {
			return err
		}
		if cf.IsActive() {
			// A return reaching the top level escaped every in-flight call.
			return &runtime.UnboundReturnError{}
		}
	}
	return nil
}

// lookupClass resolves a class name through the registry populated by
// ClassDefinition statements (see execClassDefinition).
func (e *Evaluator) lookupClass(name string) (*runtime.ClassInfo, bool) {
	c, ok := e.classes[name]
	return c, ok
}

// SetMaxCallDepth overrides the recursion-depth limit enforced on
// method calls (see internal/interp/runtime.CallStack). A
// non-positive depth restores the runtime default. This is how
// cmd/mython wires a .mython.yaml maxCallDepth setting through to the
// evaluator.
func (e *Evaluator) SetMaxCallDepth(depth int) {
	e.callStack.SetMaxDepth(depth)
}

func typeErrorf(format string, args ...any) error {
	return &runtime.TypeError{Message: fmt.Sprintf(format, args...)}
}
