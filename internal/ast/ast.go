// Package ast defines the node types produced by internal/parser and
// consumed by internal/interp/evaluator.
package ast

import (
	"fmt"
	"strings"

	"github.com/mythonlang/mython/internal/lexer"
)

// Node is the common interface implemented by every AST node.
type Node interface {
	Pos() lexer.Position
	String() string
}

// Statement is a node that is executed for its side effects.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that evaluates to a Value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of a parsed Mython source file: a flat sequence
// of top-level statements executed in order against the top-level
// environment.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) == 0 {
		return lexer.Position{Line: 1, Column: 1}
	}
	return p.Statements[0].Pos()
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Compound is a block of statements executed in order. Used for method
// bodies and if/else branches; a class body is held as
// ClassDefinition.Methods instead.
type Compound struct {
	Position   lexer.Position
	Statements []Statement
}

func (c *Compound) Pos() lexer.Position { return c.Position }
func (c *Compound) statementNode()      {}
func (c *Compound) String() string {
	var sb strings.Builder
	for _, s := range c.Statements {
		sb.WriteString("  ")
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ExpressionStatement wraps a bare expression used as a statement
// (rare in Mython, but needed e.g. for a call made only for its
// side effects).
type ExpressionStatement struct {
	Position lexer.Position
	Expr     Expression
}

func (e *ExpressionStatement) Pos() lexer.Position { return e.Position }
func (e *ExpressionStatement) statementNode()      {}
func (e *ExpressionStatement) String() string      { return e.Expr.String() }

// --- Literals ---

type NumberLiteral struct {
	Position lexer.Position
	Value    int64
}

func (n *NumberLiteral) Pos() lexer.Position { return n.Position }
func (n *NumberLiteral) expressionNode()     {}
func (n *NumberLiteral) String() string      { return fmt.Sprintf("%d", n.Value) }

type StringLiteral struct {
	Position lexer.Position
	Value    string
}

func (s *StringLiteral) Pos() lexer.Position { return s.Position }
func (s *StringLiteral) expressionNode()     {}
func (s *StringLiteral) String() string      { return fmt.Sprintf("%q", s.Value) }

type BoolLiteral struct {
	Position lexer.Position
	Value    bool
}

func (b *BoolLiteral) Pos() lexer.Position { return b.Position }
func (b *BoolLiteral) expressionNode()     {}
func (b *BoolLiteral) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

type NoneLiteral struct {
	Position lexer.Position
}

func (n *NoneLiteral) Pos() lexer.Position { return n.Position }
func (n *NoneLiteral) expressionNode()     {}
func (n *NoneLiteral) String() string      { return "None" }

// VariableValue is a dotted attribute path: x.f1.f2...fn. Path has at
// least one element (the root identifier); Path[1:] are attribute
// accesses.
type VariableValue struct {
	Position lexer.Position
	Path     []string
}

func (v *VariableValue) Pos() lexer.Position { return v.Position }
func (v *VariableValue) expressionNode()     {}
func (v *VariableValue) String() string      { return strings.Join(v.Path, ".") }

// --- Assignment ---

// Assignment is `x = e` for a bare (non-dotted) name.
type Assignment struct {
	Position lexer.Position
	Name     string
	Value    Expression
}

func (a *Assignment) Pos() lexer.Position { return a.Position }
func (a *Assignment) statementNode()      {}
func (a *Assignment) String() string      { return fmt.Sprintf("%s = %s", a.Name, a.Value) }

// FieldAssignment is `p.f = e`, where p is a (possibly dotted) path
// naming an instance and f is the field being written.
type FieldAssignment struct {
	Position lexer.Position
	Target   *VariableValue // path to the instance; Target.Path[len-1] is NOT the field
	Field    string
	Value    Expression
}

func (f *FieldAssignment) Pos() lexer.Position { return f.Position }
func (f *FieldAssignment) statementNode()      {}
func (f *FieldAssignment) String() string {
	return fmt.Sprintf("%s.%s = %s", f.Target, f.Field, f.Value)
}

// --- Print / Stringify ---

type Print struct {
	Position lexer.Position
	Args     []Expression
}

func (p *Print) Pos() lexer.Position { return p.Position }
func (p *Print) statementNode()      {}
func (p *Print) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return "print " + strings.Join(parts, ", ")
}

type Stringify struct {
	Position lexer.Position
	Arg      Expression
}

func (s *Stringify) Pos() lexer.Position { return s.Position }
func (s *Stringify) expressionNode()     {}
func (s *Stringify) String() string      { return fmt.Sprintf("str(%s)", s.Arg) }

// --- Arithmetic ---

type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mult
	Div
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

type Arithmetic struct {
	Position lexer.Position
	Op       BinaryOp
	Left     Expression
	Right    Expression
}

func (a *Arithmetic) Pos() lexer.Position { return a.Position }
func (a *Arithmetic) expressionNode()     {}
func (a *Arithmetic) String() string      { return fmt.Sprintf("(%s %s %s)", a.Left, a.Op, a.Right) }

// --- Comparison ---

type CompareOp int

const (
	Lt CompareOp = iota
	Lte
	Gt
	Gte
	Eq
	NotEq
)

func (op CompareOp) String() string {
	switch op {
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	case Eq:
		return "=="
	case NotEq:
		return "!="
	default:
		return "?"
	}
}

type Comparison struct {
	Position lexer.Position
	Op       CompareOp
	Left     Expression
	Right    Expression
}

func (c *Comparison) Pos() lexer.Position { return c.Position }
func (c *Comparison) expressionNode()     {}
func (c *Comparison) String() string      { return fmt.Sprintf("(%s %s %s)", c.Left, c.Op, c.Right) }

// --- Logical ---

type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)

type Logical struct {
	Position lexer.Position
	Op       LogicalOp
	Left     Expression
	Right    Expression
}

func (l *Logical) Pos() lexer.Position { return l.Position }
func (l *Logical) expressionNode()     {}
func (l *Logical) String() string {
	op := "and"
	if l.Op == LogicalOr {
		op = "or"
	}
	return fmt.Sprintf("(%s %s %s)", l.Left, op, l.Right)
}

type Not struct {
	Position lexer.Position
	Arg      Expression
}

func (n *Not) Pos() lexer.Position { return n.Position }
func (n *Not) expressionNode()     {}
func (n *Not) String() string      { return fmt.Sprintf("not %s", n.Arg) }

// --- Calls / construction ---

// MethodCall is `recv.method(args...)`.
type MethodCall struct {
	Position lexer.Position
	Receiver Expression
	Method   string
	Args     []Expression
}

func (m *MethodCall) Pos() lexer.Position { return m.Position }
func (m *MethodCall) expressionNode()     {}
func (m *MethodCall) String() string {
	parts := make([]string, len(m.Args))
	for i, a := range m.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s.%s(%s)", m.Receiver, m.Method, strings.Join(parts, ", "))
}

// NewInstance is `new ClassName(args...)`.
type NewInstance struct {
	Position  lexer.Position
	ClassName string
	Args      []Expression
}

func (n *NewInstance) Pos() lexer.Position { return n.Position }
func (n *NewInstance) expressionNode()     {}
func (n *NewInstance) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("new %s(%s)", n.ClassName, strings.Join(parts, ", "))
}

// --- Control flow ---

type IfElse struct {
	Position  lexer.Position
	Condition Expression
	Then      *Compound
	Else      *Compound // nil if no else branch
}

func (i *IfElse) Pos() lexer.Position { return i.Position }
func (i *IfElse) statementNode()      {}
func (i *IfElse) String() string {
	if i.Else != nil {
		return fmt.Sprintf("if %s:\n%selse:\n%s", i.Condition, i.Then, i.Else)
	}
	return fmt.Sprintf("if %s:\n%s", i.Condition, i.Then)
}

type Return struct {
	Position lexer.Position
	Value    Expression
}

func (r *Return) Pos() lexer.Position { return r.Position }
func (r *Return) statementNode()      {}
func (r *Return) String() string      { return fmt.Sprintf("return %s", r.Value) }

// --- Declarations ---

// MethodDecl is `def name(self, p1, p2):` followed by an indented body.
// Params does not include "self" — self is always implicitly bound.
type MethodDecl struct {
	Position lexer.Position
	Name     string
	Params   []string
	Body     *Compound
}

func (m *MethodDecl) Pos() lexer.Position { return m.Position }
func (m *MethodDecl) String() string {
	return fmt.Sprintf("def %s(self, %s):\n%s", m.Name, strings.Join(m.Params, ", "), m.Body)
}

// ClassDefinition is `class Name(Parent):` followed by an indented
// sequence of method declarations. Parent is "" when the class has no
// declared base.
type ClassDefinition struct {
	Position lexer.Position
	Name     string
	Parent   string
	Methods  []*MethodDecl
}

func (c *ClassDefinition) Pos() lexer.Position { return c.Position }
func (c *ClassDefinition) statementNode()      {}
func (c *ClassDefinition) String() string {
	var sb strings.Builder
	if c.Parent != "" {
		fmt.Fprintf(&sb, "class %s(%s):\n", c.Name, c.Parent)
	} else {
		fmt.Fprintf(&sb, "class %s:\n", c.Name)
	}
	for _, m := range c.Methods {
		sb.WriteString(m.String())
	}
	return sb.String()
}
