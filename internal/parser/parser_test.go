package parser

import (
	"testing"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := New(l)
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() error: %v", err)
	}
	return prog
}

func TestParseSimpleAssignment(t *testing.T) {
	prog := parseProgram(t, "x = 5\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	assign, ok := prog.Statements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", prog.Statements[0])
	}
	if assign.Name != "x" {
		t.Errorf("expected name 'x', got %q", assign.Name)
	}
	num, ok := assign.Value.(*ast.NumberLiteral)
	if !ok || num.Value != 5 {
		t.Errorf("expected NumberLiteral(5), got %#v", assign.Value)
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	prog := parseProgram(t, "x = 1 + 2 * 3\n")
	assign := prog.Statements[0].(*ast.Assignment)
	add, ok := assign.Value.(*ast.Arithmetic)
	if !ok || add.Op != ast.Add {
		t.Fatalf("expected top-level Add, got %#v", assign.Value)
	}
	if _, ok := add.Left.(*ast.NumberLiteral); !ok {
		t.Errorf("expected left operand to be a literal, got %T", add.Left)
	}
	mult, ok := add.Right.(*ast.Arithmetic)
	if !ok || mult.Op != ast.Mult {
		t.Fatalf("expected right operand to be Mult (higher precedence), got %#v", add.Right)
	}
}

func TestParseComparisonAndLogical(t *testing.T) {
	prog := parseProgram(t, "x = 1 < 2 and 3 == 3\n")
	assign := prog.Statements[0].(*ast.Assignment)
	logical, ok := assign.Value.(*ast.Logical)
	if !ok || logical.Op != ast.LogicalAnd {
		t.Fatalf("expected top-level Logical/And, got %#v", assign.Value)
	}
	if _, ok := logical.Left.(*ast.Comparison); !ok {
		t.Errorf("expected left operand to be a Comparison, got %T", logical.Left)
	}
	if _, ok := logical.Right.(*ast.Comparison); !ok {
		t.Errorf("expected right operand to be a Comparison, got %T", logical.Right)
	}
}

func TestParseUnaryNot(t *testing.T) {
	prog := parseProgram(t, "x = not True\n")
	assign := prog.Statements[0].(*ast.Assignment)
	not, ok := assign.Value.(*ast.Not)
	if !ok {
		t.Fatalf("expected *ast.Not, got %T", assign.Value)
	}
	if _, ok := not.Arg.(*ast.BoolLiteral); !ok {
		t.Errorf("expected BoolLiteral argument, got %T", not.Arg)
	}
}

func TestParseUnaryMinusFoldsIntoLiteral(t *testing.T) {
	prog := parseProgram(t, "x = -5\n")
	assign := prog.Statements[0].(*ast.Assignment)
	num, ok := assign.Value.(*ast.NumberLiteral)
	if !ok || num.Value != -5 {
		t.Fatalf("expected folded NumberLiteral(-5), got %#v", assign.Value)
	}
}

func TestParseUnaryMinusOnNonLiteralSynthesizesSubtraction(t *testing.T) {
	prog := parseProgram(t, "x = -y\n")
	assign := prog.Statements[0].(*ast.Assignment)
	sub, ok := assign.Value.(*ast.Arithmetic)
	if !ok || sub.Op != ast.Sub {
		t.Fatalf("expected synthesized Sub, got %#v", assign.Value)
	}
	zero, ok := sub.Left.(*ast.NumberLiteral)
	if !ok || zero.Value != 0 {
		t.Errorf("expected left operand 0, got %#v", sub.Left)
	}
}

func TestParseFieldAssignment(t *testing.T) {
	prog := parseProgram(t, "self.x = 1\n")
	fa, ok := prog.Statements[0].(*ast.FieldAssignment)
	if !ok {
		t.Fatalf("expected *ast.FieldAssignment, got %T", prog.Statements[0])
	}
	if fa.Field != "x" {
		t.Errorf("expected field 'x', got %q", fa.Field)
	}
	if len(fa.Target.Path) != 1 || fa.Target.Path[0] != "self" {
		t.Errorf("expected target path [self], got %v", fa.Target.Path)
	}
}

func TestParseNestedFieldAssignment(t *testing.T) {
	prog := parseProgram(t, "a.b.c = 1\n")
	fa := prog.Statements[0].(*ast.FieldAssignment)
	if fa.Field != "c" {
		t.Errorf("expected field 'c', got %q", fa.Field)
	}
	wantPath := []string{"a", "b"}
	for i, p := range wantPath {
		if fa.Target.Path[i] != p {
			t.Errorf("target path[%d] = %q, want %q", i, fa.Target.Path[i], p)
		}
	}
}

func TestParseBareVariableStatement(t *testing.T) {
	prog := parseProgram(t, "x\n")
	es, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", prog.Statements[0])
	}
	v, ok := es.Expr.(*ast.VariableValue)
	if !ok || v.Path[0] != "x" {
		t.Errorf("expected VariableValue([x]), got %#v", es.Expr)
	}
}

func TestParseMethodCallStatement(t *testing.T) {
	prog := parseProgram(t, "self.greet(1, 2)\n")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	call, ok := es.Expr.(*ast.MethodCall)
	if !ok {
		t.Fatalf("expected *ast.MethodCall, got %T", es.Expr)
	}
	if call.Method != "greet" {
		t.Errorf("expected method 'greet', got %q", call.Method)
	}
	if len(call.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseBareCallIsConstruction(t *testing.T) {
	// Mython has no free functions: a call on a bare name constructs
	// an instance, exactly like the explicit new form.
	prog := parseProgram(t, "p = Point(3, 4)\n")
	assign := prog.Statements[0].(*ast.Assignment)
	newInst, ok := assign.Value.(*ast.NewInstance)
	if !ok {
		t.Fatalf("expected *ast.NewInstance, got %T", assign.Value)
	}
	if newInst.ClassName != "Point" {
		t.Errorf("expected class name 'Point', got %q", newInst.ClassName)
	}
	if len(newInst.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(newInst.Args))
	}
}

func TestParseConstructionStatementWithChainedCall(t *testing.T) {
	prog := parseProgram(t, "C().who()\n")
	es, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", prog.Statements[0])
	}
	call, ok := es.Expr.(*ast.MethodCall)
	if !ok || call.Method != "who" {
		t.Fatalf("expected call to 'who', got %#v", es.Expr)
	}
	if _, ok := call.Receiver.(*ast.NewInstance); !ok {
		t.Fatalf("expected NewInstance receiver, got %T", call.Receiver)
	}
}

func TestParseNewInstance(t *testing.T) {
	prog := parseProgram(t, "x = new Point(1, 2)\n")
	assign := prog.Statements[0].(*ast.Assignment)
	newInst, ok := assign.Value.(*ast.NewInstance)
	if !ok {
		t.Fatalf("expected *ast.NewInstance, got %T", assign.Value)
	}
	if newInst.ClassName != "Point" {
		t.Errorf("expected class name 'Point', got %q", newInst.ClassName)
	}
	if len(newInst.Args) != 2 {
		t.Errorf("expected 2 args, got %d", len(newInst.Args))
	}
}

func TestParseStrCall(t *testing.T) {
	prog := parseProgram(t, "x = str(5)\n")
	assign := prog.Statements[0].(*ast.Assignment)
	if _, ok := assign.Value.(*ast.Stringify); !ok {
		t.Fatalf("expected *ast.Stringify, got %T", assign.Value)
	}
}

func TestParsePrintStatement(t *testing.T) {
	prog := parseProgram(t, "print 1, 2, 3\n")
	p, ok := prog.Statements[0].(*ast.Print)
	if !ok {
		t.Fatalf("expected *ast.Print, got %T", prog.Statements[0])
	}
	if len(p.Args) != 3 {
		t.Errorf("expected 3 args, got %d", len(p.Args))
	}
}

func TestParseReturnStatement(t *testing.T) {
	// return parses anywhere; a top-level one fails only at evaluation
	// (UnboundReturn), so it is checked here inside a method body.
	prog := parseProgram(t, "class C:\n  def f(self):\n    return 1\n")
	cd := prog.Statements[0].(*ast.ClassDefinition)
	body := cd.Methods[0].Body
	ret, ok := body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", body.Statements[0])
	}
	if num, ok := ret.Value.(*ast.NumberLiteral); !ok || num.Value != 1 {
		t.Errorf("expected return value 1, got %#v", ret.Value)
	}
}

func TestParseIfElse(t *testing.T) {
	input := "if x:\n  y = 1\nelse:\n  y = 2\n"
	prog := parseProgram(t, input)
	ie, ok := prog.Statements[0].(*ast.IfElse)
	if !ok {
		t.Fatalf("expected *ast.IfElse, got %T", prog.Statements[0])
	}
	if len(ie.Then.Statements) != 1 {
		t.Errorf("expected 1 statement in then-branch, got %d", len(ie.Then.Statements))
	}
	if ie.Else == nil || len(ie.Else.Statements) != 1 {
		t.Errorf("expected 1 statement in else-branch, got %#v", ie.Else)
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	prog := parseProgram(t, "if x:\n  y = 1\n")
	ie := prog.Statements[0].(*ast.IfElse)
	if ie.Else != nil {
		t.Errorf("expected nil Else, got %#v", ie.Else)
	}
}

func TestParseClassDefinitionWithInheritance(t *testing.T) {
	input := "class Dog(Animal):\n  def speak(self):\n    return 1\n"
	prog := parseProgram(t, input)
	cd, ok := prog.Statements[0].(*ast.ClassDefinition)
	if !ok {
		t.Fatalf("expected *ast.ClassDefinition, got %T", prog.Statements[0])
	}
	if cd.Name != "Dog" {
		t.Errorf("expected name 'Dog', got %q", cd.Name)
	}
	if cd.Parent != "Animal" {
		t.Errorf("expected parent 'Animal', got %q", cd.Parent)
	}
	if len(cd.Methods) != 1 || cd.Methods[0].Name != "speak" {
		t.Fatalf("expected a single 'speak' method, got %#v", cd.Methods)
	}
}

func TestParseClassDefinitionWithoutParent(t *testing.T) {
	prog := parseProgram(t, "class Animal:\n  def speak(self):\n    return 1\n")
	cd := prog.Statements[0].(*ast.ClassDefinition)
	if cd.Parent != "" {
		t.Errorf("expected no parent, got %q", cd.Parent)
	}
}

func TestParseMethodDeclRequiresSelfFirst(t *testing.T) {
	l := lexer.New("class C:\n  def f(x):\n    return 1\n")
	p := New(l)
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected an error when a method's first parameter is not 'self'")
	}
}

func TestParseMethodDeclWithExtraParams(t *testing.T) {
	prog := parseProgram(t, "class C:\n  def f(self, a, b):\n    return a\n")
	cd := prog.Statements[0].(*ast.ClassDefinition)
	m := cd.Methods[0]
	if len(m.Params) != 2 || m.Params[0] != "a" || m.Params[1] != "b" {
		t.Fatalf("expected params [a b], got %v", m.Params)
	}
}

func TestParseChainedMethodCall(t *testing.T) {
	prog := parseProgram(t, "x = a.b().c()\n")
	assign := prog.Statements[0].(*ast.Assignment)
	outer, ok := assign.Value.(*ast.MethodCall)
	if !ok || outer.Method != "c" {
		t.Fatalf("expected outer call to 'c', got %#v", assign.Value)
	}
	inner, ok := outer.Receiver.(*ast.MethodCall)
	if !ok || inner.Method != "b" {
		t.Fatalf("expected inner call to 'b', got %#v", outer.Receiver)
	}
}
