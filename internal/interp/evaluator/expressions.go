package evaluator

import (
	"strconv"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/interp/runtime"
)

// evalExpr evaluates expr against env.
func (e *Evaluator) evalExpr(env *runtime.Environment, expr ast.Expression) (runtime.Value, error) {
	switch x := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.Number(x.Value), nil
	case *ast.StringLiteral:
		return runtime.String(x.Value), nil
	case *ast.BoolLiteral:
		return runtime.Bool(x.Value), nil
	case *ast.NoneLiteral:
		return runtime.NoneValue{}, nil
	case *ast.VariableValue:
		return e.resolvePath(env, x.Path)
	case *ast.Stringify:
		v, err := e.evalExpr(env, x.Arg)
		if err != nil {
			return nil, err
		}
		text, err := e.stringifyToText(v)
		if err != nil {
			return nil, err
		}
		return runtime.String(text), nil
	case *ast.Arithmetic:
		return e.evalArithmetic(env, x)
	case *ast.Comparison:
		return e.evalComparison(env, x)
	case *ast.Logical:
		return e.evalLogical(env, x)
	case *ast.Not:
		v, err := e.evalExpr(env, x.Arg)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(!runtime.IsTrue(v)), nil
	case *ast.MethodCall:
		return e.evalMethodCall(env, x)
	case *ast.NewInstance:
		return e.evalNewInstance(env, x)
	default:
		return nil, typeErrorf("unsupported expression %T", expr)
	}
}

// resolvePath resolves a dotted attribute path: an environment lookup
// of the root identifier, then repeated attribute access through
// instance field environments.
func (e *Evaluator) resolvePath(env *runtime.Environment, path []string) (runtime.Value, error) {
	v, err := env.Get(path[0])
	if err != nil {
		return nil, err
	}
	for _, field := range path[1:] {
		inst, ok := v.(*runtime.ObjectInstance)
		if !ok {
			return nil, &runtime.AttributeError{Receiver: path[0], Attr: field}
		}
		fv, ok := inst.Fields.Find(field)
		if !ok {
			return nil, &runtime.AttributeError{Receiver: inst.Class.Name, Attr: field}
		}
		v = fv
	}
	return v, nil
}

// stringifyToText implements the str() conversion rules, also reused
// verbatim by Print: Print's formatting is the same conversion, minus
// string quoting, which this function never applies in the first
// place.
func (e *Evaluator) stringifyToText(v runtime.Value) (string, error) {
	if runtime.IsNone(v) {
		return "None", nil
	}
	switch t := v.(type) {
	case runtime.String:
		return string(t), nil
	case runtime.Number:
		return strconv.FormatInt(int64(t), 10), nil
	case runtime.Bool:
		if t {
			return "True", nil
		}
		return "False", nil
	case *runtime.ObjectInstance:
		if t.HasMethod("__str__") {
			result, err := e.callMethod(t, "__str__", nil)
			if err != nil {
				return "", err
			}
			return e.stringifyToText(result)
		}
		return t.IdentitySurrogate(), nil
	default:
		return "", typeErrorf("cannot convert %s to string", runtime.TypeName(v))
	}
}

func (e *Evaluator) printForm(v runtime.Value) (string, error) {
	return e.stringifyToText(v)
}

func (e *Evaluator) evalArithmetic(env *runtime.Environment, x *ast.Arithmetic) (runtime.Value, error) {
	left, err := e.evalExpr(env, x.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(env, x.Right)
	if err != nil {
		return nil, err
	}

	if x.Op == ast.Add {
		return e.evalAdd(left, right)
	}

	ln, lok := left.(runtime.Number)
	rn, rok := right.(runtime.Number)
	if !lok || !rok {
		return nil, typeErrorf("unsupported operand types for %s: %s and %s", x.Op, runtime.TypeName(left), runtime.TypeName(right))
	}
	switch x.Op {
	case ast.Sub:
		return ln - rn, nil
	case ast.Mult:
		return ln * rn, nil
	case ast.Div:
		if rn == 0 {
			return nil, &runtime.ZeroDivisionError{}
		}
		return ln / rn, nil
	default:
		return nil, typeErrorf("unsupported arithmetic operator %s", x.Op)
	}
}

// evalAdd dispatches Add: Number+Number, then String+String, then a
// polymorphic __add__ dispatch tried on the left operand and, failing
// that, the right operand.
func (e *Evaluator) evalAdd(left, right runtime.Value) (runtime.Value, error) {
	if ln, ok := left.(runtime.Number); ok {
		if rn, ok := right.(runtime.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(runtime.String); ok {
		if rs, ok := right.(runtime.String); ok {
			return ls + rs, nil
		}
	}
	if inst, ok := left.(*runtime.ObjectInstance); ok {
		if m := inst.Class.GetMethod("__add__"); m != nil && m.Arity() == 1 {
			return e.callMethod(inst, "__add__", []runtime.Value{right})
		}
	}
	if inst, ok := right.(*runtime.ObjectInstance); ok {
		if m := inst.Class.GetMethod("__add__"); m != nil && m.Arity() == 1 {
			return e.callMethod(inst, "__add__", []runtime.Value{left})
		}
	}
	return nil, typeErrorf("unsupported operand types for +: %s and %s", runtime.TypeName(left), runtime.TypeName(right))
}

func (e *Evaluator) evalComparison(env *runtime.Environment, x *ast.Comparison) (runtime.Value, error) {
	left, err := e.evalExpr(env, x.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(env, x.Right)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case ast.Eq:
		return runtime.Bool(equal(left, right)), nil
	case ast.NotEq:
		return runtime.Bool(!equal(left, right)), nil
	default:
		lt, err := less(left, right, x.Op)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(lt), nil
	}
}

func (e *Evaluator) evalLogical(env *runtime.Environment, x *ast.Logical) (runtime.Value, error) {
	left, err := e.evalExpr(env, x.Left)
	if err != nil {
		return nil, err
	}
	if x.Op == ast.LogicalAnd && !runtime.IsTrue(left) {
		return runtime.Bool(false), nil
	}
	if x.Op == ast.LogicalOr && runtime.IsTrue(left) {
		return runtime.Bool(true), nil
	}
	right, err := e.evalExpr(env, x.Right)
	if err != nil {
		return nil, err
	}
	return runtime.Bool(runtime.IsTrue(right)), nil
}

func (e *Evaluator) evalMethodCall(env *runtime.Environment, x *ast.MethodCall) (runtime.Value, error) {
	recv, err := e.evalExpr(env, x.Receiver)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.(*runtime.ObjectInstance)
	if !ok {
		return nil, typeErrorf("%s is not an instance", runtime.TypeName(recv))
	}
	args := make([]runtime.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evalExpr(env, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.callMethod(inst, x.Method, args)
}

func (e *Evaluator) evalNewInstance(env *runtime.Environment, x *ast.NewInstance) (runtime.Value, error) {
	class, ok := e.lookupClass(x.ClassName)
	if !ok {
		return nil, &runtime.NameError{Name: x.ClassName}
	}
	args := make([]runtime.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evalExpr(env, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	inst := runtime.NewObjectInstance(class)
	if defaultInit(class) {
		if len(args) != 0 {
			return nil, typeErrorf("%s() takes no arguments (%d given)", x.ClassName, len(args))
		}
		return inst, nil
	}
	if _, err := e.callMethod(inst, "__init__", args); err != nil {
		return nil, err
	}
	return inst, nil
}
