package evaluator

import (
	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/interp/runtime"
)

// execStatement executes a single statement against env.
// cf is the return-unwinding carrier shared by the enclosing method
// call (or the top-level Eval loop); execStatement arms it via Return
// and never clears it — callMethod (see call.go) gives each method
// call a fresh carrier and reads the return value from it.
func (e *Evaluator) execStatement(env *runtime.Environment, cf *runtime.ControlFlow, stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Compound:
		return e.execCompound(env, cf, s)
	case *ast.ExpressionStatement:
		_, err := e.evalExpr(env, s.Expr)
		return err
	case *ast.Assignment:
		v, err := e.evalExpr(env, s.Value)
		if err != nil {
			return err
		}
		env.Set(s.Name, v)
		return nil
	case *ast.FieldAssignment:
		return e.execFieldAssignment(env, s)
	case *ast.Print:
		return e.execPrint(env, s)
	case *ast.IfElse:
		return e.execIfElse(env, cf, s)
	case *ast.Return:
		v, err := e.evalExpr(env, s.Value)
		if err != nil {
			return err
		}
		cf.SetReturn(v)
		return nil
	case *ast.ClassDefinition:
		return e.execClassDefinition(env, s)
	default:
		return typeErrorf("unsupported statement %T", stmt)
	}
}

// execCompound evaluates each contained statement in order; a return
// signal inside any statement stops execution of the remaining
// siblings and propagates to the caller unchanged.
func (e *Evaluator) execCompound(env *runtime.Environment, cf *runtime.ControlFlow, c *ast.Compound) error {
	for _, stmt := range c.Statements {
		if err := e.execStatement(env, cf, stmt); err != nil {
			return err
		}
		if cf.IsActive() {
			return nil
		}
	}
	return nil
}

func (e *Evaluator) execFieldAssignment(env *runtime.Environment, s *ast.FieldAssignment) error {
	recv, err := e.resolvePath(env, s.Target.Path)
	if err != nil {
		return err
	}
	inst, ok := recv.(*runtime.ObjectInstance)
	if !ok {
		return &runtime.AttributeError{Receiver: s.Target.String(), Attr: s.Field}
	}
	v, err := e.evalExpr(env, s.Value)
	if err != nil {
		return err
	}
	inst.Fields.Set(s.Field, v)
	return nil
}

func (e *Evaluator) execPrint(env *runtime.Environment, s *ast.Print) error {
	parts := make([]string, len(s.Args))
	for i, arg := range s.Args {
		v, err := e.evalExpr(env, arg)
		if err != nil {
			return err
		}
		text, err := e.printForm(v)
		if err != nil {
			return err
		}
		parts[i] = text
	}
	for i, p := range parts {
		if i > 0 {
			if _, err := e.Out.Write([]byte(" ")); err != nil {
				return err
			}
		}
		if _, err := e.Out.Write([]byte(p)); err != nil {
			return err
		}
	}
	_, err := e.Out.Write([]byte("\n"))
	return err
}

func (e *Evaluator) execIfElse(env *runtime.Environment, cf *runtime.ControlFlow, s *ast.IfElse) error {
	cond, err := e.evalExpr(env, s.Condition)
	if err != nil {
		return err
	}
	if runtime.IsTrue(cond) {
		return e.execCompound(env, cf, s.Then)
	}
	if s.Else != nil {
		return e.execCompound(env, cf, s.Else)
	}
	return nil
}

// execClassDefinition binds the class descriptor into both the
// current environment (classes are first-class values, storable like
// any other) and the evaluator's class registry, needed so that
// `new` expressions inside method bodies can resolve class names
// despite method frames not inheriting lexical scope.
func (e *Evaluator) execClassDefinition(env *runtime.Environment, s *ast.ClassDefinition) error {
	var parent *runtime.ClassInfo
	if s.Parent != "" {
		p, ok := e.lookupClass(s.Parent)
		if !ok {
			return &runtime.NameError{Name: s.Parent}
		}
		parent = p
	}
	class := runtime.NewClassInfo(s.Name, parent)
	for _, m := range s.Methods {
		class.Methods[m.Name] = &runtime.MethodInfo{
			Name:   m.Name,
			Params: m.Params,
			Body:   m.Body,
		}
	}
	e.classes[s.Name] = class
	env.Set(s.Name, class)
	return nil
}
