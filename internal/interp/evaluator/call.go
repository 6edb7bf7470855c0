package evaluator

import (
	"github.com/mythonlang/mython/internal/interp/runtime"
)

// callMethod resolves a method by name through the class and parent
// chain, arity-checks it, builds a fresh frame binding self and the
// formal parameters, executes the body, and unwinds exactly one
// return signal.
func (e *Evaluator) callMethod(inst *runtime.ObjectInstance, name string, args []runtime.Value) (runtime.Value, error) {
	method := inst.Class.GetMethod(name)
	if method == nil {
		if name == "__str__" {
			return runtime.String(inst.IdentitySurrogate()), nil
		}
		return nil, &runtime.MethodNotFoundError{ClassName: inst.Class.Name, MethodName: name}
	}
	if method.Arity() != len(args) {
		if name == "__str__" {
			return runtime.String(inst.IdentitySurrogate()), nil
		}
		return nil, &runtime.MethodNotFoundError{ClassName: inst.Class.Name, MethodName: name}
	}

	if err := e.callStack.Push(name, "", nil); err != nil {
		return nil, err
	}
	defer e.callStack.Pop()

	frame := runtime.NewEnvironment()
	frame.Set("self", inst)
	for i, param := range method.Params {
		frame.Set(param, args[i])
	}

	cf := &runtime.ControlFlow{}
	if err := e.execCompound(frame, cf, method.Body); err != nil {
		return nil, err
	}
	if cf.IsReturn() {
		return cf.ReturnValue, nil
	}
	return runtime.NoneValue{}, nil
}

// defaultInit reports whether class declares no __init__ anywhere on
// its parent chain, in which case construction behaves as if a
// zero-parameter, empty-body __init__ existed.
func defaultInit(class *runtime.ClassInfo) bool {
	return class.GetMethod("__init__") == nil
}
