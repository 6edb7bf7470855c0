package runtime

import "fmt"

// One struct per error kind, each satisfying the error interface and
// each providing an IsXError helper for type-switch-free checks at
// call sites.

// NameError is raised by a reference to an unbound top-level or frame
// name.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("NameError: name '%s' is not defined", e.Name)
}

// IsNameError reports whether err is a *NameError.
func IsNameError(err error) bool {
	_, ok := err.(*NameError)
	return ok
}

// AttributeError is raised by a missing attribute, or attribute access
// on a non-instance.
type AttributeError struct {
	Receiver string // textual form of the receiver, for the message
	Attr     string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("AttributeError: '%s' has no attribute '%s'", e.Receiver, e.Attr)
}

// IsAttributeError reports whether err is an *AttributeError.
func IsAttributeError(err error) bool {
	_, ok := err.(*AttributeError)
	return ok
}

// TypeError is raised when an operator or primitive is applied to
// incompatible variants.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("TypeError: %s", e.Message)
}

// IsTypeError reports whether err is a *TypeError.
func IsTypeError(err error) bool {
	_, ok := err.(*TypeError)
	return ok
}

// MethodNotFoundError is raised when a method name is unknown on the
// receiver's class chain, or its arity does not match the call
// (except the __str__ shortcut, which synthesizes an identity
// surrogate instead of failing).
type MethodNotFoundError struct {
	ClassName  string
	MethodName string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("MethodNotFound: %s has no method '%s' matching the given arguments", e.ClassName, e.MethodName)
}

// IsMethodNotFoundError reports whether err is a *MethodNotFoundError.
func IsMethodNotFoundError(err error) bool {
	_, ok := err.(*MethodNotFoundError)
	return ok
}

// ZeroDivisionError is raised by integer division by zero.
type ZeroDivisionError struct{}

func (e *ZeroDivisionError) Error() string {
	return "ZeroDivisionError: division by zero"
}

// IsZeroDivisionError reports whether err is a *ZeroDivisionError.
func IsZeroDivisionError(err error) bool {
	_, ok := err.(*ZeroDivisionError)
	return ok
}

// UnboundReturnError is raised when a return signal escapes beyond any
// in-flight method call, i.e. a return statement executed at the top
// level of a program.
type UnboundReturnError struct{}

func (e *UnboundReturnError) Error() string {
	return "UnboundReturn: return statement executed outside any method call"
}

// IsUnboundReturnError reports whether err is an *UnboundReturnError.
func IsUnboundReturnError(err error) bool {
	_, ok := err.(*UnboundReturnError)
	return ok
}
