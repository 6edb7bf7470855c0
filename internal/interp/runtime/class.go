package runtime

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mythonlang/mython/internal/ast"
)

// MethodInfo is a method record: a name, an ordered formal parameter
// list (never including the implicit "self"), and the owned statement
// body shared through the class. Method bodies are never mutated
// after the class is constructed.
type MethodInfo struct {
	Name   string
	Params []string
	Body   *ast.Compound
}

// Arity returns the number of declared (non-self) parameters.
func (m *MethodInfo) Arity() int {
	return len(m.Params)
}

// ClassInfo is an immutable-after-construction class descriptor: a
// name, a method table, and an optional parent.
type ClassInfo struct {
	Name    string
	Parent  *ClassInfo
	Methods map[string]*MethodInfo
}

func (*ClassInfo) isValue() {}

// NewClassInfo creates an empty class descriptor.
func NewClassInfo(name string, parent *ClassInfo) *ClassInfo {
	return &ClassInfo{Name: name, Parent: parent, Methods: make(map[string]*MethodInfo)}
}

// GetMethod looks up name in the class's own method table, delegating
// to the parent chain on miss.
func (c *ClassInfo) GetMethod(name string) *MethodInfo {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

// ObjectInstance is a Mython class instance: a reference to its class
// (by identity; the class must outlive the instance) and a mutable
// per-instance field environment.
type ObjectInstance struct {
	Class  *ClassInfo
	Fields *Environment

	// id is a synthetic per-instance identity surrogate, used to format
	// the fallback __str__ rendering for a class that defines no
	// __str__. Seeding it from a UUID rather than the Go pointer value
	// keeps the surrogate stable even under a moving collector, and
	// avoids leaking real process memory addresses.
	id string
}

func (*ObjectInstance) isValue() {}

// NewObjectInstance creates a fresh instance of class with an empty
// field environment.
func NewObjectInstance(class *ClassInfo) *ObjectInstance {
	return &ObjectInstance{
		Class:  class,
		Fields: NewEnvironment(),
		id:     strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
}

// IdentitySurrogate renders the stable, non-empty, opaque identity
// form used to stringify an instance whose class defines no __str__.
func (o *ObjectInstance) IdentitySurrogate() string {
	return fmt.Sprintf("<%s object at 0x%s>", o.Class.Name, o.id[:12])
}

// HasMethod reports whether o.Class (or an ancestor) declares name.
func (o *ObjectInstance) HasMethod(name string) bool {
	return o.Class.GetMethod(name) != nil
}
