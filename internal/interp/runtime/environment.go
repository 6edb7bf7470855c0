package runtime

// Environment is a flat name-to-value mapping. Unlike the lexically
// nested scopes a general-purpose language environment would need,
// Mython method frames never inherit bindings from an enclosing
// textual scope — the only way a method body reaches outside its own
// frame is through an explicit `self` attribute access, which this
// package models separately via ObjectInstance's own field
// environment. A single flat map is therefore sufficient both for the
// top-level environment and for per-call frames.
type Environment struct {
	vars map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Get returns the value bound to name, or an error if name is unbound.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.vars[name]; ok {
		return v, nil
	}
	return nil, &NameError{Name: name}
}

// Find returns the value bound to name and true, or (nil, false) if
// name is unbound. It never fails.
func (e *Environment) Find(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set inserts or replaces the binding for name.
func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.vars[name]
	return ok
}
