package lang

import "fmt"

// Env implements a lexical scope chain of variable bindings.
type Env struct {
	parent *Env
	vars   map[string]*Variable
}

// NewEnv creates an environment with optional parent.
func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		vars:   make(map[string]*Variable),
	}
}

// Define binds name to v in the current frame, shadowing outer bindings.
func (e *Env) Define(name string, v *Variable) {
	e.vars[name] = v
}

// Declare binds name to fresh storage holding val and returns the binding.
func (e *Env) Declare(name string, val Value) *Variable {
	v := NewVariable(val)
	e.Define(name, v)
	return v
}

// Lookup retrieves a binding, searching parents if necessary.
func (e *Env) Lookup(name string) (*Variable, error) {
	if v, ok := e.vars[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return nil, fmt.Errorf("unbound variable: %s", name)
}

// Get reads the value bound to name.
func (e *Env) Get(name string) (Value, error) {
	v, err := e.Lookup(name)
	if err != nil {
		return Value{}, err
	}
	return v.Get(), nil
}

// Set updates the storage behind an existing binding, searching parents if
// needed.
func (e *Env) Set(name string, val Value) error {
	v, err := e.Lookup(name)
	if err != nil {
		return err
	}
	v.Set(val)
	return nil
}

// Parent returns the parent environment.
func (e *Env) Parent() *Env {
	return e.parent
}
