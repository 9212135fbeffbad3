package interpreter

import "github.com/dolthub/swiss"

// Environment is a mutable name-to-value mapping with an optional link to an
// enclosing scope. Environments form a singly-linked chain rooted at a
// distinguished global environment; a child is always created after its
// parent, so the enclosing link can never form a cycle. A function value's
// closure keeps its defining environment alive independently of the call
// frame that created it.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment returns an environment enclosed by parent, or a root
// (global) environment when parent is nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to value in this environment, overwriting any existing
// binding of the same name in this same environment (used for both fresh
// declarations and, at the global scope, redeclaration).
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get looks up name starting at this environment and walking outward. It
// returns ok=false if no environment in the chain defines it.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign stores value into the nearest environment in the chain that
// already defines name. It returns ok=false if no environment defines it.
func (e *Environment) Assign(name string, value Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, value)
			return true
		}
	}
	return false
}

// ancestor walks distance environments outward from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment distance hops outward from e. The
// caller (the interpreter, guided by the resolver's side table) guarantees
// that environment defines name.
func (e *Environment) GetAt(distance int, name string) (Value, bool) {
	return e.ancestor(distance).values.Get(name)
}

// AssignAt stores value into the environment distance hops outward from e.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values.Put(name, value)
}
