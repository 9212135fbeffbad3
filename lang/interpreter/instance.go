package interpreter

import (
	"github.com/dolthub/swiss"

	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/token"
)

// Instance is an object created by calling a Class. Its field map mutates
// in place for as long as any value references the instance; it has
// reference identity, so two instances are never value-equal.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, Value]
}

// NewInstance returns a fresh, field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.class.Name + " instance" }
func (i *Instance) Truth() bool    { return true }

// Get resolves a property read. Fields shadow methods: a field with the
// same name as a method always wins. A bound method is a fresh Function
// whose closure defines "this" to i.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields.Get(name.Lexeme); ok {
		return v, nil
	}
	if method, ok := i.class.findMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, reporter.NewRuntimeError(name.Line, "Undefined property '%s'.", name.Lexeme)
}

// Set unconditionally writes a field, creating it if absent.
func (i *Instance) Set(name token.Token, value Value) {
	i.fields.Put(name.Lexeme, value)
}
