package interpreter

// Class is a runtime class descriptor: its name, an optional superclass and
// its own methods (not including inherited ones, which are found by walking
// Superclass at lookup time).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

var _ Callable = (*Class)(nil)

// NewClass builds a class value.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) String() string { return c.Name }
func (c *Class) Truth() bool    { return true }

// findMethod looks up name in this class's own methods, then its
// superclass chain.
func (c *Class) findMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's "init" method (found through the
// superclass chain), or 0 when there is none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: a fresh Instance is created and, if an
// "init" method exists, it is bound to the instance and invoked with args.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
