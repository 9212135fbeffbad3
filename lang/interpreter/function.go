package interpreter

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
)

// Callable is implemented by every value that can appear as a call
// expression's callee: user-defined functions and methods, classes (whose
// call instantiates them) and native functions.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function or method value: an AST function
// declaration paired with the environment that was current at the point of
// its declaration (its closure). Method values additionally set
// isInitializer when they implement a class's "init".
type Function struct {
	decl          *ast.Function
	closure       *Environment
	isInitializer bool
}

var _ Callable = (*Function)(nil)

// NewFunction builds a plain (non-method) function value closing over env.
func NewFunction(decl *ast.Function, env *Environment) *Function {
	return &Function{decl: decl, closure: env}
}

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme) }
func (f *Function) Truth() bool    { return true }
func (f *Function) Arity() int     { return len(f.decl.Params) }

// Bind returns a copy of f whose closure is a fresh environment wrapping
// f's own closure with "this" defined to instance. Used both for ordinary
// method lookup and for super-dispatch.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}

// Call invokes the function: a new environment is opened as a child of the
// closure, parameters are bound to args, and the body executes inside it.
// A Return statement unwinds as a returnSignal caught here. Initializer
// methods always yield the bound instance regardless of how they exit.
func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.decl.Body, env)
	if sig, ok := err.(*returnSignal); ok {
		if f.isInitializer {
			v, _ := f.closure.GetAt(0, "this")
			return v, nil
		}
		return sig.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		v, _ := f.closure.GetAt(0, "this")
		return v, nil
	}
	return Nil{}, nil
}

// returnSignal is the early-exit completion used to unwind a Return
// statement through arbitrary statement nesting up to the call frame that
// consumes it in Function.Call. It implements error purely so it can travel
// through the same channel as runtime errors; it is never reported.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return outside of call (internal)" }
