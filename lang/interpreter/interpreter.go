package interpreter

import (
	"fmt"
	"io"

	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/token"
)

// Interpreter walks a resolved statement list and evaluates it against a
// chain of Environments rooted at globals. It executes one statement at a
// time in the calling goroutine: there is no concurrency and no suspension
// point within a single Interpret call.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      resolver.Locals
	out         io.Writer
	rep         *reporter.Reporter
}

// New returns an Interpreter that writes print output to out and reports
// runtime errors through rep. The "clock" native is installed into globals.
func New(out io.Writer, rep *reporter.Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", nativeClock{})
	return &Interpreter{globals: globals, environment: globals, out: out, rep: rep}
}

// Interpret executes stmts using the scope-distance side table produced by
// the resolver. It stops and reports at the first runtime error; it never
// panics on well-typed Lox faults (those are all reported as
// *reporter.RuntimeError).
func (in *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) {
	in.locals = locals
	for _, stmt := range stmts {
		if err := in.exec(stmt); err != nil {
			if rerr, ok := err.(*reporter.RuntimeError); ok {
				in.rep.RuntimeError(rerr)
			}
			return
		}
	}
}

// --- statement execution ---

func (in *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.executeBlock(s.Statements, NewEnvironment(in.environment))

	case *ast.Class:
		return in.execClass(s)

	case *ast.Expression:
		_, err := in.eval(s.Expr)
		return err

	case *ast.Function:
		fn := NewFunction(s, in.environment)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.If:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if cond.Truth() {
			return in.exec(s.Then)
		} else if s.Else != nil {
			return in.exec(s.Else)
		}
		return nil

	case *ast.Print:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, v.String())
		return nil

	case *ast.Return:
		var value Value = Nil{}
		if s.Value != nil {
			v, err := in.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.Var:
		var value Value = Nil{}
		if s.Initializer != nil {
			v, err := in.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.While:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !cond.Truth() {
				return nil
			}
			if err := in.exec(s.Body); err != nil {
				return err
			}
		}

	default:
		panic(fmt.Sprintf("interpreter: unknown stmt type %T", stmt))
	}
}

// executeBlock runs statements in env, restoring the previous environment on
// every exit path (normal completion, error or early-exit signal).
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		class, ok := v.(*Class)
		if !ok {
			return reporter.NewRuntimeError(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = class
	}

	in.environment.Define(s.Name.Lexeme, Nil{})

	if s.Superclass != nil {
		in.environment = NewEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		fn := &Function{decl: m, closure: in.environment, isInitializer: m.Name.Lexeme == "init"}
		methods[m.Name.Lexeme] = fn
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		in.environment = in.environment.enclosing
	}

	in.environment.Assign(s.Name.Lexeme, class)
	return nil
}

// --- expression evaluation ---

func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		value, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
			return value, nil
		}
		if !in.globals.Assign(e.Name.Lexeme, value) {
			return nil, reporter.NewRuntimeError(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Name.Line, "Only instances have properties.")
		}
		return instance.Get(e.Name)

	case *ast.Grouping:
		return in.eval(e.Expression)

	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Logical:
		left, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == token.OR {
			if left.Truth() {
				return left, nil
			}
		} else { // AND
			if !left.Truth() {
				return left, nil
			}
		}
		return in.eval(e.Right)

	case *ast.Set:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Name.Line, "Only instances have fields.")
		}
		value, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.Name, value)
		return value, nil

	case *ast.Super:
		distance := in.locals[e]
		superVal, _ := in.environment.GetAt(distance, "super")
		super := superVal.(*Class)
		thisVal, _ := in.environment.GetAt(distance-1, "this")
		this := thisVal.(*Instance)

		method, ok := super.findMethod(e.Method.Lexeme)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
		}
		return method.Bind(this), nil

	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.Unary:
		right, err := in.eval(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Type {
		case token.BANG:
			return Bool(!right.Truth()), nil
		case token.MINUS:
			n, ok := right.(Number)
			if !ok {
				return nil, reporter.NewRuntimeError(e.Operator.Line, "Operand must be a number.")
			}
			return -n, nil
		}
		panic("interpreter: unreachable unary operator")

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)

	default:
		panic(fmt.Sprintf("interpreter: unknown expr type %T", expr))
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		panic(fmt.Sprintf("interpreter: unsupported literal value %T", v))
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.locals[expr]; ok {
		v, _ := in.environment.GetAt(distance, name.Lexeme)
		return v, nil
	}
	v, ok := in.globals.Get(name.Lexeme)
	if !ok {
		return nil, reporter.NewRuntimeError(name.Line, "Undefined variable '%s'.", name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BANG_EQUAL:
		return Bool(!Equal(left, right)), nil
	case token.EQUAL_EQUAL:
		return Bool(Equal(left, right)), nil

	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be two numbers or two strings.")

	case token.MINUS:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return ln - rn, nil

	case token.STAR:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return ln * rn, nil

	case token.SLASH:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return ln / rn, nil

	case token.GREATER:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return Bool(ln > rn), nil

	case token.GREATER_EQUAL:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return Bool(ln >= rn), nil

	case token.LESS:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return Bool(ln < rn), nil

	case token.LESS_EQUAL:
		ln, rn, ok := numberOperands(left, right)
		if !ok {
			return nil, reporter.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return Bool(ln <= rn), nil
	}

	panic("interpreter: unreachable binary operator")
}

func numberOperands(left, right Value) (Number, Number, bool) {
	ln, ok := left.(Number)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(Number)
	if !ok {
		return 0, 0, false
	}
	return ln, rn, true
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, reporter.NewRuntimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, reporter.NewRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}
