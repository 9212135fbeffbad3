// Package resolver implements the static pass that walks the parsed AST and
// pre-computes, for each local variable reference, how many enclosing
// environments must be walked outward to find its binding. The interpreter
// consults this side table instead of re-deriving scope at evaluation time,
// which is what gives Lox correct lexical scoping in the presence of
// mutable environments.
package resolver

import (
	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Locals is the side table populated by Resolve: it maps the identity of an
// expression node (Variable, Assign, This or Super) to the number of
// environments to walk outward from the environment that is innermost at
// evaluation time. An expression absent from the table is assumed to
// resolve in the global environment.
type Locals map[ast.Expr]int

// scope maps a name declared in a block to whether it is fully defined yet.
// false means "declared but its initializer is still being resolved".
type scope map[string]bool

// resolver walks the resolved AST, reporting errors through rep and
// recording scope distances into locals.
type resolver struct {
	rep    *reporter.Reporter
	locals Locals
	scopes []scope

	currentFunction functionType
	currentClass    classType
}

// Resolve walks stmts and returns the populated side table. Errors are
// reported through rep; callers should check reporter.HadError() before
// using the returned table to drive interpretation.
func Resolve(stmts []ast.Stmt, rep *reporter.Reporter) Locals {
	r := &resolver{rep: rep, locals: make(Locals)}
	r.resolveStmts(stmts)
	return r.locals
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return // globals are never tracked
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.rep.ErrorAt(name.Line, name.Lexeme, false, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any tracked scope: assumed global, no entry recorded
}

func (r *resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.Class:
		enclosingClass := r.currentClass
		r.currentClass = classClass
		defer func() { r.currentClass = enclosingClass }()

		r.declare(s.Name)
		r.define(s.Name)

		if s.Superclass != nil {
			if s.Superclass.Name.Lexeme == s.Name.Lexeme {
				r.rep.ErrorAt(s.Superclass.Name.Line, s.Superclass.Name.Lexeme, false, "A class can't inherit from itself.")
			}
			r.currentClass = classSubclass
			r.resolveExpr(s.Superclass)

			r.beginScope()
			r.scopes[len(r.scopes)-1]["super"] = true
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true

		for _, method := range s.Methods {
			typ := fnMethod
			if method.Name.Lexeme == "init" {
				typ = fnInitializer
			}
			r.resolveFunction(method, typ)
		}

		r.endScope() // "this"
		if s.Superclass != nil {
			r.endScope() // "super"
		}

	case *ast.Expression:
		r.resolveExpr(s.Expr)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.Return:
		if r.currentFunction == fnNone {
			r.rep.ErrorAt(s.Keyword.Line, s.Keyword.Lexeme, false, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.rep.ErrorAt(s.Keyword.Line, s.Keyword.Lexeme, false, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	default:
		panic("resolver: unknown stmt type")
	}
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.rep.ErrorAt(e.Keyword.Line, e.Keyword.Lexeme, false, "Can't use 'super' outside of a class.")
		case classClass:
			r.rep.ErrorAt(e.Keyword.Line, e.Keyword.Lexeme, false, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.This:
		if r.currentClass == classNone {
			r.rep.ErrorAt(e.Keyword.Line, e.Keyword.Lexeme, false, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.rep.ErrorAt(e.Name.Line, e.Name.Lexeme, false, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	default:
		panic("resolver: unknown expr type")
	}
}
