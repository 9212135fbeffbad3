package ast

import "github.com/mna/lox/lang/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Expression is an expression evaluated for its side effect, with the
// result discarded.
type Expression struct {
	Expr Expr
}

// Print evaluates an expression and writes its stringified form followed by
// a newline to standard output.
type Print struct {
	Expr Expr
}

// Var declares a new local or global binding, optionally initialized.
type Var struct {
	Name        token.Token
	Initializer Expr // nil if omitted
}

// Block is a brace-delimited sequence of statements executed in a new child
// environment.
type Block struct {
	Statements []Stmt
}

// If chooses between two branches by the truthiness of Condition. Else is
// nil when there is no else clause.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// While repeatedly executes Body while Condition is truthy. The for-loop
// desugaring in the parser produces this node (its body wrapped in a
// synthetic block with the increment, when there is one) rather than a
// distinct statement kind.
type While struct {
	Condition Expr
	Body      Stmt
}

// Function declares a named function (or, inside a ClassStmt, a method).
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// Return exits the enclosing function/method, carrying an optional value.
type Return struct {
	Keyword token.Token
	Value   Expr // nil if omitted
}

// Class declares a class, its optional superclass and its methods.
type Class struct {
	Name       token.Token
	Superclass *Variable // nil if there is no "< Super" clause
	Methods    []*Function
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
