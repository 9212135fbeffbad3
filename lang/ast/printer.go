package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintStmts renders stmts back into Lox source text. It is a canonical
// formatter, not a copy of the original source: every expression that could
// be ambiguous without it (binary and logical operators) is wrapped in
// parentheses, so re-parsing the output always reproduces an equivalent
// tree regardless of the original's whitespace or grouping choices.
func PrintStmts(stmts []Stmt) string {
	var p printer
	for _, s := range stmts {
		p.stmt(s)
	}
	return p.sb.String()
}

// PrintExpr renders a single expression, for diagnostics and tests.
func PrintExpr(e Expr) string {
	var p printer
	p.expr(e)
	return p.sb.String()
}

type printer struct {
	sb    strings.Builder
	depth int
}

func (p *printer) indent() {
	p.sb.WriteString(strings.Repeat("  ", p.depth))
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *Expression:
		p.indent()
		p.expr(s.Expr)
		p.sb.WriteString(";\n")

	case *Print:
		p.indent()
		p.sb.WriteString("print ")
		p.expr(s.Expr)
		p.sb.WriteString(";\n")

	case *Var:
		p.indent()
		fmt.Fprintf(&p.sb, "var %s", s.Name.Lexeme)
		if s.Initializer != nil {
			p.sb.WriteString(" = ")
			p.expr(s.Initializer)
		}
		p.sb.WriteString(";\n")

	case *Block:
		p.indent()
		p.sb.WriteString("{\n")
		p.depth++
		for _, inner := range s.Statements {
			p.stmt(inner)
		}
		p.depth--
		p.indent()
		p.sb.WriteString("}\n")

	case *If:
		p.indent()
		p.sb.WriteString("if (")
		p.expr(s.Condition)
		p.sb.WriteString(")\n")
		p.depth++
		p.stmt(s.Then)
		p.depth--
		if s.Else != nil {
			p.indent()
			p.sb.WriteString("else\n")
			p.depth++
			p.stmt(s.Else)
			p.depth--
		}

	case *While:
		p.indent()
		p.sb.WriteString("while (")
		p.expr(s.Condition)
		p.sb.WriteString(")\n")
		p.depth++
		p.stmt(s.Body)
		p.depth--

	case *Function:
		p.indent()
		p.printFunction("fun ", s)

	case *Return:
		p.indent()
		p.sb.WriteString("return")
		if s.Value != nil {
			p.sb.WriteString(" ")
			p.expr(s.Value)
		}
		p.sb.WriteString(";\n")

	case *Class:
		p.indent()
		fmt.Fprintf(&p.sb, "class %s", s.Name.Lexeme)
		if s.Superclass != nil {
			fmt.Fprintf(&p.sb, " < %s", s.Superclass.Name.Lexeme)
		}
		p.sb.WriteString(" {\n")
		p.depth++
		for _, m := range s.Methods {
			p.indent()
			p.printFunction("", m)
		}
		p.depth--
		p.indent()
		p.sb.WriteString("}\n")

	default:
		panic(fmt.Sprintf("ast: unknown stmt %T", s))
	}
}

func (p *printer) printFunction(prefix string, fn *Function) {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = param.Lexeme
	}
	fmt.Fprintf(&p.sb, "%s%s(%s) {\n", prefix, fn.Name.Lexeme, strings.Join(params, ", "))
	p.depth++
	for _, inner := range fn.Body {
		p.stmt(inner)
	}
	p.depth--
	p.indent()
	p.sb.WriteString("}\n")
}

func (p *printer) expr(e Expr) {
	switch e := e.(type) {
	case *Literal:
		p.sb.WriteString(literalString(e.Value))

	case *Grouping:
		p.sb.WriteString("(")
		p.expr(e.Expression)
		p.sb.WriteString(")")

	case *Unary:
		p.sb.WriteString(e.Operator.Lexeme)
		p.expr(e.Right)

	case *Binary:
		p.sb.WriteString("(")
		p.expr(e.Left)
		fmt.Fprintf(&p.sb, " %s ", e.Operator.Lexeme)
		p.expr(e.Right)
		p.sb.WriteString(")")

	case *Logical:
		p.sb.WriteString("(")
		p.expr(e.Left)
		fmt.Fprintf(&p.sb, " %s ", e.Operator.Lexeme)
		p.expr(e.Right)
		p.sb.WriteString(")")

	case *Variable:
		p.sb.WriteString(e.Name.Lexeme)

	case *Assign:
		fmt.Fprintf(&p.sb, "%s = ", e.Name.Lexeme)
		p.expr(e.Value)

	case *Call:
		p.expr(e.Callee)
		p.sb.WriteString("(")
		for i, arg := range e.Arguments {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.expr(arg)
		}
		p.sb.WriteString(")")

	case *Get:
		p.expr(e.Object)
		fmt.Fprintf(&p.sb, ".%s", e.Name.Lexeme)

	case *Set:
		p.expr(e.Object)
		fmt.Fprintf(&p.sb, ".%s = ", e.Name.Lexeme)
		p.expr(e.Value)

	case *This:
		p.sb.WriteString("this")

	case *Super:
		fmt.Fprintf(&p.sb, "super.%s", e.Method.Lexeme)

	default:
		panic(fmt.Sprintf("ast: unknown expr %T", e))
	}
}

func literalString(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		// no exponent form: Lox number literals are plain digits
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		// Lox strings have no escapes and cannot contain '"'
		return `"` + v + `"`
	default:
		return fmt.Sprintf("%v", v)
	}
}
