package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	toks := scanner.New(src, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	return stmts, rep
}

func TestExpressionPrecedence(t *testing.T) {
	stmts, rep := parse(t, "1 + 2 * 3 == 7;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	exprStmt := stmts[0].(*ast.Expression)
	assert.Equal(t, "((1 + (2 * 3)) == 7)", ast.PrintExpr(exprStmt.Expr))
}

func TestAssignmentReinterpretsTarget(t *testing.T) {
	stmts, rep := parse(t, "a.b = 1;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Expression).Expr.(*ast.Set)
	assert.True(t, ok)
}

func TestInvalidAssignmentTargetRecovers(t *testing.T) {
	stmts, rep := parse(t, "1 = 2; print \"still parses\";")
	assert.True(t, rep.HadError())
	require.Len(t, stmts, 2)
}

func TestForDesugaring(t *testing.T) {
	stmts, rep := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)
	_, ok = outer.Statements[0].(*ast.Var)
	assert.True(t, ok)

	while, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)
	body, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestForWithoutClausesOmitsWrappers(t *testing.T) {
	stmts, rep := parse(t, "for (;;) print 1;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	while, ok := stmts[0].(*ast.While)
	require.True(t, ok)
	assert.Equal(t, "true", ast.PrintExpr(while.Condition))
	_, ok = while.Body.(*ast.Print)
	assert.True(t, ok)
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	stmts, rep := parse(t, "if (true) if (false) print 1; else print 2;")
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	outer := stmts[0].(*ast.If)
	inner, ok := outer.Then.(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
	assert.Nil(t, outer.Else)
}

func TestClassWithSuperclassAndMethods(t *testing.T) {
	stmts, rep := parse(t, `class B < A { m() { return 1; } }`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	cls := stmts[0].(*ast.Class)
	require.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "m", cls.Methods[0].Name.Lexeme)
}

func TestTooManyArgumentsReportsNonFatalError(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	_, rep := parse(t, src)
	assert.True(t, rep.HadError())
}

func TestSynchronizeRecoversAfterError(t *testing.T) {
	stmts, rep := parse(t, "var ; var b = 1;")
	assert.True(t, rep.HadError())
	// second declaration still parses after synchronize
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.Var); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	assert.True(t, found)
}
