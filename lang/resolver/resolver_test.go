package resolver_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, resolver.Locals, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	toks := scanner.New(src, rep).ScanTokens()
	stmts := parser.New(toks, rep).Parse()
	require.False(t, rep.HadError())
	locals := resolver.Resolve(stmts, rep)
	return stmts, locals, rep
}

func TestGlobalRedeclarationAllowed(t *testing.T) {
	_, _, rep := resolve(t, "var a = 1; var a = 2;")
	assert.False(t, rep.HadError())
}

func TestLocalRedeclarationIsError(t *testing.T) {
	_, _, rep := resolve(t, "{ var a = 1; var a = 2; }")
	assert.True(t, rep.HadError())
}

func TestReadOwnInitializerIsError(t *testing.T) {
	_, _, rep := resolve(t, "var a = 1; { var a = a; }")
	assert.True(t, rep.HadError())
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	_, _, rep := resolve(t, "return 1;")
	assert.True(t, rep.HadError())
}

func TestReturnValueFromInitializerIsError(t *testing.T) {
	_, _, rep := resolve(t, "class A { init() { return 1; } }")
	assert.True(t, rep.HadError())
}

func TestBareReturnFromInitializerIsAllowed(t *testing.T) {
	_, _, rep := resolve(t, "class A { init() { return; } }")
	assert.False(t, rep.HadError())
}

func TestThisOutsideClassIsError(t *testing.T) {
	_, _, rep := resolve(t, "print this;")
	assert.True(t, rep.HadError())
}

func TestSuperOutsideClassIsError(t *testing.T) {
	_, _, rep := resolve(t, "print super.m;")
	assert.True(t, rep.HadError())
}

func TestSuperWithoutSuperclassIsError(t *testing.T) {
	_, _, rep := resolve(t, "class A { m() { print super.m; } }")
	assert.True(t, rep.HadError())
}

func TestClassCannotInheritFromItself(t *testing.T) {
	_, _, rep := resolve(t, "class A < A {}")
	assert.True(t, rep.HadError())
}

func TestScopeDistanceComputedForNestedBlock(t *testing.T) {
	stmts, locals, rep := resolve(t, `
		var a = "global";
		{
			var a = "outer";
			{
				print a;
			}
		}
	`)
	require.False(t, rep.HadError())

	// find the innermost print's expression
	outerBlock := stmts[1].(*ast.Block)
	innerBlock := outerBlock.Statements[1].(*ast.Block)
	printStmt := innerBlock.Statements[0].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	dist, ok := locals[variable]
	require.True(t, ok)
	assert.Equal(t, 1, dist)
}

func TestGlobalVariableHasNoEntry(t *testing.T) {
	stmts, locals, rep := resolve(t, `
		var a = "global";
		print a;
	`)
	require.False(t, rep.HadError())
	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	_, ok := locals[variable]
	assert.False(t, ok)
}
