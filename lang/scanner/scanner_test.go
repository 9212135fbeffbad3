package scanner_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

func scan(t *testing.T, src string) ([]token.Token, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	toks := scanner.New(src, rep).ScanTokens()
	return toks, rep
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestEndsWithSingleEOF(t *testing.T) {
	toks, rep := scan(t, "var a = 1;")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Type)
	assert.False(t, rep.HadError())

	count := 0
	for _, tok := range toks {
		if tok.Type == token.EOF {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPunctuationAndOperators(t *testing.T) {
	toks, _ := scan(t, "(){},.-+;*! != = == < <= > >=")
	assert.Equal(t, []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.EOF,
	}, types(toks))
}

func TestLineComment(t *testing.T) {
	toks, _ := scan(t, "1 // a comment\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, 1.0, toks[0].Literal)
	assert.Equal(t, 2.0, toks[1].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestBlockComment(t *testing.T) {
	toks, rep := scan(t, "1 /* block\ncomment */ 2")
	require.Len(t, toks, 3)
	assert.False(t, rep.HadError())
	assert.Equal(t, 2.0, toks[1].Literal)
	assert.Equal(t, 2, toks[1].Line)
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, rep := scan(t, "/* never closes")
	assert.True(t, rep.HadError())
}

func TestString(t *testing.T) {
	toks, rep := scan(t, `"hello world"`)
	require.Len(t, toks, 2)
	assert.False(t, rep.HadError())
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestMultilineString(t *testing.T) {
	toks, rep := scan(t, "\"a\nb\"")
	require.Len(t, toks, 2)
	assert.False(t, rep.HadError())
	assert.Equal(t, "a\nb", toks[0].Literal)
	assert.Equal(t, 1, toks[0].Line)
}

func TestUnterminatedString(t *testing.T) {
	_, rep := scan(t, `"never closes`)
	assert.True(t, rep.HadError())
}

func TestNumber(t *testing.T) {
	toks, _ := scan(t, "123 45.67")
	require.Len(t, toks, 3)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestTrailingDotIsNotPartOfNumber(t *testing.T) {
	toks, _ := scan(t, "123.")
	require.Len(t, toks, 3)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, token.DOT, toks[1].Type)
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks, _ := scan(t, "orchid or x true false nil")
	assert.Equal(t, []token.Type{
		token.IDENTIFIER, token.OR, token.IDENTIFIER, token.TRUE, token.FALSE, token.NIL, token.EOF,
	}, types(toks))
	assert.Equal(t, true, toks[3].Literal)
	assert.Equal(t, false, toks[4].Literal)
}

func TestUnexpectedCharacter(t *testing.T) {
	toks, rep := scan(t, "@")
	assert.True(t, rep.HadError())
	assert.Equal(t, token.EOF, toks[len(toks)-1].Type)
}
