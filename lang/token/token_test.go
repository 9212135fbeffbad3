package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/lox/lang/token"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "and", token.AND.String())
	assert.Equal(t, "EOF", token.EOF.String())
	assert.Contains(t, token.Type(120).String(), "Type(120)")
}

func TestKeywords(t *testing.T) {
	typ, ok := token.Keywords["class"]
	assert.True(t, ok)
	assert.Equal(t, token.CLASS, typ)

	_, ok = token.Keywords["notakeyword"]
	assert.False(t, ok)
}
