package reporter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/lox/internal/reporter"
)

func TestErrorFormat(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.New(&buf)

	r.Error(3, "Unexpected character.")
	assert.Equal(t, "[line 3] Error: Unexpected character.\n", buf.String())
	assert.True(t, r.HadError())
	assert.False(t, r.HadRuntimeError())
}

func TestErrorAtFormat(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.New(&buf)

	r.ErrorAt(5, "}", false, "Expect expression.")
	assert.Equal(t, "[line 5] Error at '}': Expect expression.\n", buf.String())

	buf.Reset()
	r.ErrorAt(6, "", true, "Expect ';' after value.")
	assert.Equal(t, "[line 6] Error at end: Expect ';' after value.\n", buf.String())
}

func TestRuntimeErrorFormat(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.New(&buf)

	r.RuntimeError(reporter.NewRuntimeError(1, "Operands must be two numbers or two strings."))
	assert.Equal(t, "Operands must be two numbers or two strings.\n[line 1]\n", buf.String())
	assert.True(t, r.HadRuntimeError())
	assert.False(t, r.HadError())
}

func TestReset(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.New(&buf)

	r.Error(1, "boom")
	r.RuntimeError(reporter.NewRuntimeError(1, "boom"))
	assert.True(t, r.HadError())
	assert.True(t, r.HadRuntimeError())

	r.Reset()
	assert.False(t, r.HadError())
	assert.False(t, r.HadRuntimeError())
}
