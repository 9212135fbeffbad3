package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/interpreter"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

// RunFile executes the script at path and reports the exit code per the
// sysexits convention: exUsage if the file can't be read, exDataErr on a
// scan/parse/resolve error, exSoftware on a runtime error, Success
// otherwise.
func RunFile(ctx context.Context, stdio mainer.Stdio, path string) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		return exUsage
	}

	rep := reporter.New(stdio.Stderr)
	in := interpreter.New(stdio.Stdout, rep)
	run(in, rep, string(src))

	switch {
	case rep.HadError():
		return exDataErr
	case rep.HadRuntimeError():
		return exSoftware
	default:
		return mainer.Success
	}
}

// run scans, parses, resolves and interprets src against in, stopping early
// at the first phase that reports an error. It never returns an error
// itself: failures are recorded on in's reporter.
func run(in *interpreter.Interpreter, rep *reporter.Reporter, src string) {
	s := scanner.New(src, rep)
	tokens := s.ScanTokens()
	if rep.HadError() {
		return
	}

	p := parser.New(tokens, rep)
	stmts := p.Parse()
	if rep.HadError() {
		return
	}

	locals := resolver.Resolve(stmts, rep)
	if rep.HadError() {
		return
	}

	in.Interpret(stmts, locals)
}
