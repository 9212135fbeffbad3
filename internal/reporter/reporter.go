// Package reporter implements the diagnostic sink shared by the scanner,
// parser, resolver and interpreter. It is a thin collaborator: it only
// remembers whether an error of each kind occurred and prints a line
// describing it, in the format a user can use to find the offending source
// line.
package reporter

import (
	"fmt"
	"io"
)

// RuntimeError is a sentinel error type carrying the source line where a
// runtime fault occurred. The interpreter raises one of these when it
// cannot continue evaluating the current statement; Reporter prints it in
// the two-line form mandated for runtime errors.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// NewRuntimeError builds a RuntimeError for the given source line.
func NewRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Reporter collects hadError/hadRuntimeError flags and writes diagnostics to
// an io.Writer (normally os.Stderr). It is safe to reuse across an
// interactive session by calling Reset between lines.
type Reporter struct {
	w             io.Writer
	hadError      bool
	hadRuntimeErr bool
}

// New returns a Reporter that writes to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Error reports a scanner or resolver error, which carries only a line
// number and has no associated token lexeme.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAt reports a parser error tied to a specific lexeme, or to "end" when
// atEnd is true (the error occurred while looking for a token past EOF).
func (r *Reporter) ErrorAt(line int, lexeme string, atEnd bool, message string) {
	where := fmt.Sprintf(" at '%s'", lexeme)
	if atEnd {
		where = " at end"
	}
	r.report(line, where, message)
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.w, "[line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// RuntimeError reports a runtime error and sets HadRuntimeError.
func (r *Reporter) RuntimeError(err *RuntimeError) {
	fmt.Fprintf(r.w, "%s\n[line %d]\n", err.Message, err.Line)
	r.hadRuntimeErr = true
}

// Reset clears both error flags, used between lines in interactive mode.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeErr = false
}

// HadError reports whether a scan, parse or resolve error was reported since
// construction or the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error was reported since
// construction or the last Reset.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeErr }
