// Package maincmd implements the lox command-line tool: a REPL when invoked
// with no arguments, or a one-shot script runner when given a single file
// path.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "lox"

var shortUsage = fmt.Sprintf("usage: %s [script]\n", binName)

// exit codes follow the sysexits.h convention used throughout the tool:
// EX_USAGE for a bad invocation, EX_DATAERR for a script that failed to
// scan/parse/resolve, EX_SOFTWARE for a runtime failure.
const (
	exUsage    mainer.ExitCode = 64
	exDataErr  mainer.ExitCode = 65
	exSoftware mainer.ExitCode = 70
)

// Cmd holds the flags and build metadata for the lox binary. It has no
// subcommands: mainer.Parser only needs it to recognize -h/--help and
// -v/--version, everything else is positional (at most one script path).
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return fmt.Errorf("too many arguments")
	}
	return nil
}

// Main parses args and dispatches to the REPL or the file runner, returning
// the process exit code.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n%s", err, shortUsage)
		return exUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, shortUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	if len(c.args) == 0 {
		RunPrompt(ctx, stdio)
		return mainer.Success
	}
	return RunFile(ctx, stdio, c.args[0])
}
