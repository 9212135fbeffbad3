package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/mna/mainer"

	"github.com/mna/lox/internal/reporter"
	"github.com/mna/lox/lang/interpreter"
)

const prompt = "> "

// RunPrompt runs the interactive REPL: it reads one line at a time,
// executes it as a standalone program, and resets the reporter's error
// state so a mistake on one line never disables subsequent lines. It
// returns when ctx is canceled or stdin is exhausted.
func RunPrompt(ctx context.Context, stdio mainer.Stdio) {
	rep := reporter.New(stdio.Stderr)
	in := interpreter.New(stdio.Stdout, rep)

	scan := bufio.NewScanner(stdio.Stdin)
	for {
		fmt.Fprint(stdio.Stdout, prompt)

		if ctx.Err() != nil {
			return
		}
		if !scan.Scan() {
			return
		}

		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		run(in, rep, line)
		rep.Reset()
	}
}
