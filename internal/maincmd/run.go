package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/lox-lang/loxwalk/lang/interp"
	"github.com/lox-lang/loxwalk/lang/parser"
	"github.com/lox-lang/loxwalk/lang/resolver"
	"github.com/lox-lang/loxwalk/lang/scanner"
)

// Run executes a single .lox file, or starts a REPL when no path is given.
// A REPL shares one persistent *interp.Evaluator across submissions, so a
// variable or function defined on one line is visible on the next.
func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) > 1 {
		return printError(stdio, fmt.Errorf("run: at most one file may be provided"))
	}
	if len(args) == 0 {
		c.runPrompt(stdio)
		return nil
	}
	return c.runFile(stdio, args[0])
}

func (c *Cmd) runFile(stdio mainer.Stdio, path string) error {
	resolved, err := interp.ResolvePath(path)
	if err != nil {
		return printError(stdio, err)
	}
	src, err := os.ReadFile(resolved)
	if err != nil {
		return printError(stdio, &interp.SystemError{Kind: interp.ErrFileNotFound, Path: resolved})
	}

	ev := interp.NewEvaluator(stdio.Stdout)
	return c.runSource(stdio, ev, resolved, src)
}

func (c *Cmd) runPrompt(stdio mainer.Stdio) {
	ev := interp.NewEvaluator(stdio.Stdout)
	sc := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !sc.Scan() {
			fmt.Fprintln(stdio.Stdout)
			return
		}
		line := sc.Text()
		if line == "" {
			fmt.Fprintln(stdio.Stdout)
			return
		}
		c.runSource(stdio, ev, "<stdin>", []byte(line))
	}
}

// runSource scans, parses, resolves and evaluates one chunk of source
// against ev, printing diagnostics as it goes. Scan/parse/resolve errors
// are reported and the chunk is not run; a runtime error is reported and
// marks the command as a runtime failure (exit code 70 rather than 1).
func (c *Cmd) runSource(stdio mainer.Stdio, ev *interp.Evaluator, file string, src []byte) error {
	if c.ShowTokens {
		toks, _ := scanner.ScanFile(file, src)
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%d: %s\n", tok.Line, tok.Kind)
		}
	}

	stmts, err := parser.ParseFile(file, src)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	if c.ShowAST {
		dumpStmts(stdio.Stdout, stmts)
	}

	if err := resolver.Resolve(file, stmts); err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	if c.Debug {
		for i, s := range stmts {
			fmt.Fprintf(stdio.Stdout, "-- executing statement %d: %s\n", i, describeNode(s))
			if err := ev.Run(stmts[i : i+1]); err != nil {
				fmt.Fprintln(stdio.Stderr, err)
				c.runtimeFailed = true
				return err
			}
		}
		return nil
	}

	if err := ev.Run(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		c.runtimeFailed = true
		return err
	}
	return nil
}
