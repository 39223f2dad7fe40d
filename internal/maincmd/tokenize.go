package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/lox-lang/loxwalk/lang/interp"
	"github.com/lox-lang/loxwalk/lang/scanner"
)

func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	var err error
	for _, path := range args {
		if e := tokenizeFile(stdio, path); e != nil {
			err = e
		}
	}
	return err
}

func tokenizeFile(stdio mainer.Stdio, path string) error {
	resolved, err := interp.ResolvePath(path)
	if err != nil {
		return printError(stdio, err)
	}
	src, err := os.ReadFile(resolved)
	if err != nil {
		return printError(stdio, &interp.SystemError{Kind: interp.ErrFileNotFound, Path: resolved})
	}

	toks, err := scanner.ScanFile(resolved, src)
	for _, tok := range toks {
		fmt.Fprintf(stdio.Stdout, "%d: %s", tok.Line, tok.Kind)
		if tok.Lexeme != "" {
			fmt.Fprintf(stdio.Stdout, " %q", tok.Lexeme)
		}
		fmt.Fprintln(stdio.Stdout)
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
