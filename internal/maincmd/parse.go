package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"

	"github.com/lox-lang/loxwalk/lang/interp"
	"github.com/lox-lang/loxwalk/lang/parser"
	"github.com/lox-lang/loxwalk/lang/scanner"
)

func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	var err error
	for _, path := range args {
		if e := parseFile(stdio, path); e != nil {
			err = e
		}
	}
	return err
}

func parseFile(stdio mainer.Stdio, path string) error {
	resolved, err := interp.ResolvePath(path)
	if err != nil {
		return printError(stdio, err)
	}
	src, err := os.ReadFile(resolved)
	if err != nil {
		return printError(stdio, &interp.SystemError{Kind: interp.ErrFileNotFound, Path: resolved})
	}

	stmts, err := parser.ParseFile(resolved, src)
	dumpStmts(stdio.Stdout, stmts)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
