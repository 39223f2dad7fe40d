package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"

	"github.com/lox-lang/loxwalk/lang/interp"
	"github.com/lox-lang/loxwalk/lang/parser"
	"github.com/lox-lang/loxwalk/lang/resolver"
	"github.com/lox-lang/loxwalk/lang/scanner"
)

func (c *Cmd) Resolve(_ context.Context, stdio mainer.Stdio, args []string) error {
	var err error
	for _, path := range args {
		if e := resolveFile(stdio, path); e != nil {
			err = e
		}
	}
	return err
}

func resolveFile(stdio mainer.Stdio, path string) error {
	resolved, err := interp.ResolvePath(path)
	if err != nil {
		return printError(stdio, err)
	}
	src, err := os.ReadFile(resolved)
	if err != nil {
		return printError(stdio, &interp.SystemError{Kind: interp.ErrFileNotFound, Path: resolved})
	}

	stmts, perr := parser.ParseFile(resolved, src)
	if perr != nil {
		// cannot resolve an AST that failed to parse
		scanner.PrintError(stdio.Stderr, perr)
		return perr
	}

	rerr := resolver.Resolve(resolved, stmts)
	dumpStmts(stdio.Stdout, stmts)
	if rerr != nil {
		scanner.PrintError(stdio.Stderr, rerr)
	}
	return rerr
}
