// Package parser implements the recursive-descent parser that transforms a
// Lox token stream into an abstract syntax tree.
package parser

import (
	"errors"
	"go/scanner"
	gotoken "go/token"
	"strings"

	"github.com/lox-lang/loxwalk/lang/ast"
	lscanner "github.com/lox-lang/loxwalk/lang/scanner"
	"github.com/lox-lang/loxwalk/lang/token"
)

type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// ParseFile scans and parses a single named source file, returning the
// statements that make up the program. The returned error, if non-nil, is
// an ErrorList collecting every scan and parse error found; parsing does
// not stop at the first error, it synchronizes to the next statement
// boundary and continues so that later errors are reported too.
func ParseFile(file string, src []byte) ([]ast.Stmt, error) {
	toks, scanErr := lscanner.ScanFile(file, src)

	var p parser
	p.file = file
	p.toks = toks
	p.cur = 0

	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	if scanErr != nil {
		if sel, ok := scanErr.(ErrorList); ok {
			p.errors = append(sel, p.errors...)
		}
	}
	p.errors.Sort()
	return stmts, p.errors.Err()
}

// parser parses a fixed token slice (produced ahead of time by the
// scanner) into an AST, using panic/recover for statement-level error
// recovery exactly like a streaming parser would.
type parser struct {
	file   string
	toks   []token.Token
	cur    int
	errors ErrorList
}

var errPanicMode = errors.New("panic")

func (p *parser) peek() token.Token {
	return p.toks[p.cur]
}

func (p *parser) previous() token.Token {
	return p.toks[p.cur-1]
}

func (p *parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *parser) advance() token.Token {
	if !p.check(token.EOF) {
		p.cur++
	}
	return p.previous()
}

// match advances and returns true if the current token is one of kinds.
func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it is of kind k, otherwise it
// reports an error and panics with errPanicMode, which is recovered at the
// statement level to synchronize and produce a partial AST.
func (p *parser) expect(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	panic(errPanicMode)
}

func (p *parser) errorAtCurrent(msg string) {
	p.errorAt(p.peek(), msg)
}

func (p *parser) errorAt(tok token.Token, msg string) {
	var where string
	switch tok.Kind {
	case token.EOF:
		where = " at end"
	default:
		where = " at '" + tok.Lexeme + "'"
	}
	p.errors.Add(gotoken.Position{Filename: p.file, Line: tok.Line}, strings.TrimSpace(msg+where))
}

// synchronize discards tokens until it reaches a likely statement
// boundary: the statement-terminating ';' or the first token of a new
// declaration/statement keyword.
func (p *parser) synchronize() {
	for !p.check(token.EOF) {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
