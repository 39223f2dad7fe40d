// Package scanner tokenizes Lox source into a flat token stream for the
// parser to consume.
package scanner

import (
	"fmt"
	"go/scanner"
	gotoken "go/token"
	"strconv"
	"strings"

	"github.com/lox-lang/loxwalk/lang/token"
)

type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

var PrintError = scanner.PrintError

// ScanFile tokenizes src in one pass and returns the resulting tokens along
// with any scan errors collected along the way. The returned error, if
// non-nil, is an ErrorList sorted by position; scanning does not stop at
// the first error, matching the pipeline's "report and continue" recovery
// policy.
func ScanFile(file string, src []byte) ([]token.Token, error) {
	var (
		s  Scanner
		el ErrorList
	)
	s.Init(file, src, el.Add)
	toks := s.ScanAll()
	el.Sort()
	return toks, el.Err()
}

// Scanner tokenizes a single source file.
type Scanner struct {
	// immutable state after Init
	file string
	src  []byte
	err  func(pos gotoken.Position, msg string)

	// mutable scanning state
	start int // byte offset of the start of the current lexeme
	off   int // byte offset of the next unread byte
	line  int // current line, 1-based
}

// Init prepares the scanner to tokenize src. errHandler, if non-nil, is
// called once per scanning error encountered; scanning continues after an
// error is reported so that later errors can also be collected. Positions
// passed to errHandler carry only Filename and Line: Lox diagnostics are
// line-granular, not column-granular.
func (s *Scanner) Init(file string, src []byte, errHandler func(pos gotoken.Position, msg string)) {
	s.file = file
	s.src = src
	s.err = errHandler
	s.start = 0
	s.off = 0
	s.line = 1
}

func (s *Scanner) error(line int, msg string) {
	if s.err != nil {
		s.err(gotoken.Position{Filename: s.file, Line: line}, msg)
	}
}

func (s *Scanner) errorf(line int, format string, args ...any) {
	s.error(line, fmt.Sprintf(format, args...))
}

func (s *Scanner) atEnd() bool {
	return s.off >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.off]
	s.off++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.off]
}

func (s *Scanner) peekNext() byte {
	if s.off+1 >= len(s.src) {
		return 0
	}
	return s.src[s.off+1]
}

// match advances and returns true only if the next unread byte is c.
func (s *Scanner) match(c byte) bool {
	if s.atEnd() || s.src[s.off] != c {
		return false
	}
	s.off++
	return true
}

// ScanAll scans and returns the whole source as a token stream, ending with
// a single EOF token. Scanning never stops on error: each error is reported
// through the errHandler passed to Init and scanning resumes at the next
// lexeme, matching the Scan/Parse/Resolve error-recovery policy shared by
// every pass of the pipeline.
func (s *Scanner) ScanAll() []token.Token {
	var toks []token.Token
	for {
		tok, ok := s.scanOne()
		if ok {
			toks = append(toks, tok)
		}
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// scanOne skips whitespace and comments, then scans and returns the next
// token. ok is false when the lexeme was invalid (an unexpected character
// or an unterminated string, already reported), in which case tok is the
// zero Token and the caller should not append it.
func (s *Scanner) scanOne() (tok token.Token, ok bool) {
	s.skipWhitespaceAndComments()
	s.start = s.off
	line := s.line

	if s.atEnd() {
		return token.Token{Kind: token.EOF, Line: line}, true
	}

	c := s.advance()
	switch c {
	case '(':
		return s.simple(token.LPAREN, line), true
	case ')':
		return s.simple(token.RPAREN, line), true
	case '{':
		return s.simple(token.LBRACE, line), true
	case '}':
		return s.simple(token.RBRACE, line), true
	case ',':
		return s.simple(token.COMMA, line), true
	case '.':
		return s.simple(token.DOT, line), true
	case '-':
		return s.simple(token.MINUS, line), true
	case '+':
		return s.simple(token.PLUS, line), true
	case ';':
		return s.simple(token.SEMICOLON, line), true
	case '*':
		return s.simple(token.STAR, line), true
	case '!':
		if s.match('=') {
			return s.simple(token.BANG_EQUAL, line), true
		}
		return s.simple(token.BANG, line), true
	case '=':
		if s.match('=') {
			return s.simple(token.EQUAL_EQUAL, line), true
		}
		return s.simple(token.EQUAL, line), true
	case '<':
		if s.match('=') {
			return s.simple(token.LESS_EQUAL, line), true
		}
		return s.simple(token.LESS, line), true
	case '>':
		if s.match('=') {
			return s.simple(token.GREATER_EQUAL, line), true
		}
		return s.simple(token.GREATER, line), true
	case '/':
		return s.simple(token.SLASH, line), true
	case '"':
		return s.scanString(line)
	default:
		switch {
		case isDigit(c):
			return s.scanNumber(line), true
		case isAlpha(c):
			return s.scanIdent(line), true
		default:
			s.errorf(line, "unexpected character %q", c)
			return token.Token{}, false
		}
	}
}

func (s *Scanner) simple(kind token.Kind, line int) token.Token {
	return token.Token{Kind: kind, Lexeme: string(s.src[s.start:s.off]), Line: line}
}

// skipWhitespaceAndComments consumes spaces, tabs, carriage returns,
// newlines, "//" line comments, and "/* */" block comments (no nesting: the
// first "*/" closes the comment). An unterminated block comment is reported
// at the line it started on.
func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.off++
		case '\n':
			s.off++
			s.line++
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.off++
				}
			} else if s.peekNext() == '*' {
				s.skipBlockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) skipBlockComment() {
	startLine := s.line
	s.off += 2 // consume "/*"
	for {
		if s.atEnd() {
			s.error(startLine, "unterminated block comment")
			return
		}
		if s.peek() == '*' && s.peekNext() == '/' {
			s.off += 2
			return
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.off++
	}
}

func (s *Scanner) scanString(startLine int) (token.Token, bool) {
	var sb strings.Builder
	for {
		if s.atEnd() {
			s.error(startLine, "unterminated string")
			return token.Token{}, false
		}
		c := s.peek()
		if c == '"' {
			s.off++
			break
		}
		if c == '\n' {
			s.line++
		}
		sb.WriteByte(c)
		s.off++
	}
	return token.Token{
		Kind:   token.STRING,
		Lexeme: string(s.src[s.start:s.off]),
		Line:   startLine,
		Str:    sb.String(),
	}, true
}

func (s *Scanner) scanNumber(line int) token.Token {
	for isDigit(s.peek()) {
		s.off++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.off++ // consume '.'
		for isDigit(s.peek()) {
			s.off++
		}
	}
	lit := string(s.src[s.start:s.off])
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorf(line, "invalid number literal %q", lit)
	}
	return token.Token{Kind: token.NUMBER, Lexeme: lit, Line: line, Num: v}
}

func (s *Scanner) scanIdent(line int) token.Token {
	for isAlphaNumeric(s.peek()) {
		s.off++
	}
	lit := string(s.src[s.start:s.off])
	return token.Token{Kind: token.Lookup(lit), Lexeme: lit, Line: line}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
