package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox-lang/loxwalk/lang/scanner"
	"github.com/lox-lang/loxwalk/lang/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte(`(){},.-+;*/ ! != = == < <= > >=`))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR, token.SLASH,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.EOF,
	}, kinds(toks))
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte(`"hello, world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello, world", toks[0].Str)
}

func TestScanStringSpanningLines(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte("\"line1\nline2\" nil"))
	require.NoError(t, err)
	require.Equal(t, "line1\nline2", toks[0].Str)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanner.ScanFile("test.lox", []byte(`"unterminated`))
	require.Error(t, err)
}

func TestScanNumberLiterals(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte(`123 45.67 0`))
	require.NoError(t, err)
	require.Equal(t, 123.0, toks[0].Num)
	require.Equal(t, 45.67, toks[1].Num)
	require.Equal(t, 0.0, toks[2].Num)
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte(`foo and class fun this super nil true false`))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.IDENT, token.AND, token.CLASS, token.FUN, token.THIS,
		token.SUPER, token.NIL, token.TRUE, token.FALSE, token.EOF,
	}, kinds(toks))
}

func TestScanLineComment(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte("var x = 1; // a trailing comment\nvar y = 2;"))
	require.NoError(t, err)
	require.Equal(t, 2, toks[len(toks)-2].Line)
}

func TestScanBlockComment(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte("var x /* comment\nspanning lines */ = 1;"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.VAR, token.IDENT, token.EQUAL, token.NUMBER, token.SEMICOLON, token.EOF}, kinds(toks))
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	_, err := scanner.ScanFile("test.lox", []byte("/* never closed"))
	require.Error(t, err)
}

func TestScanReportsMultipleErrorsAndContinues(t *testing.T) {
	toks, err := scanner.ScanFile("test.lox", []byte("@ var x = 1; $"))
	require.Error(t, err)
	el, ok := err.(scanner.ErrorList)
	require.True(t, ok)
	require.Len(t, el, 2)
	// scanning continued past both illegal characters
	require.Equal(t, []token.Kind{token.VAR, token.IDENT, token.EQUAL, token.NUMBER, token.SEMICOLON, token.EOF}, kinds(toks))
}
