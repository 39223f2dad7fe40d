package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox-lang/loxwalk/lang/ast"
	"github.com/lox-lang/loxwalk/lang/parser"
)

func TestParseVarDeclaration(t *testing.T) {
	stmts, err := parser.ParseFile("test.lox", []byte(`var x = 1 + 2;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	vs, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Equal(t, "x", vs.Name.Lexeme)
	bin, ok := vs.Initializer.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, 1.0, bin.Left.(*ast.LiteralExpr).Value)
}

func TestParseIfElse(t *testing.T) {
	stmts, err := parser.ParseFile("test.lox", []byte(`if (x) { print 1; } else { print 2; }`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	ifs, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, ifs.Then)
	require.NotNil(t, ifs.Else)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, err := parser.ParseFile("test.lox", []byte(`for (var i = 0; i < 3; i = i + 1) print i;`))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Body.Stmts, 2)
	_, ok = block.Body.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	_, ok = block.Body.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	stmts, err := parser.ParseFile("test.lox", []byte(`
class Base {
  greet() { print "hi"; }
}
class Derived < Base {
  init() {}
  greet() { super.greet(); }
}
`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	derived, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok)
	require.Equal(t, "Derived", derived.Name.Lexeme)
	require.NotNil(t, derived.Superclass)
	require.Equal(t, "Base", derived.Superclass.Name.Lexeme)
	require.Len(t, derived.Methods, 2)
}

func TestParseAssignmentTarget(t *testing.T) {
	stmts, err := parser.ParseFile("test.lox", []byte(`x = 1; obj.field = 2;`))
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	_, ok := stmts[0].(*ast.ExpressionStmt).Expr.(*ast.AssignExpr)
	require.True(t, ok)
	_, ok = stmts[1].(*ast.ExpressionStmt).Expr.(*ast.SetExpr)
	require.True(t, ok)
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	_, err := parser.ParseFile("test.lox", []byte(`1 + 2 = 3;`))
	require.Error(t, err)
}

func TestParseRecoversAfterSyntaxError(t *testing.T) {
	stmts, err := parser.ParseFile("test.lox", []byte(`
var x = ;
var y = 2;
`))
	require.Error(t, err)
	// despite the error on the first declaration, the second is still parsed.
	found := false
	for _, s := range stmts {
		if vs, ok := s.(*ast.VarStmt); ok && vs.Name.Lexeme == "y" {
			found = true
		}
	}
	require.True(t, found)
}
