package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox-lang/loxwalk/lang/ast"
	"github.com/lox-lang/loxwalk/lang/parser"
	"github.com/lox-lang/loxwalk/lang/resolver"
)

func parseAndResolve(t *testing.T, src string) ([]ast.Stmt, error) {
	t.Helper()
	stmts, err := parser.ParseFile("test.lox", []byte(src))
	require.NoError(t, err)
	return stmts, resolver.Resolve("test.lox", stmts)
}

func TestResolveLocalClosureDepth(t *testing.T) {
	stmts, err := parseAndResolve(t, `
{
  var a = 1;
  {
    print a;
  }
}
`)
	require.NoError(t, err)
	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Body.Stmts[1].(*ast.BlockStmt)
	print := inner.Body.Stmts[0].(*ast.PrintStmt)
	varExpr := print.Expr.(*ast.VarExpr)
	require.NotNil(t, varExpr.Depth)
	require.Equal(t, 1, *varExpr.Depth)
}

func TestResolveGlobalLeavesDepthNil(t *testing.T) {
	stmts, err := parseAndResolve(t, `
var a = 1;
print a;
`)
	require.NoError(t, err)
	print := stmts[1].(*ast.PrintStmt)
	require.Nil(t, print.Expr.(*ast.VarExpr).Depth)
}

func TestResolveSelfReferenceInInitializerIsError(t *testing.T) {
	_, err := parseAndResolve(t, `
{
  var a = a;
}
`)
	require.Error(t, err)
}

func TestResolveReturnAtTopLevelIsError(t *testing.T) {
	_, err := parseAndResolve(t, `return 1;`)
	require.Error(t, err)
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	_, err := parseAndResolve(t, `
class Foo {
  init() {
    return 1;
  }
}
`)
	require.Error(t, err)
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	_, err := parseAndResolve(t, `print this;`)
	require.Error(t, err)
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	_, err := parseAndResolve(t, `
class Foo {
  bar() { super.bar(); }
}
`)
	require.Error(t, err)
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	_, err := parseAndResolve(t, `class Foo < Foo {}`)
	require.Error(t, err)
}

func TestResolveRedeclarationInSameScopeIsError(t *testing.T) {
	_, err := parseAndResolve(t, `
{
  var a = 1;
  var a = 2;
}
`)
	require.Error(t, err)
}

func TestResolveMethodSeesThisAndSuper(t *testing.T) {
	stmts, err := parseAndResolve(t, `
class Base {
  greet() { print "base"; }
}
class Derived < Base {
  greet() { super.greet(); print this; }
}
`)
	require.NoError(t, err)
	derived := stmts[1].(*ast.ClassStmt)
	greet := derived.Methods[0]
	superCall := greet.Body.Stmts[0].(*ast.ExpressionStmt).Expr.(*ast.CallExpr)
	superExpr := superCall.Callee.(*ast.SuperExpr)
	require.NotNil(t, superExpr.Depth)
	thisExpr := greet.Body.Stmts[1].(*ast.PrintStmt).Expr.(*ast.ThisExpr)
	require.NotNil(t, thisExpr.Depth)
}
