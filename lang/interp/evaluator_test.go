package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox-lang/loxwalk/lang/interp"
	"github.com/lox-lang/loxwalk/lang/parser"
	"github.com/lox-lang/loxwalk/lang/resolver"
)

// run scans, parses, resolves and evaluates src, returning everything
// written to stdout and the first error encountered at any stage.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	stmts, err := parser.ParseFile("test.lox", []byte(src))
	if err != nil {
		return "", err
	}
	if err := resolver.Resolve("test.lox", stmts); err != nil {
		return "", err
	}

	var out bytes.Buffer
	ev := interp.NewEvaluator(&out)
	err = ev.Run(stmts)
	return out.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestBlockScopeShadowsOuterVariable(t *testing.T) {
	out, err := run(t, `var a = "b"; { var a = "inner"; print a; } print a;`)
	require.NoError(t, err)
	assert.Equal(t, "inner\nb\n", out)
}

func TestRecursiveFibonacci(t *testing.T) {
	out, err := run(t, `fun fib(n){ if (n<=1) return n; return fib(n-2)+fib(n-1); } print fib(10);`)
	require.NoError(t, err)
	assert.Equal(t, "55\n", out)
}

func TestClosureCounterCapturesMutableState(t *testing.T) {
	out, err := run(t, `fun mk(){var i=0; fun c(){i=i+1; return i;} return c;} var k=mk(); print k(); print k(); print k();`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestClassInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `class A { greet() { print "A"; } } class B < A { greet() { super.greet(); print "B"; } } B().greet();`)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", out)
}

func TestRuntimeErrorReportsLineAndMessage(t *testing.T) {
	_, err := run(t, `print 1 + "x";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "operands must be two numbers or two strings.")
}

func TestSelfReferenceInBlockInitializerIsStaticError(t *testing.T) {
	stmts, err := parser.ParseFile("test.lox", []byte(`{ var a = a; }`))
	require.NoError(t, err)
	err = resolver.Resolve("test.lox", stmts)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "can't read local variable \"a\" in its own initializer."))
}

func TestInitializerAlwaysReturnsBoundInstance(t *testing.T) {
	out, err := run(t, `
class Box {
	init(v) { this.v = v; }
}
var b = Box(42);
print b.v;
`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestAndOrReturnOperandValueNotCoercedBool(t *testing.T) {
	out, err := run(t, `print "a" or "b"; print nil and "x"; print false or "fallback";`)
	require.NoError(t, err)
	assert.Equal(t, "a\nnil\nfallback\n", out)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}
