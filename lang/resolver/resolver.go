// Package resolver performs a single static pass over a parsed program,
// annotating every variable reference with the number of enclosing scopes
// to climb to find its binding (or leaving it unannotated, meaning the
// variable is global). It also catches a handful of misuses that the
// parser's grammar cannot express: reading a local variable from inside
// its own initializer, returning a value from a class initializer, using
// "this" or "super" outside a method, and a class inheriting from itself.
//
// # Scopes
//
// Only block-scoped locals participate in the scope stack: "{ ... }" block
// statements (an "if"/"while" body gets a scope only when it is one),
// function bodies, and the synthetic scopes a method's "this" (and, when
// present, "super") are pushed into. Globals are never pushed
// onto the stack at all; a name the resolver cannot find in any enclosing
// scope is left with a nil Depth, which the evaluator reads as "look this
// name up in the global environment".
package resolver

import (
	"fmt"
	"go/scanner"
	gotoken "go/token"

	"github.com/lox-lang/loxwalk/lang/ast"
)

type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// Resolve annotates every variable reference in stmts with its resolved
// scope depth (see package doc). The returned error, if non-nil, is an
// ErrorList collecting every static error found; resolving does not stop
// at the first error; it keeps walking so that later errors are also
// reported, matching the Scan/Parse pipeline's own recovery policy.
func Resolve(file string, stmts []ast.Stmt) error {
	var r resolver
	r.file = file
	r.currentFunction = FuncNone
	r.currentClass = ClassNone

	for _, s := range stmts {
		r.resolveStmt(s)
	}
	r.errors.Sort()
	return r.errors.Err()
}

type resolver struct {
	file   string
	scopes []map[string]*binding

	currentFunction FunctionType
	currentClass    ClassType

	errors ErrorList
}

func (r *resolver) errorf(line int, format string, args ...any) {
	r.errors.Add(gotoken.Position{Filename: r.file, Line: line}, fmt.Sprintf(format, args...))
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]*binding{})
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) peekScope() map[string]*binding {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope as not-yet-defined. It is a
// no-op at global scope, since globals are never tracked in the scope
// stack. Redeclaring a name already declared in the same local scope is an
// error.
func (r *resolver) declare(name string, line int) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	if _, ok := scope[name]; ok {
		r.errorf(line, "already a variable with this name in this scope.")
	}
	scope[name] = &binding{defined: false}
}

// define marks name as fully initialized in the innermost scope, allowing
// later references (including, crucially, self-references from nested
// function bodies) to resolve to it.
func (r *resolver) define(name string) {
	if scope := r.peekScope(); scope != nil {
		scope[name].defined = true
	}
}

// resolveLocal walks the scope stack from innermost to outermost looking
// for name, and if found, returns a pointer to the number of scopes
// climbed. If name is not found in any local scope, it returns nil, which
// the evaluator treats as a global reference.
func (r *resolver) resolveLocal(name string) *int {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			d := len(r.scopes) - 1 - i
			return &d
		}
	}
	return nil
}
