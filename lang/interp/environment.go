package interp

import "github.com/dolthub/swiss"

// Environment is an arena of scopes rather than the textbook linked list of
// parent-pointing environments. Every scope ever pushed lives forever at a
// stable index in the arena; a closure captures that integer id instead of
// a pointer to a live scope, so a function can safely carry around a
// reference to scopes that have long since gone out of lexical scope. This
// is what lets an arbitrarily deep chain of returned closures share state
// without Go-side reference cycles or a garbage collector cooperating with
// a parent-pointer graph.
//
// Global bindings are kept separately from the arena: there is no scope 0
// representing "global" that every chain roots at. A variable the resolver
// could not find in any local scope has a nil Depth, and the evaluator
// reads and writes it directly in globals by name.
type Environment struct {
	arena   []scope
	current int // id of the active scope, -1 if no local scope is active
	globals *swiss.Map[string, Value]
}

type scope struct {
	bindings *swiss.Map[string, Value]
	parent   int // id of the parent scope, -1 if none
}

// NewEnvironment returns an Environment with no local scopes active.
func NewEnvironment() *Environment {
	return &Environment{current: -1, globals: swiss.NewMap[string, Value](uint32(16))}
}

// Current returns the id of the active scope, to be captured by a function
// or method value at the point it is created.
func (e *Environment) Current() int {
	return e.current
}

// RestoreTo sets the active scope back to id, without following any
// parent link. Used after a function call returns, to resume execution in
// the caller's scope (which is generally unrelated to the callee's
// closure scope).
func (e *Environment) RestoreTo(id int) {
	e.current = id
}

// PushBlock enters a new scope parented at the currently active scope,
// e.g. on entering a "{ ... }" block statement (including the blocks a for
// loop desugars into).
func (e *Environment) PushBlock() {
	e.push(e.current)
}

// PushClosure enters a new scope parented at closureScope, the scope id a
// function or method value captured when it was defined. Unlike
// PushBlock, the new scope's parent is unrelated to the scope active at
// the call site, which is exactly what gives closures lexical (not
// dynamic) scoping.
func (e *Environment) PushClosure(closureScope int) {
	e.push(closureScope)
}

func (e *Environment) push(parent int) {
	e.arena = append(e.arena, scope{bindings: swiss.NewMap[string, Value](uint32(4)), parent: parent})
	e.current = len(e.arena) - 1
}

// Pop exits the currently active scope, returning to its parent. Valid
// only to undo a PushBlock (or a PushClosure whose parent happens to
// equal the pre-push current scope); after a function call, use
// RestoreTo(saved) instead, since the callee's parent is its closure
// scope, not the caller's scope.
func (e *Environment) Pop() {
	e.current = e.arena[e.current].parent
}

// Define binds name to v in the active scope, or in globals if no local
// scope is active.
func (e *Environment) Define(name string, v Value) {
	if e.current == -1 {
		e.globals.Put(name, v)
		return
	}
	e.arena[e.current].bindings.Put(name, v)
}

// DefineGlobal binds name to v directly in globals, regardless of which
// scope is active. Used for natives registered at startup.
func (e *Environment) DefineGlobal(name string, v Value) {
	e.globals.Put(name, v)
}

// GetGlobal looks up name in globals.
func (e *Environment) GetGlobal(name string) (Value, bool) {
	return e.globals.Get(name)
}

// AssignGlobal assigns name in globals if it is already bound there,
// reporting whether the binding existed.
func (e *Environment) AssignGlobal(name string, v Value) bool {
	if _, ok := e.globals.Get(name); !ok {
		return false
	}
	e.globals.Put(name, v)
	return true
}

func (e *Environment) ancestor(dist int) int {
	id := e.current
	for i := 0; i < dist; i++ {
		id = e.arena[id].parent
	}
	return id
}

// GetAt looks up name in the scope dist levels above the active scope.
func (e *Environment) GetAt(dist int, name string) (Value, bool) {
	return e.GetInScope(e.ancestor(dist), name)
}

// AssignAt assigns name in the scope dist levels above the active scope.
func (e *Environment) AssignAt(dist int, name string, v Value) {
	e.arena[e.ancestor(dist)].bindings.Put(name, v)
}

// GetInScope looks up name directly in the scope identified by id,
// without walking any parent chain. Used to read "this" back out of a
// bound method's closure scope after a call returns.
func (e *Environment) GetInScope(id int, name string) (Value, bool) {
	return e.arena[id].bindings.Get(name)
}
