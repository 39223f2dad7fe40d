package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAtGlobalScopeWhenNoLocalScopeActive(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", 1.0)
	v, ok := env.GetGlobal("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestPushBlockParentsAtCurrentScope(t *testing.T) {
	env := NewEnvironment()
	env.PushBlock()
	outer := env.Current()
	env.Define("a", "outer")

	env.PushBlock()
	env.Define("a", "inner")
	v, ok := env.GetAt(0, "a")
	require.True(t, ok)
	assert.Equal(t, "inner", v)

	env.Pop()
	assert.Equal(t, outer, env.Current())
	v, ok = env.GetAt(0, "a")
	require.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestPushClosureIgnoresCallSiteScope(t *testing.T) {
	env := NewEnvironment()

	env.PushBlock()
	closureScope := env.Current()
	env.Define("captured", "from closure scope")
	env.Pop()

	env.PushBlock()
	env.Define("captured", "from call site")
	callSite := env.Current()

	// PushClosure enters a fresh (empty) scope parented at closureScope, so
	// the captured binding is one hop up.
	env.PushClosure(closureScope)
	v, ok := env.GetAt(1, "captured")
	require.True(t, ok)
	assert.Equal(t, "from closure scope", v, "closures must see their definition scope, not the call site's")

	env.RestoreTo(callSite)
	v, ok = env.GetAt(0, "captured")
	require.True(t, ok)
	assert.Equal(t, "from call site", v)
}

func TestScopeIdsSurviveAfterTheirBlockEnds(t *testing.T) {
	env := NewEnvironment()

	env.PushBlock()
	id := env.Current()
	env.Define("i", 0.0)
	env.Pop()

	// the scope is gone from the active chain, but its arena slot is still
	// addressable directly: this is what lets a returned closure keep
	// mutating state in a scope whose block has long since exited.
	v, ok := env.GetInScope(id, "i")
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestAssignAtMutatesTheAncestorScopeInPlace(t *testing.T) {
	env := NewEnvironment()
	env.PushBlock()
	env.Define("i", 0.0)

	env.PushBlock()
	env.AssignAt(1, "i", 5.0)
	env.Pop()

	v, ok := env.GetAt(0, "i")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestAssignGlobalFailsForUndefinedName(t *testing.T) {
	env := NewEnvironment()
	assert.False(t, env.AssignGlobal("missing", 1.0))
}
