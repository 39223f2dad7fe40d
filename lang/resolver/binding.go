package resolver

// FunctionType tracks what kind of function body the resolver is currently
// inside, so that "return" and "this" can be validated against their
// enclosing context.
type FunctionType int

const (
	FuncNone FunctionType = iota
	FuncFunction
	FuncMethod
	FuncInitializer
)

// ClassType tracks what kind of class body the resolver is currently
// inside, so that "this" and "super" can be validated against their
// enclosing context.
type ClassType int

const (
	ClassNone ClassType = iota
	ClassClass
	ClassSubclass
)

// binding records whether a name declared in a scope has finished
// resolving its initializer yet (used to catch "var a = a;").
type binding struct {
	defined bool
}
