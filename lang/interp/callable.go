package interp

// Callable is implemented by every Value that can appear as the callee of
// a call expression: user-defined functions and methods, classes (which
// act as their own constructor), and native functions.
type Callable interface {
	Arity() int
	Call(ev *Evaluator, args []Value) (Value, error)
	String() string
}
