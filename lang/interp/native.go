package interp

import "time"

// NativeFunction wraps a Go function as a callable Lox value, for natives
// registered directly into globals at evaluator construction time.
type NativeFunction struct {
	Name string
	Args int
	Fn   func(args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int { return n.Args }
func (n *NativeFunction) Call(_ *Evaluator, args []Value) (Value, error) {
	return n.Fn(args)
}
func (n *NativeFunction) String() string { return "<native fn " + n.Name + ">" }

// registerNatives installs the natives available to every Lox program, the
// same way the original interpreter wires "clock" into the global
// environment at construction time.
func registerNatives(env *Environment) {
	env.DefineGlobal("clock", &NativeFunction{
		Name: "clock",
		Args: 0,
		Fn: func(args []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
}
