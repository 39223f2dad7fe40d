package interp

import "github.com/lox-lang/loxwalk/lang/ast"

// Function is a user-defined function or method value: the declaration it
// was built from, plus the arena scope id it closed over at the point it
// was created (its "closure"). IsInitializer marks a class's "init"
// method, whose bare "return;" implicitly returns "this" rather than nil.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       int
	IsInitializer bool
}

func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) String() string { return "<fn " + f.Decl.Name.Lexeme + ">" }

// Bind returns a copy of f whose closure is a fresh scope holding only
// "this", parented at f's own closure scope. This is exactly how the
// original interpreter's FunStmt::bind rebases a method's closure when it
// is looked up from an instance: the method still sees the rest of its
// defining scope chain (including "super", if any), plus the instance it
// was fetched from.
func (f *Function) Bind(env *Environment, instance *Instance) *Function {
	saved := env.Current()
	env.PushClosure(f.Closure)
	env.Define("this", instance)
	bound := env.Current()
	env.RestoreTo(saved)
	return &Function{Decl: f.Decl, Closure: bound, IsInitializer: f.IsInitializer}
}

func (f *Function) Call(ev *Evaluator, args []Value) (Value, error) {
	saved := ev.env.Current()
	ev.env.PushClosure(f.Closure)
	for i, p := range f.Decl.Params {
		ev.env.Define(p.Lexeme, args[i])
	}

	res, err := ev.executeBlock(f.Decl.Body)
	ev.env.RestoreTo(saved)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		v, _ := ev.env.GetInScope(f.Closure, "this")
		return v, nil
	}
	if res.isReturn {
		return res.value, nil
	}
	return nil, nil
}
