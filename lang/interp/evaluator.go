// Package interp implements the tree-walking evaluator: the Environment
// arena of scopes, the closed Value representation, the Callable variants
// (Function, NativeFunction, Class) and the evaluator that walks a
// resolved AST to execute it.
package interp

import (
	"fmt"
	"io"

	"github.com/lox-lang/loxwalk/lang/ast"
	"github.com/lox-lang/loxwalk/lang/token"
)

// execResult is the statement-execution outcome: either "keep going" or
// "a return statement fired, here is its value", mirroring the original
// interpreter's ExecResult{Normal, Return(value)} rather than using panic
///recover or a sentinel error for control flow.
type execResult struct {
	isReturn bool
	value    Value
}

var normalResult = execResult{}

func returnResult(v Value) execResult { return execResult{isReturn: true, value: v} }

// Evaluator walks a resolved AST, executing statements and evaluating
// expressions against a single Environment arena. Out is where "print"
// writes; it is a field rather than a global so that tests (and the REPL)
// can capture or redirect output per Evaluator instance.
type Evaluator struct {
	env *Environment
	Out io.Writer
}

// NewEvaluator returns an Evaluator with a fresh global environment and
// the native functions (currently just "clock") already registered.
func NewEvaluator(out io.Writer) *Evaluator {
	env := NewEnvironment()
	registerNatives(env)
	return &Evaluator{env: env, Out: out}
}

// Run executes a whole resolved program: every top-level statement, in
// order. A "return" at the top level is a resolver error and should never
// reach here; if it somehow did, it is simply ignored once execution
// finishes.
func (ev *Evaluator) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := ev.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) executeBlock(b *ast.Block) (execResult, error) {
	for _, s := range b.Stmts {
		res, err := ev.execute(s)
		if err != nil {
			return execResult{}, err
		}
		if res.isReturn {
			return res, nil
		}
	}
	return normalResult, nil
}

func (ev *Evaluator) execute(s ast.Stmt) (execResult, error) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		_, err := ev.evaluate(s.Expr)
		return normalResult, err

	case *ast.PrintStmt:
		v, err := ev.evaluate(s.Expr)
		if err != nil {
			return normalResult, err
		}
		fmt.Fprintln(ev.Out, stringify(v))
		return normalResult, nil

	case *ast.VarStmt:
		var v Value
		if s.Initializer != nil {
			var err error
			v, err = ev.evaluate(s.Initializer)
			if err != nil {
				return normalResult, err
			}
		}
		ev.env.Define(s.Name.Lexeme, v)
		return normalResult, nil

	case *ast.BlockStmt:
		ev.env.PushBlock()
		res, err := ev.executeBlock(s.Body)
		ev.env.Pop()
		return res, err

	case *ast.IfStmt:
		cond, err := ev.evaluate(s.Cond)
		if err != nil {
			return normalResult, err
		}
		if isTruthy(cond) {
			return ev.execute(s.Then)
		}
		if s.Else != nil {
			return ev.execute(s.Else)
		}
		return normalResult, nil

	case *ast.WhileStmt:
		for {
			cond, err := ev.evaluate(s.Cond)
			if err != nil {
				return normalResult, err
			}
			if !isTruthy(cond) {
				return normalResult, nil
			}
			res, err := ev.execute(s.Body)
			if err != nil {
				return normalResult, err
			}
			if res.isReturn {
				return res, nil
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Decl: s, Closure: ev.env.Current()}
		ev.env.Define(s.Name.Lexeme, fn)
		return normalResult, nil

	case *ast.ReturnStmt:
		var v Value
		if s.Value != nil {
			var err error
			v, err = ev.evaluate(s.Value)
			if err != nil {
				return normalResult, err
			}
		}
		return returnResult(v), nil

	case *ast.ClassStmt:
		return normalResult, ev.executeClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

func (ev *Evaluator) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := ev.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(ErrNotAnInstance, s.Superclass.Line(), "superclass must be a class.")
		}
		superclass = sc
	}

	ev.env.Define(s.Name.Lexeme, nil)

	methodClosure := ev.env.Current()
	if superclass != nil {
		saved := ev.env.Current()
		ev.env.PushBlock()
		ev.env.Define("super", superclass)
		methodClosure = ev.env.Current()
		ev.env.RestoreTo(saved)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Decl:          m,
			Closure:       methodClosure,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	ev.env.Define(s.Name.Lexeme, class)
	return nil
}

func (ev *Evaluator) evaluate(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.VarExpr:
		return ev.lookupVariable(e.Name.Lexeme, e.Depth, e.Name.Line)

	case *ast.AssignExpr:
		v, err := ev.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if e.Depth != nil {
			ev.env.AssignAt(*e.Depth, e.Name.Lexeme, v)
		} else if !ev.env.AssignGlobal(e.Name.Lexeme, v) {
			return nil, newRuntimeError(ErrUndefinedVariable, e.Name.Line, "undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.BinaryExpr:
		return ev.evalBinary(e)

	case *ast.LogicalExpr:
		return ev.evalLogical(e)

	case *ast.UnaryExpr:
		return ev.evalUnary(e)

	case *ast.GroupingExpr:
		return ev.evaluate(e.Expr)

	case *ast.CallExpr:
		return ev.evalCall(e)

	case *ast.GetExpr:
		obj, err := ev.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, newRuntimeError(ErrNotAnInstance, e.Name.Line, "only instances have properties.")
		}
		return inst.Get(ev.env, e.Name.Lexeme, e.Name.Line)

	case *ast.SetExpr:
		obj, err := ev.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, newRuntimeError(ErrNotAnInstance, e.Name.Line, "only instances have fields.")
		}
		v, err := ev.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Lexeme, v)
		return v, nil

	case *ast.ThisExpr:
		return ev.lookupVariable("this", e.Depth, e.Keyword.Line)

	case *ast.SuperExpr:
		return ev.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

func (ev *Evaluator) lookupVariable(name string, depth *int, line int) (Value, error) {
	if depth != nil {
		if v, ok := ev.env.GetAt(*depth, name); ok {
			return v, nil
		}
	} else if v, ok := ev.env.GetGlobal(name); ok {
		return v, nil
	}
	return nil, newRuntimeError(ErrUndefinedVariable, line, "undefined variable '%s'.", name)
}

func (ev *Evaluator) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return ev.evaluate(e.Right)
}

func (ev *Evaluator) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.BANG:
		return !isTruthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(ErrNumberExpected, e.Op.Line, "operand must be a number.")
		}
		return -n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (ev *Evaluator) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := ev.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(ErrNotCallable, e.Paren.Line, "can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(ErrArgumentCountMismatch, e.Paren.Line,
			"expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(ev, args)
}

func (ev *Evaluator) evalSuper(e *ast.SuperExpr) (Value, error) {
	if e.Depth == nil {
		return nil, newRuntimeError(ErrUndefinedVariable, e.Keyword.Line, "undefined variable 'super'.")
	}
	superV, ok := ev.env.GetAt(*e.Depth, "super")
	if !ok {
		return nil, newRuntimeError(ErrUndefinedVariable, e.Keyword.Line, "undefined variable 'super'.")
	}
	superclass := superV.(*Class)

	// "this" is always exactly one scope closer than "super": the resolver
	// pushes the "this" scope directly on top of the "super" scope when
	// resolving a subclass's methods (see resolver.resolveClass).
	instV, _ := ev.env.GetAt(*e.Depth-1, "this")
	instance, _ := instV.(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(ErrUndefinedProperty, e.Method.Line, "undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(ev.env, instance), nil
}
