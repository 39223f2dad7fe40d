package resolver

import "github.com/lox-lang/loxwalk/lang/ast"

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.VarExpr:
		if scope := r.peekScope(); scope != nil {
			if b, ok := scope[e.Name.Lexeme]; ok && !b.defined {
				r.errorf(e.Name.Line, "can't read local variable %q in its own initializer.", e.Name.Lexeme)
			}
		}
		e.Depth = r.resolveLocal(e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		e.Depth = r.resolveLocal(e.Name.Lexeme)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expr)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.currentClass == ClassNone {
			r.errorf(e.Keyword.Line, "can't use 'this' outside of a class.")
			return
		}
		e.Depth = r.resolveLocal("this")

	case *ast.SuperExpr:
		switch r.currentClass {
		case ClassNone:
			r.errorf(e.Keyword.Line, "can't use 'super' outside of a class.")
		case ClassClass:
			r.errorf(e.Keyword.Line, "can't use 'super' in a class with no superclass.")
		}
		e.Depth = r.resolveLocal("super")

	default:
		panic("resolver: unhandled expression type")
	}
}
