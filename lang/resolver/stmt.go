package resolver

import "github.com/lox-lang/loxwalk/lang/ast"

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.VarStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Lexeme)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveBlock(s.Body)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.FunctionStmt:
		r.declare(s.Name.Lexeme, s.Name.Line)
		r.define(s.Name.Lexeme)
		r.resolveFunction(s, FuncFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == FuncNone {
			r.errorf(s.Keyword.Line, "can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == FuncInitializer {
				r.errorf(s.Keyword.Line, "can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *resolver) resolveBlock(b *ast.Block) {
	for _, s := range b.Stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, typ FunctionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p.Lexeme, p.Line)
		r.define(p.Lexeme)
	}
	r.resolveBlock(fn.Body)
	r.endScope()
}

func (r *resolver) resolveClass(c *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = ClassClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(c.Name.Lexeme, c.Name.Line)
	r.define(c.Name.Lexeme)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errorf(c.Superclass.Name.Line, "a class can't inherit from itself.")
		}
		r.currentClass = ClassSubclass
		c.Superclass.Depth = r.resolveLocal(c.Superclass.Name.Lexeme)

		r.beginScope()
		r.peekScope()["super"] = &binding{defined: true}
	}

	r.beginScope()
	r.peekScope()["this"] = &binding{defined: true}

	for _, m := range c.Methods {
		typ := FuncMethod
		if m.Name.Lexeme == "init" {
			typ = FuncInitializer
		}
		r.resolveFunction(m, typ)
	}

	r.endScope() // "this"
	if c.Superclass != nil {
		r.endScope() // "super"
	}
}
