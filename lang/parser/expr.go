package parser

import (
	"github.com/lox-lang/loxwalk/lang/ast"
	"github.com/lox-lang/loxwalk/lang/token"
)

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment handles both plain variable assignment and property
// assignment (SetExpr), by first parsing the left-hand side as a normal
// expression and then, if an '=' follows, re-interpreting it: a VarExpr
// becomes an AssignExpr, a GetExpr becomes a SetExpr. Any other left-hand
// side is a parse error, matching the usual recursive-descent trick for
// distinguishing assignment targets without a separate grammar production.
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.VarExpr:
			return &ast.AssignExpr{Name: e.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: e.Object, Name: e.Name, Value: value}
		default:
			p.errorAt(equals, "invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Op: op, Right: right}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.expect(token.IDENT, "expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= 255 {
				p.errorAtCurrent("can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, "expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Tok: p.previous(), Value: false}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Tok: p.previous(), Value: true}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Tok: p.previous(), Value: nil}
	case p.match(token.NUMBER):
		tok := p.previous()
		return &ast.LiteralExpr{Tok: tok, Value: tok.Num}
	case p.match(token.STRING):
		tok := p.previous()
		return &ast.LiteralExpr{Tok: tok, Value: tok.Str}
	case p.match(token.SUPER):
		keyword := p.previous()
		p.expect(token.DOT, "expect '.' after 'super'.")
		method := p.expect(token.IDENT, "expect superclass method name.")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(token.IDENT):
		return &ast.VarExpr{Name: p.previous()}
	case p.match(token.LPAREN):
		lparen := p.previous()
		expr := p.expression()
		p.expect(token.RPAREN, "expect ')' after expression.")
		return &ast.GroupingExpr{Lparen: lparen, Expr: expr}
	default:
		p.errorAtCurrent("expect expression.")
		panic(errPanicMode)
	}
}
