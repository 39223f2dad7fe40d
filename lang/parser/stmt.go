package parser

import (
	"github.com/lox-lang/loxwalk/lang/ast"
	"github.com/lox-lang/loxwalk/lang/token"
)

// declaration parses a class/function/variable declaration, or falls
// through to a plain statement. It recovers from a parse error by
// synchronizing to the next statement boundary and returning nil, so the
// caller simply skips the bad statement and keeps parsing the rest of the
// program.
func (p *parser) declaration() (s ast.Stmt) {
	defer func() {
		if err := recover(); err != nil {
			if err == errPanicMode {
				p.synchronize()
				s = nil
				return
			}
			panic(err)
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *parser) classDeclaration() ast.Stmt {
	name := p.expect(token.IDENT, "expect class name.")

	var superclass *ast.VarExpr
	if p.match(token.LESS) {
		p.expect(token.IDENT, "expect superclass name.")
		superclass = &ast.VarExpr{Name: p.previous()}
	}

	p.expect(token.LBRACE, "expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		methods = append(methods, p.function("method"))
	}
	p.expect(token.RBRACE, "expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (p *parser) function(kind string) *ast.FunctionStmt {
	name := p.expect(token.IDENT, "expect "+kind+" name.")
	p.expect(token.LPAREN, "expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= 255 {
				p.errorAtCurrent("can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENT, "expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "expect ')' after parameters.")

	p.expect(token.LBRACE, "expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *parser) varDeclaration() ast.Stmt {
	name := p.expect(token.IDENT, "expect variable name.")

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, "expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: init}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LBRACE):
		return &ast.BlockStmt{Body: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars "for (init; cond; post) body" into the equivalent
// block/while form, matching the textbook Lox approach: no ForStmt node
// exists in the AST at all.
func (p *parser) forStatement() ast.Stmt {
	p.expect(token.LPAREN, "expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON, "expect ';' after loop condition.")

	var post ast.Expr
	if !p.check(token.RPAREN) {
		post = p.expression()
	}
	p.expect(token.RPAREN, "expect ')' after for clauses.")

	body := p.statement()

	if post != nil {
		body = &ast.BlockStmt{Body: &ast.Block{Stmts: []ast.Stmt{
			body,
			&ast.ExpressionStmt{Expr: post},
		}}}
	}

	if cond == nil {
		cond = &ast.LiteralExpr{Value: true}
	}
	body = &ast.WhileStmt{Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Body: &ast.Block{Stmts: []ast.Stmt{init, body}}}
	}
	return body
}

func (p *parser) ifStatement() ast.Stmt {
	p.expect(token.LPAREN, "expect '(' after 'if'.")
	cond := p.expression()
	p.expect(token.RPAREN, "expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}

func (p *parser) printStatement() ast.Stmt {
	keyword := p.previous()
	value := p.expression()
	p.expect(token.SEMICOLON, "expect ';' after value.")
	return &ast.PrintStmt{Keyword: keyword, Expr: value}
}

func (p *parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *parser) whileStatement() ast.Stmt {
	p.expect(token.LPAREN, "expect '(' after 'while'.")
	cond := p.expression()
	p.expect(token.RPAREN, "expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Cond: cond, Body: body}
}

func (p *parser) block() *ast.Block {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "expect '}' after block.")
	return &ast.Block{Stmts: stmts}
}

func (p *parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}
