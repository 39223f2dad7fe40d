package ast

import "github.com/lox-lang/loxwalk/lang/token"

type (
	// LiteralExpr represents a number, string, "nil", "true" or "false"
	// literal. Value holds float64, string, nil or bool, matching the literal
	// kind.
	LiteralExpr struct {
		Tok   token.Token
		Value any
	}

	// VarExpr represents a variable reference. Depth is filled in by the
	// resolver: the number of enclosing scopes to climb to find the binding,
	// or nil if the variable is global (or not yet resolved).
	VarExpr struct {
		Name  token.Token
		Depth *int
	}

	// AssignExpr represents an assignment x = value. Depth has the same
	// meaning as VarExpr.Depth.
	AssignExpr struct {
		Name  token.Token
		Value Expr
		Depth *int
	}

	// BinaryExpr represents a binary operator expression, e.g. a + b.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr represents "and"/"or", which short-circuit and so cannot
	// share BinaryExpr's always-evaluate-both-sides evaluation.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// UnaryExpr represents a unary operator expression, e.g. -a or !a.
	UnaryExpr struct {
		Op    token.Token
		Right Expr
	}

	// GroupingExpr represents a parenthesized expression.
	GroupingExpr struct {
		Lparen token.Token
		Expr   Expr
	}

	// CallExpr represents a function or method call, e.g. f(a, b).
	CallExpr struct {
		Callee Expr
		Paren  token.Token // closing ')', for its line
		Args   []Expr
	}

	// GetExpr represents a property access, e.g. obj.field.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr represents a property assignment, e.g. obj.field = value.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr represents a "this" reference inside a method body. Depth has
	// the same meaning as VarExpr.Depth.
	ThisExpr struct {
		Keyword token.Token
		Depth   *int
	}

	// SuperExpr represents a "super.method" reference inside a method body.
	// Depth has the same meaning as VarExpr.Depth.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
		Depth   *int
	}
)

func (n *LiteralExpr) Line() int    { return n.Tok.Line }
func (n *LiteralExpr) Walk(Visitor) {}
func (n *LiteralExpr) expr()        {}

func (n *VarExpr) Line() int    { return n.Name.Line }
func (n *VarExpr) Walk(Visitor) {}
func (n *VarExpr) expr()        {}

func (n *AssignExpr) Line() int { return n.Name.Line }
func (n *AssignExpr) Walk(v Visitor) {
	Walk(v, n.Value)
}
func (n *AssignExpr) expr() {}

func (n *BinaryExpr) Line() int { return n.Op.Line }
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinaryExpr) expr() {}

func (n *LogicalExpr) Line() int { return n.Op.Line }
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *LogicalExpr) expr() {}

func (n *UnaryExpr) Line() int { return n.Op.Line }
func (n *UnaryExpr) Walk(v Visitor) {
	Walk(v, n.Right)
}
func (n *UnaryExpr) expr() {}

func (n *GroupingExpr) Line() int { return n.Lparen.Line }
func (n *GroupingExpr) Walk(v Visitor) {
	Walk(v, n.Expr)
}
func (n *GroupingExpr) expr() {}

func (n *CallExpr) Line() int { return n.Paren.Line }
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) expr() {}

func (n *GetExpr) Line() int { return n.Name.Line }
func (n *GetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
}
func (n *GetExpr) expr() {}

func (n *SetExpr) Line() int { return n.Name.Line }
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *SetExpr) expr() {}

func (n *ThisExpr) Line() int    { return n.Keyword.Line }
func (n *ThisExpr) Walk(Visitor) {}
func (n *ThisExpr) expr()        {}

func (n *SuperExpr) Line() int    { return n.Keyword.Line }
func (n *SuperExpr) Walk(Visitor) {}
func (n *SuperExpr) expr()        {}
