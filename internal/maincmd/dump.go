package maincmd

import (
	"fmt"
	"io"

	"github.com/lox-lang/loxwalk/lang/ast"
)

// dumpStmts prints a one-line-per-node, indented textual dump of a parsed
// or resolved syntax tree, for the parse/resolve debug commands and
// "run --show-ast".
// It is not a pretty-printer that reproduces Lox source; it exists purely
// to make the pipeline's intermediate state inspectable.
func dumpStmts(w io.Writer, stmts []ast.Stmt) {
	depth := 0
	var v ast.VisitorFunc
	v = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir == ast.VisitExit {
			depth--
			return nil
		}
		fmt.Fprintf(w, "%*s%s\n", depth*2, "", describeNode(n))
		depth++
		return v
	}
	for _, s := range stmts {
		ast.Walk(v, s)
	}
}

func describeNode(n ast.Node) string {
	switch n := n.(type) {
	case *ast.ExpressionStmt:
		return "ExpressionStmt"
	case *ast.PrintStmt:
		return "PrintStmt"
	case *ast.VarStmt:
		return fmt.Sprintf("VarStmt %s", n.Name.Lexeme)
	case *ast.BlockStmt:
		return "BlockStmt"
	case *ast.IfStmt:
		return "IfStmt"
	case *ast.WhileStmt:
		return "WhileStmt"
	case *ast.FunctionStmt:
		return fmt.Sprintf("FunctionStmt %s/%d", n.Name.Lexeme, len(n.Params))
	case *ast.ReturnStmt:
		return "ReturnStmt"
	case *ast.ClassStmt:
		return fmt.Sprintf("ClassStmt %s", n.Name.Lexeme)
	case *ast.LiteralExpr:
		return fmt.Sprintf("LiteralExpr %v", n.Value)
	case *ast.VarExpr:
		return fmt.Sprintf("VarExpr %s%s", n.Name.Lexeme, depthSuffix(n.Depth))
	case *ast.AssignExpr:
		return fmt.Sprintf("AssignExpr %s%s", n.Name.Lexeme, depthSuffix(n.Depth))
	case *ast.BinaryExpr:
		return fmt.Sprintf("BinaryExpr %s", n.Op.Lexeme)
	case *ast.LogicalExpr:
		return fmt.Sprintf("LogicalExpr %s", n.Op.Lexeme)
	case *ast.UnaryExpr:
		return fmt.Sprintf("UnaryExpr %s", n.Op.Lexeme)
	case *ast.GroupingExpr:
		return "GroupingExpr"
	case *ast.CallExpr:
		return fmt.Sprintf("CallExpr argc=%d", len(n.Args))
	case *ast.GetExpr:
		return fmt.Sprintf("GetExpr %s", n.Name.Lexeme)
	case *ast.SetExpr:
		return fmt.Sprintf("SetExpr %s", n.Name.Lexeme)
	case *ast.ThisExpr:
		return fmt.Sprintf("ThisExpr%s", depthSuffix(n.Depth))
	case *ast.SuperExpr:
		return fmt.Sprintf("SuperExpr %s%s", n.Method.Lexeme, depthSuffix(n.Depth))
	case *ast.Block:
		return "Block"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func depthSuffix(depth *int) string {
	if depth == nil {
		return " (global)"
	}
	return fmt.Sprintf(" (depth=%d)", *depth)
}
