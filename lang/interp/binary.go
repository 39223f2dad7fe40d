package interp

import (
	"github.com/lox-lang/loxwalk/lang/ast"
	"github.com/lox-lang/loxwalk/lang/token"
)

// evalBinary implements arithmetic, comparison and equality. Unlike the
// original interpreter, "+" never coerces a string and a number together
// (no silent widening of one operand to the other's type): both operands
// must be numbers, or both must be strings, matching spec's stricter
// resolution of that question.
func (ev *Evaluator) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := ev.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(ErrInvalidBinaryOperands, e.Op.Line,
			"operands must be two numbers or two strings.")

	case token.MINUS:
		ln, rn, err := ev.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.STAR:
		ln, rn, err := ev.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.SLASH:
		ln, rn, err := ev.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, newRuntimeError(ErrDivisionByZero, e.Op.Line, "division by zero.")
		}
		return ln / rn, nil

	case token.GREATER:
		ln, rn, err := ev.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil

	case token.GREATER_EQUAL:
		ln, rn, err := ev.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil

	case token.LESS:
		ln, rn, err := ev.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil

	case token.LESS_EQUAL:
		ln, rn, err := ev.numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil

	default:
		panic("interp: unhandled binary operator")
	}
}

func (ev *Evaluator) numberOperands(line int, left, right Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, newRuntimeError(ErrNumberExpected, line, "operands must be numbers.")
	}
	return ln, rn, nil
}
