package interp

import (
	"fmt"
	"strconv"
)

// Value is any runtime Lox value. There is no Value interface to satisfy:
// the representation is the closed set of concrete Go types nil, bool,
// float64, string, *Function, *NativeFunction, *Class and *Instance,
// dispatched with type switches; the only interface involved is Callable,
// which the three callable types implement so that a call expression can
// invoke any of them. This mirrors the rest of the pipeline's "sum type,
// not open interface" design for tokens and AST nodes.
type Value = any

// isTruthy implements Lox's truthiness rule: nil and false are falsy,
// everything else - including 0 and the empty string - is truthy.
func isTruthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// isEqual implements Lox's "==": nil only equals nil, values of different
// types are never equal, and there is no implicit coercion.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	return a == b
}

// stringify renders v the way "print" displays it.
func stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber prints f in its shortest exact decimal form: whole numbers
// print without a trailing ".0", matching the textbook Lox number
// formatting.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
