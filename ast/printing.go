package ast

import (
	"fmt"
	"strings"
)

// ExprString renders e using the fixed pretty-printer conventions of §6: lambdas as
// `λname. body`, application by juxtaposition, let/letrec with `in`, class-method
// access with `.`, and `+` infix — parenthesizing a sub-expression only when it is
// itself compound and appears where that would otherwise be ambiguous.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch e := e.(type) {
	case *Constant:
		sb.WriteString(constantString(e.Value))

	case *Identifier:
		sb.WriteString(e.Name)

	case *Lambda:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("λ")
		sb.WriteString(e.Param)
		sb.WriteString(". ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Apply:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, e.Func)
		sb.WriteByte(' ')
		exprString(sb, true, e.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		sb.WriteString(e.Name)
		sb.WriteString(" = ")
		exprString(sb, false, e.Value)
		sb.WriteString(" in ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Letrec:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("letrec ")
		sb.WriteString(e.Name)
		sb.WriteString(" = ")
		exprString(sb, false, e.Value)
		sb.WriteString(" in ")
		exprString(sb, false, e.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *AccessToClassMethod:
		exprString(sb, true, e.Receiver)
		sb.WriteByte('.')
		sb.WriteString(e.MethodName)

	case *Add:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, e.Lhs)
		sb.WriteString(" + ")
		exprString(sb, true, e.Rhs)
		if simple {
			sb.WriteByte(')')
		}
	}
}

func constantString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return "\"" + v + "\""
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
