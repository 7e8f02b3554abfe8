package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprString renders an expression as source text. Used by tests and the CLI;
// the host compiler owns real emission.
func ExprString(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

// StmtString renders a statement as source text.
func StmtString(s Stmt) string {
	switch v := s.(type) {
	case *ExprStmt:
		return ExprString(v.X) + ";"
	case *AssignStmt:
		return ExprString(v.Target) + " = " + ExprString(v.Value) + ";"
	default:
		return fmt.Sprintf("<%T>", s)
	}
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch v := e.(type) {
	case nil:
		sb.WriteString("undefined")
	case *Ident:
		sb.WriteString(v.Name)
	case *StringLit:
		sb.WriteString(strconv.Quote(v.Value))
	case *NumberLit:
		sb.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	case *BoolLit:
		sb.WriteString(strconv.FormatBool(v.Value))
	case *NullLit:
		sb.WriteString("null")
	case *ArrayLit:
		sb.WriteByte('[')
		for i, el := range v.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, el)
		}
		sb.WriteByte(']')
	case *ObjectLit:
		sb.WriteString("{ ")
		for i, p := range v.Props {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(propertyKey(p.Name))
			sb.WriteString(": ")
			writeExpr(sb, p.Value)
		}
		sb.WriteString(" }")
	case *MemberExpr:
		writeExpr(sb, v.Target)
		sb.WriteByte('.')
		sb.WriteString(v.Name)
	case *CallExpr:
		writeExpr(sb, v.Fn)
		sb.WriteByte('(')
		for i, a := range v.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, a)
		}
		sb.WriteByte(')')
	case *ArrowFunc:
		sb.WriteByte('(')
		for i, p := range v.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name.Name)
		}
		sb.WriteString(") => ")
		if v.Body != nil {
			writeExpr(sb, v.Body)
		} else {
			sb.WriteString("{}")
		}
	case *FuncExpr:
		sb.WriteString("function (")
		for i, p := range v.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name.Name)
		}
		sb.WriteString(") {}")
	default:
		fmt.Fprintf(sb, "<%T>", e)
	}
}

// propertyKey quotes an object key only when it is not a plain identifier.
func propertyKey(name string) string {
	for i, r := range name {
		alpha := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !alpha && (i == 0 || r < '0' || r > '9') {
			return strconv.Quote(name)
		}
	}
	if name == "" {
		return `""`
	}
	return name
}
