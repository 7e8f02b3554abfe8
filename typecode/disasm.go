package typecode

import (
	"fmt"
	"strings"
)

// Disassemble renders a PackStruct as one instruction per line, resolving
// parameter slots against the literal stack.
func Disassemble(ps PackStruct) string {
	var sb strings.Builder
	for i := 0; i < len(ps.Ops); i++ {
		op := ps.Ops[i]
		sb.WriteString(fmt.Sprintf("%04d  %s", i, op))
		for p := 0; p < op.Params(); p++ {
			i++
			if i >= len(ps.Ops) {
				sb.WriteString("  <truncated>")
				break
			}
			idx := int(ps.Ops[i])
			sb.WriteString(fmt.Sprintf(" <%d>", idx))
			// Annotate only when a literal stack rides along; decoding a bare
			// encoded string has none.
			if len(ps.Stack) > 0 {
				if idx < len(ps.Stack) {
					sb.WriteString("  ; " + entryString(ps.Stack[idx]))
				} else {
					sb.WriteString("  ; out of range")
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func entryString(e Entry) string {
	switch v := e.(type) {
	case String:
		return fmt.Sprintf("%q", string(v))
	case Number:
		return fmt.Sprintf("%v", float64(v))
	case Bool:
		return fmt.Sprintf("%v", bool(v))
	case *Ref:
		return "lazy ref"
	default:
		return "?"
	}
}
