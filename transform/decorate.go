package transform

import (
	"github.com/lumen-lang/reflectc/ast"
	"github.com/lumen-lang/reflectc/typecode"
)

// TypeProperty is the member name carrying packed type metadata in the
// emitted program.
const TypeProperty = "__type"

// PackedExpr renders a packed result as an emitted expression: a bare string
// literal, or an array literal whose last element is the encoded string.
// Lazy-reference stack entries are inserted as their closure nodes verbatim.
func PackedExpr(p typecode.Packed) ast.Expr {
	if p.StringOnly() {
		return ast.NewString(p.Encoded)
	}
	elems := make([]ast.Expr, 0, len(p.Stack)+1)
	for _, entry := range p.Stack {
		elems = append(elems, entryExpr(entry))
	}
	elems = append(elems, ast.NewString(p.Encoded))
	return ast.NewArrayLit(elems...)
}

func entryExpr(entry typecode.Entry) ast.Expr {
	switch v := entry.(type) {
	case typecode.String:
		return ast.NewString(string(v))
	case typecode.Number:
		return ast.NewNumber(float64(v))
	case typecode.Bool:
		return ast.NewBool(bool(v))
	case *typecode.Ref:
		if expr, ok := v.Expr.(ast.Expr); ok {
			return expr
		}
	}
	return ast.NewNull()
}

// hasTypeMember reports whether the class already bears a static __type
// property, in which case decoration is skipped entirely.
func hasTypeMember(c *ast.ClassDecl) bool {
	for _, m := range c.Members {
		if p, ok := m.(*ast.PropertyDecl); ok && p.Static && p.Name.Name == TypeProperty {
			return true
		}
	}
	return false
}

// decorateClass appends the static __type member aggregating the per-member
// packs.
func decorateClass(c *ast.ClassDecl, props []*ast.PropertyAssign) {
	c.Members = append(c.Members, ast.NewStaticProperty(TypeProperty, ast.NewObjectLit(props...)))
}

// functionAssign builds the post-declaration statement `name.__type = <packed>`.
func functionAssign(name string, p typecode.Packed) *ast.AssignStmt {
	return ast.NewAssign(ast.NewMember(ast.NewIdent(name), TypeProperty), PackedExpr(p))
}

// wrapAnonymous wraps an anonymous callable so the metadata rides on the
// value itself: `Object.assign(expr, { __type: <packed> })`. Assign-returning
// wrapping preserves value identity for the surrounding expression.
func wrapAnonymous(expr ast.Expr, p typecode.Packed) ast.Expr {
	return ast.NewObjectAssign(expr, ast.NewObjectLit(ast.NewProp(TypeProperty, PackedExpr(p))))
}
