package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetParentsAndFileOf(t *testing.T) {
	prop := &PropertyDecl{Name: NewIdent("title"), Type: &KeywordType{Kind: KeywordString}}
	class := &ClassDecl{Name: NewIdent("M"), Members: []ClassMember{prop}}
	file := &SourceFile{Path: "/src/m.lum", Stmts: []Stmt{class}}
	SetParents(file)

	assert.Same(t, class, prop.Parent())
	assert.Same(t, file, class.Parent())
	assert.Same(t, file, FileOf(prop.Type))
	assert.Nil(t, FileOf(NewIdent("loose")))
}

func TestWalkVisitsEveryNode(t *testing.T) {
	file := &SourceFile{Path: "/src/m.lum", Stmts: []Stmt{
		&VarDecl{Name: NewIdent("g"), Init: NewCall(NewIdent("f"), NewString("x"))},
	}}
	var idents []string
	Walk(file, func(n Node) {
		if id, ok := n.(*Ident); ok {
			idents = append(idents, id.Name)
		}
	})
	assert.Equal(t, []string{"g", "f"}, idents)
}

func TestRewriteExprBottomUp(t *testing.T) {
	arrow := &ArrowFunc{Body: NewIdent("n")}
	call := NewCall(NewIdent("use"), arrow)

	var order []string
	got := RewriteExpr(call, func(e Expr) Expr {
		switch e.(type) {
		case *ArrowFunc:
			order = append(order, "arrow")
			return NewObjectAssign(e, NewObjectLit())
		case *CallExpr:
			order = append(order, "call")
		}
		return e
	})

	require.Equal(t, []string{"arrow", "call"}, order)
	outer, ok := got.(*CallExpr)
	require.True(t, ok)
	wrapped, ok := outer.Args[0].(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "assign", wrapped.Fn.(*MemberExpr).Name)
}

func TestTags(t *testing.T) {
	class := &ClassDecl{Name: NewIdent("M")}
	class.AddTag("reflection", "never")
	require.Len(t, class.Tags(), 1)
	assert.Equal(t, Tag{Name: "reflection", Comment: "never"}, class.Tags()[0])
}

func TestMemberNames(t *testing.T) {
	ctor := &MethodDecl{Name: NewIdent("M"), Kind: KindConstructor}
	assert.Equal(t, "constructor", ctor.MemberName())
	method := &MethodDecl{Name: NewIdent("run")}
	assert.Equal(t, "run", method.MemberName())
}

func TestImportExportNames(t *testing.T) {
	spec := &ImportSpec{Name: NewIdent("Model")}
	assert.Equal(t, "Model", spec.LocalName())
	spec.Alias = NewIdent("M")
	assert.Equal(t, "M", spec.LocalName())

	exp := &ExportSpec{Name: NewIdent("Inner")}
	assert.Equal(t, "Inner", exp.ExternalName())
	exp.Alias = NewIdent("Outer")
	assert.Equal(t, "Outer", exp.ExternalName())
}
