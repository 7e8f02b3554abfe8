package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"string", NewString("hi"), `"hi"`},
		{"number", NewNumber(3.5), "3.5"},
		{"integral number", NewNumber(42), "42"},
		{"bool", NewBool(true), "true"},
		{"null", NewNull(), "null"},
		{"array", NewArrayLit(NewString("a"), NewNumber(1)), `["a", 1]`},
		{"member", NewMember(NewIdent("f"), "__type"), "f.__type"},
		{"thunk", NewThunk(NewIdent("Model")), "() => Model"},
		{
			"object assign",
			NewObjectAssign(NewIdent("g"), NewObjectLit(NewProp("__type", NewString("x")))),
			`Object.assign(g, { __type: "x" })`,
		},
		{
			"quoted key",
			NewObjectLit(NewProp("has space", NewNumber(1))),
			`{ "has space": 1 }`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExprString(tt.expr))
		})
	}
}

func TestStmtString(t *testing.T) {
	assign := NewAssign(NewMember(NewIdent("f"), "__type"), NewString("1kx"))
	assert.Equal(t, `f.__type = "1kx";`, StmtString(assign))
}
