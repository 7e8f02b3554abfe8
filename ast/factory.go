package ast

// Factory constructors. The transformer builds every emitted node through
// these so position-independent synthesis stays in one place.

func NewIdent(name string) *Ident         { return &Ident{Name: name} }
func NewString(v string) *StringLit       { return &StringLit{Value: v} }
func NewNumber(v float64) *NumberLit      { return &NumberLit{Value: v} }
func NewBool(v bool) *BoolLit             { return &BoolLit{Value: v} }
func NewNull() *NullLit                   { return &NullLit{} }
func NewArrayLit(elems ...Expr) *ArrayLit { return &ArrayLit{Elems: elems} }

// NewObjectLit builds `{ props... }`.
func NewObjectLit(props ...*PropertyAssign) *ObjectLit {
	return &ObjectLit{Props: props}
}

// NewProp builds one object-literal property.
func NewProp(name string, value Expr) *PropertyAssign {
	return &PropertyAssign{Name: name, Value: value}
}

// NewMember builds `target.name`.
func NewMember(target Expr, name string) *MemberExpr {
	return &MemberExpr{Target: target, Name: name}
}

// NewCall builds `fn(args...)`.
func NewCall(fn Expr, args ...Expr) *CallExpr {
	return &CallExpr{Fn: fn, Args: args}
}

// NewThunk builds the zero-argument arrow `() => body` used for lazy
// class and enum references.
func NewThunk(body Expr) *ArrowFunc {
	return &ArrowFunc{Body: body}
}

// NewAssign builds the statement `target = value;`.
func NewAssign(target, value Expr) *AssignStmt {
	return &AssignStmt{Target: target, Value: value}
}

// NewStaticProperty builds a static class property with an initializer.
func NewStaticProperty(name string, init Expr) *PropertyDecl {
	return &PropertyDecl{Name: NewIdent(name), Static: true, Init: init}
}

// NewObjectAssign builds `Object.assign(target, source)`.
func NewObjectAssign(target, source Expr) *CallExpr {
	return NewCall(NewMember(NewIdent("Object"), "assign"), target, source)
}
