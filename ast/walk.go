package ast

// eachChild calls fn for every direct child of n.
func eachChild(n Node, fn func(Node)) {
	visit := func(c Node) {
		if c != nil {
			fn(c)
		}
	}
	visitType := func(t TypeNode) {
		if t != nil {
			fn(t)
		}
	}
	visitExpr := func(e Expr) {
		if e != nil {
			fn(e)
		}
	}

	switch v := n.(type) {
	case *SourceFile:
		for _, s := range v.Stmts {
			visit(s)
		}
	case *ImportDecl:
		for _, s := range v.Specs {
			visit(s)
		}
	case *ImportSpec:
		visit(v.Name)
		if v.Alias != nil {
			visit(v.Alias)
		}
	case *ExportDecl:
		for _, s := range v.Specs {
			visit(s)
		}
	case *ExportSpec:
		visit(v.Name)
		if v.Alias != nil {
			visit(v.Alias)
		}
	case *ClassDecl:
		visit(v.Name)
		for _, p := range v.TypeParams {
			visit(p)
		}
		for _, m := range v.Members {
			visit(m)
		}
	case *PropertyDecl:
		visit(v.Name)
		visitType(v.Type)
		visitExpr(v.Init)
	case *MethodDecl:
		visit(v.Name)
		for _, p := range v.Params {
			visit(p)
		}
		visitType(v.Return)
	case *Param:
		visit(v.Name)
		visitType(v.Type)
	case *InterfaceDecl:
		visit(v.Name)
		for _, e := range v.Extends {
			visit(e)
		}
		for _, m := range v.Members {
			visit(m)
		}
	case *EnumDecl:
		visit(v.Name)
		for _, m := range v.Members {
			visit(m)
		}
	case *EnumMember:
		visit(v.Name)
		visitExpr(v.Init)
	case *TypeAliasDecl:
		visit(v.Name)
		visitType(v.Type)
	case *FunctionDecl:
		visit(v.Name)
		for _, p := range v.Params {
			visit(p)
		}
		visitType(v.Return)
	case *VarDecl:
		visit(v.Name)
		visitType(v.Type)
		visitExpr(v.Init)

	case *ArrayType:
		visitType(v.Elem)
	case *UnionType:
		for _, m := range v.Members {
			visitType(m)
		}
	case *IntersectionType:
		for _, m := range v.Members {
			visitType(m)
		}
	case *ParenType:
		visitType(v.Inner)
	case *LiteralType:
		visitExpr(v.Lit)
	case *TypeRef:
		visit(v.Name)
		for _, a := range v.TypeArgs {
			visitType(a)
		}
	case *ObjectType:
		for _, m := range v.Members {
			visit(m)
		}
	case *PropertySignature:
		visit(v.Name)
		visitType(v.Type)
	case *MethodSignature:
		visit(v.Name)
		for _, p := range v.Params {
			visit(p)
		}
		visitType(v.Return)
	case *IndexSignature:
		visitType(v.Key)
		visitType(v.Value)
	case *QueryType:
		visit(v.Target)
	case *ConditionalType:
		visitType(v.Check)
		visitType(v.Extends)
		visitType(v.True)
		visitType(v.False)

	case *ArrayLit:
		for _, e := range v.Elems {
			visitExpr(e)
		}
	case *ObjectLit:
		for _, p := range v.Props {
			visit(p)
		}
	case *PropertyAssign:
		visitExpr(v.Value)
	case *MemberExpr:
		visitExpr(v.Target)
	case *CallExpr:
		visitExpr(v.Fn)
		for _, a := range v.Args {
			visitExpr(a)
		}
	case *ArrowFunc:
		for _, p := range v.Params {
			visit(p)
		}
		visitType(v.Return)
		visitExpr(v.Body)
	case *FuncExpr:
		for _, p := range v.Params {
			visit(p)
		}
		visitType(v.Return)
	case *ExprStmt:
		visitExpr(v.X)
	case *AssignStmt:
		visitExpr(v.Target)
		visitExpr(v.Value)
	}
}

// SetParents walks the tree under root and wires every child's parent link.
// The checker runs this once per file before any resolution.
func SetParents(root Node) {
	eachChild(root, func(c Node) {
		c.setParent(root)
		SetParents(c)
	})
}

// Walk calls fn for root and every node beneath it, pre-order.
func Walk(root Node, fn func(Node)) {
	fn(root)
	eachChild(root, func(c Node) {
		Walk(c, fn)
	})
}

// FileOf returns the source file containing n, or nil for detached nodes.
func FileOf(n Node) *SourceFile {
	for ; n != nil; n = n.Parent() {
		if f, ok := n.(*SourceFile); ok {
			return f
		}
	}
	return nil
}

// RewriteExpr applies fn bottom-up to e and every expression beneath it,
// returning the rewritten expression. Children are rewritten before their
// parents so wrappers installed by fn are not revisited.
func RewriteExpr(e Expr, fn func(Expr) Expr) Expr {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *ArrayLit:
		for i, el := range v.Elems {
			v.Elems[i] = RewriteExpr(el, fn)
		}
	case *ObjectLit:
		for _, p := range v.Props {
			p.Value = RewriteExpr(p.Value, fn)
		}
	case *MemberExpr:
		v.Target = RewriteExpr(v.Target, fn)
	case *CallExpr:
		v.Fn = RewriteExpr(v.Fn, fn)
		for i, a := range v.Args {
			v.Args[i] = RewriteExpr(a, fn)
		}
	case *ArrowFunc:
		v.Body = RewriteExpr(v.Body, fn)
	}
	return fn(e)
}
