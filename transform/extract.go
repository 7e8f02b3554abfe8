// Package transform is the reflection transformer core: it compiles the
// static type signatures of declarations into typecode instruction streams
// and decorates the program with the packed result.
//
// # Architecture
//
// One extractor is created per reflected declaration. It walks type nodes
// recursively, appending opcodes to its PackStruct and pushing non-primitive
// operands onto the literal stack with index reuse. Named type references go
// through the resolver (resolve.go), which consults the checker and may
// traverse import and re-export chains across files. The decorator
// (decorate.go) turns the packed result back into AST installed on the
// emitted program, and the oracle (mode.go) gates the whole thing per node.
//
// No extractor state survives between declarations; the only state shared
// across files is the checker's memoized scopes, the oracle's path-keyed
// config cache, and the process-wide activation flag.
package transform

import (
	"github.com/lumen-lang/reflectc/ast"
	"github.com/lumen-lang/reflectc/typecode"
)

type extractor struct {
	t    *Transformer
	file *ast.SourceFile
	ps   typecode.PackStruct
}

func (t *Transformer) newExtractor(file *ast.SourceFile) *extractor {
	return &extractor{t: t, file: file}
}

var keywordOps = map[ast.Keyword]typecode.Op{
	ast.KeywordAny:       typecode.OpAny,
	ast.KeywordString:    typecode.OpString,
	ast.KeywordNumber:    typecode.OpNumber,
	ast.KeywordBoolean:   typecode.OpBoolean,
	ast.KeywordBigint:    typecode.OpBigint,
	ast.KeywordVoid:      typecode.OpVoid,
	ast.KeywordNull:      typecode.OpNull,
	ast.KeywordUndefined: typecode.OpUndefined,
}

// typeNode dispatches on a node in type position. Unhandled shapes degrade to
// any; mapped types yield nothing at all.
func (e *extractor) typeNode(n ast.TypeNode) {
	switch v := n.(type) {
	case *ast.ParenType:
		e.typeNode(v.Inner)
	case *ast.KeywordType:
		e.ps.Emit(keywordOps[v.Kind])
	case *ast.ArrayType:
		e.typeNode(v.Elem)
		e.ps.Emit(typecode.OpArray)
	case *ast.UnionType:
		e.compound(v.Members, typecode.OpUnion)
	case *ast.IntersectionType:
		e.compound(v.Members, typecode.OpIntersection)
	case *ast.LiteralType:
		e.literalType(v)
	case *ast.ObjectType:
		e.objectLiteral(v.Members)
	case *ast.TypeRef:
		e.typeRef(v)
	case *ast.QueryType:
		e.queryType(v)
	case *ast.MappedType:
		// Not evaluated. classMember omits a property whose type emits nothing.
	case nil:
		e.ps.Emit(typecode.OpAny)
	default:
		e.ps.Emit(typecode.OpAny)
	}
}

// compound emits an n-ary union or intersection. A frame boundary is opened
// only when prior opcodes exist, so the aggregate never consumes unrelated
// types, and single-member compounds collapse to the member itself.
func (e *extractor) compound(members []ast.TypeNode, op typecode.Op) {
	switch len(members) {
	case 0:
	case 1:
		e.typeNode(members[0])
	default:
		if !e.ps.Empty() {
			e.ps.Emit(typecode.OpFrame)
		}
		for _, m := range members {
			e.typeNode(m)
		}
		e.ps.Emit(op)
	}
}

func (e *extractor) literalType(n *ast.LiteralType) {
	var entry typecode.Entry
	switch lit := n.Lit.(type) {
	case *ast.NullLit:
		e.ps.Emit(typecode.OpNull)
		return
	case *ast.StringLit:
		entry = typecode.String(lit.Value)
	case *ast.NumberLit:
		entry = typecode.Number(lit.Value)
	case *ast.BoolLit:
		entry = typecode.Bool(lit.Value)
	default:
		e.ps.Emit(typecode.OpAny)
		return
	}
	idx, ok := e.entryIndex(entry)
	if !ok {
		e.ps.Emit(typecode.OpAny)
		return
	}
	e.ps.Emit(typecode.OpLiteral, typecode.Op(idx))
}

// objectLiteral emits every member then the aggregate opcode.
func (e *extractor) objectLiteral(members []ast.Member) {
	for _, m := range members {
		e.member(m)
	}
	e.ps.Emit(typecode.OpObjectLiteral)
}

func (e *extractor) member(m ast.Member) {
	switch v := m.(type) {
	case *ast.PropertySignature:
		if v.Type == nil {
			return
		}
		idx, ok := e.entryIndex(typecode.String(v.Name.Name))
		if !ok {
			return
		}
		e.typeNode(v.Type)
		e.ps.Emit(typecode.OpPropertySignature, typecode.Op(idx))
	case *ast.MethodSignature:
		start := len(e.ps.Ops)
		if !e.callablePrefix(v.Params, v.Return) {
			return
		}
		idx, ok := e.entryIndex(typecode.String(v.Name.Name))
		if !ok {
			e.ps.Ops = e.ps.Ops[:start]
			return
		}
		e.ps.Emit(typecode.OpMethodSignature, typecode.Op(idx))
	case *ast.IndexSignature:
		if v.Key != nil {
			e.typeNode(v.Key)
		} else {
			e.ps.Emit(typecode.OpAny)
		}
		e.typeNode(v.Value)
		e.ps.Emit(typecode.OpIndexSignature)
	}
}

// classMember extracts one class member. Modifier opcodes trail the member in
// the fixed order optional, private, protected, abstract.
func (e *extractor) classMember(m ast.ClassMember) {
	switch v := m.(type) {
	case *ast.PropertyDecl:
		if v.Type == nil {
			return
		}
		start := len(e.ps.Ops)
		e.typeNode(v.Type)
		if len(e.ps.Ops) == start {
			// Nothing describes the type (a mapped type): omit the member.
			return
		}
		e.ps.Emit(typecode.OpProperty)
		if v.Optional {
			e.ps.Emit(typecode.OpOptional)
		}
		e.modifiers(v.Mods)
	case *ast.MethodDecl:
		if !e.callablePrefix(v.Params, v.Return) {
			return
		}
		e.ps.Emit(typecode.OpMethod)
		e.modifiers(v.Mods)
	}
}

// callablePrefix emits the parameter and return types of a callable. A
// callable with zero parameters and no return annotation carries no
// information worth a pack; the caller must emit nothing for it.
func (e *extractor) callablePrefix(params []*ast.Param, ret ast.TypeNode) bool {
	if len(params) == 0 && ret == nil {
		return false
	}
	for _, p := range params {
		if p.Type != nil {
			e.typeNode(p.Type)
		}
	}
	if ret != nil {
		e.typeNode(ret)
	} else {
		e.ps.Emit(typecode.OpAny)
	}
	return true
}

func (e *extractor) modifiers(mods ast.Modifiers) {
	if mods.Has(ast.ModPrivate) {
		e.ps.Emit(typecode.OpPrivate)
	}
	if mods.Has(ast.ModProtected) {
		e.ps.Emit(typecode.OpProtected)
	}
	if mods.Has(ast.ModAbstract) {
		e.ps.Emit(typecode.OpAbstract)
	}
}

// interfaceType flattens an interface, inherited members included, into an
// object literal. Child members come first and shadow same-named parents.
func (e *extractor) interfaceType(decl *ast.InterfaceDecl) {
	members := e.flattenInterface(decl, map[*ast.InterfaceDecl]bool{})
	e.objectLiteral(members)
}

func (e *extractor) flattenInterface(decl *ast.InterfaceDecl, seen map[*ast.InterfaceDecl]bool) []ast.Member {
	if seen[decl] {
		return nil
	}
	seen[decl] = true

	byName := map[string]bool{}
	var out []ast.Member
	add := func(m ast.Member) {
		if name, ok := memberName(m); ok {
			if byName[name] {
				return
			}
			byName[name] = true
		}
		out = append(out, m)
	}

	for _, m := range decl.Members {
		add(m)
	}
	for _, ext := range decl.Extends {
		parent, ok := e.resolveInterface(ext)
		if !ok {
			continue
		}
		for _, m := range e.flattenInterface(parent, seen) {
			add(m)
		}
	}
	return out
}

func memberName(m ast.Member) (string, bool) {
	switch v := m.(type) {
	case *ast.PropertySignature:
		return v.Name.Name, true
	case *ast.MethodSignature:
		return v.Name.Name, true
	default:
		// Index signatures have no declared name and never shadow.
		return "", false
	}
}

// entryIndex places entry on the literal stack. Indices must fit a single
// parameter slot; the rare overflow degrades per caller.
func (e *extractor) entryIndex(entry typecode.Entry) (int, bool) {
	idx := e.ps.PushEntry(entry)
	return idx, idx <= typecode.MaxStackIndex
}
