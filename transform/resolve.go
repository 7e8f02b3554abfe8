package transform

import (
	"github.com/lumen-lang/reflectc/ast"
	"github.com/lumen-lang/reflectc/logger"
	"github.com/lumen-lang/reflectc/typecode"
)

// Built-in nominal references recognized by simple name, no resolution
// needed. Promise, Set, and Map are handled separately because they consume
// operands.
var builtinOps = map[string]typecode.Op{
	"Date":              typecode.OpDate,
	"ArrayBuffer":       typecode.OpArrayBuffer,
	"Int8Array":         typecode.OpInt8Array,
	"Uint8Array":        typecode.OpUint8Array,
	"Uint8ClampedArray": typecode.OpUint8ClampedArray,
	"Int16Array":        typecode.OpInt16Array,
	"Uint16Array":       typecode.OpUint16Array,
	"Int32Array":        typecode.OpInt32Array,
	"Uint32Array":       typecode.OpUint32Array,
	"Float32Array":      typecode.OpFloat32Array,
	"Float64Array":      typecode.OpFloat64Array,
	"BigInt64Array":     typecode.OpBigInt64Array,
	"BigUint64Array":    typecode.OpBigUint64Array,
}

// typeRef compiles a named type reference: built-ins directly, everything
// else by resolving the identifier to its originating declaration.
func (e *extractor) typeRef(ref *ast.TypeRef) {
	name := ref.Name.Name
	switch name {
	case "Promise":
		e.typeArg(ref, 0)
		e.ps.Emit(typecode.OpPromise)
		return
	case "Set":
		e.typeArg(ref, 0)
		e.ps.Emit(typecode.OpSet)
		return
	case "Map":
		e.typeArg(ref, 0)
		e.typeArg(ref, 1)
		e.ps.Emit(typecode.OpMap)
		return
	}
	if op, ok := builtinOps[name]; ok {
		e.ps.Emit(op)
		return
	}
	e.resolveRef(ref)
}

func (e *extractor) typeArg(ref *ast.TypeRef, i int) {
	if i < len(ref.TypeArgs) {
		e.typeNode(ref.TypeArgs[i])
	} else {
		e.ps.Emit(typecode.OpAny)
	}
}

// resolveRef follows an identifier to a declaration through the checker,
// traversing import specifiers and re-export chains when needed. Unresolved
// references recover as any.
func (e *extractor) resolveRef(ref *ast.TypeRef) {
	sym := e.t.checker.SymbolAt(e.file, ref.Name.Name)
	if sym == nil {
		e.ps.Emit(typecode.OpAny)
		return
	}

	decl := sym.Decl
	var used []*ast.ImportSpec
	if spec, ok := decl.(*ast.ImportSpec); ok {
		used = append(used, spec)
		decl = e.t.checker.DeclaredType(sym)
		if decl == nil {
			decl = e.resolveThroughImport(spec, spec.Name.Name, &used, map[*ast.SourceFile]bool{})
		}
		if decl == nil {
			logger.Logger.Debugw("unresolved import",
				logger.FieldFile, e.file.Path,
				logger.FieldModule, ref.Name.Name)
			e.ps.Emit(typecode.OpAny)
			return
		}
	}

	e.declaration(ref, decl, used)
}

// resolveThroughImport follows spec's import declaration to the referenced
// module and searches that module's exports for name, re-exports included.
func (e *extractor) resolveThroughImport(spec *ast.ImportSpec, name string, used *[]*ast.ImportSpec, visited map[*ast.SourceFile]bool) ast.Node {
	imp, ok := spec.Parent().(*ast.ImportDecl)
	if !ok {
		return nil
	}
	from := ast.FileOf(spec)
	if from == nil {
		return nil
	}
	target := e.t.checker.Program().ResolveModule(from, imp.Module)
	if target == nil {
		return nil
	}
	return e.searchExports(target, name, used, visited)
}

// searchExports looks for name among file's direct exports, then follows
// `export { x [as y] } from 'm'` matches and `export * from 'm'` wildcards.
// A renaming re-export recurses with the source-side name of that hop.
func (e *extractor) searchExports(file *ast.SourceFile, name string, used *[]*ast.ImportSpec, visited map[*ast.SourceFile]bool) ast.Node {
	if visited[file] {
		return nil
	}
	visited[file] = true

	if d := e.t.checker.ExportedDecl(file, name); d != nil {
		// A local export of an imported binding chains through that import.
		if spec, ok := d.(*ast.ImportSpec); ok {
			*used = append(*used, spec)
			return e.resolveThroughImport(spec, spec.Name.Name, used, visited)
		}
		return d
	}

	for _, re := range e.t.checker.ReExports(file) {
		target := e.t.checker.Program().ResolveModule(file, re.Module)
		if target == nil {
			continue
		}
		if re.Star {
			if d := e.searchExports(target, name, used, visited); d != nil {
				return d
			}
			continue
		}
		for _, spec := range re.Specs {
			if spec.ExternalName() == name {
				if d := e.searchExports(target, spec.Name.Name, used, visited); d != nil {
					return d
				}
			}
		}
	}
	return nil
}

// declaration compiles a resolved declaration at a reference site.
func (e *extractor) declaration(ref *ast.TypeRef, decl ast.Node, used []*ast.ImportSpec) {
	switch d := decl.(type) {
	case *ast.TypeAliasDecl:
		e.typeNode(d.Type)
	case *ast.MappedType:
		// Not evaluated.
	case *ast.InterfaceDecl:
		e.interfaceType(d)
	case *ast.EnumDecl:
		e.preserveImports(used)
		idx, ok := e.entryIndex(e.lazyRef(d, ref.Name.Name))
		if !ok {
			e.ps.Emit(typecode.OpAny)
			return
		}
		e.ps.Emit(typecode.OpEnum, typecode.Op(idx))
		if d.Const {
			e.ps.Emit(typecode.OpConstEnum)
		}
	case *ast.ClassDecl:
		e.preserveImports(used)
		idx, ok := e.entryIndex(e.lazyRef(d, ref.Name.Name))
		if !ok {
			e.ps.Emit(typecode.OpAny)
			return
		}
		for _, a := range ref.TypeArgs {
			e.typeNode(a)
		}
		e.ps.Emit(typecode.OpClass, typecode.Op(idx))
	default:
		if tn, ok := decl.(ast.TypeNode); ok {
			e.typeNode(tn)
			return
		}
		e.ps.Emit(typecode.OpAny)
	}
}

// lazyRef builds the zero-argument closure evaluated at runtime to the class
// constructor or enum object. The closure names the binding as written at the
// reference site so the host's module resolution applies unchanged.
// References to the same declaration share one stack entry.
func (e *extractor) lazyRef(target ast.Node, localName string) *typecode.Ref {
	return &typecode.Ref{
		Target: target,
		Expr:   ast.NewThunk(ast.NewIdent(localName)),
	}
}

// preserveImports marks every import specifier the resolution consumed as
// synthesized. The host prunes imports used only in type positions; lazy
// references need the value import alive at runtime.
func (e *extractor) preserveImports(specs []*ast.ImportSpec) {
	for _, spec := range specs {
		spec.SetFlags(ast.FlagSynthesized)
	}
}

// resolveInterface resolves an extends-clause reference to its interface
// declaration, following aliases and import chains.
func (e *extractor) resolveInterface(ref *ast.TypeRef) (*ast.InterfaceDecl, bool) {
	sym := e.t.checker.SymbolAt(e.file, ref.Name.Name)
	if sym == nil {
		return nil, false
	}
	decl := sym.Decl
	if spec, ok := decl.(*ast.ImportSpec); ok {
		var used []*ast.ImportSpec
		decl = e.t.checker.DeclaredType(sym)
		if decl == nil {
			decl = e.resolveThroughImport(spec, spec.Name.Name, &used, map[*ast.SourceFile]bool{})
		}
	}
	switch d := decl.(type) {
	case *ast.InterfaceDecl:
		return d, true
	case *ast.TypeAliasDecl:
		if aliased, ok := d.Type.(*ast.TypeRef); ok {
			return e.resolveInterface(aliased)
		}
		return nil, false
	default:
		return nil, false
	}
}

// queryType compiles `typeof x` into a pushed lazy reference queried at
// decode time. Unresolvable targets recover as any.
func (e *extractor) queryType(q *ast.QueryType) {
	sym := e.t.checker.SymbolAt(e.file, q.Target.Name)
	if sym == nil {
		e.ps.Emit(typecode.OpAny)
		return
	}
	if spec, ok := sym.Decl.(*ast.ImportSpec); ok {
		e.preserveImports([]*ast.ImportSpec{spec})
	}
	idx, ok := e.entryIndex(&typecode.Ref{
		Target: sym.Decl,
		Expr:   ast.NewThunk(ast.NewIdent(q.Target.Name)),
	})
	if !ok {
		e.ps.Emit(typecode.OpAny)
		return
	}
	e.ps.Emit(typecode.OpPush, typecode.Op(idx), typecode.OpQuery)
}
