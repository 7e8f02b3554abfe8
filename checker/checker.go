// Package checker is the semantic half of the host compiler contract: a
// program-wide file set, per-file symbol tables, and the emit resolver the
// transformer uses to follow import specifiers to their source files.
//
// This is deliberately the minimal checker the reflection core needs. It
// resolves names to declarations; it does not infer, reduce, or compare
// types.
package checker

import (
	"path"
	"sort"
	"strings"

	"github.com/lumen-lang/reflectc/ast"
)

// Program is an immutable set of source files keyed by module path.
type Program struct {
	files map[string]*ast.SourceFile
}

// NewProgram indexes the given files and wires parent links. Paths are
// slash-separated module paths; relative import specifiers resolve against
// them.
func NewProgram(files ...*ast.SourceFile) *Program {
	p := &Program{files: make(map[string]*ast.SourceFile, len(files))}
	for _, f := range files {
		ast.SetParents(f)
		p.files[f.Path] = f
	}
	return p
}

// File returns the source file registered under module path, or nil.
func (p *Program) File(module string) *ast.SourceFile {
	return p.files[module]
}

// Files returns every file in deterministic path order.
func (p *Program) Files() []*ast.SourceFile {
	out := make([]*ast.SourceFile, 0, len(p.files))
	for _, f := range p.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ResolveModule is the emit-resolver query: the source file a module
// specifier refers to from within `from`, or nil when unknown.
func (p *Program) ResolveModule(from *ast.SourceFile, specifier string) *ast.SourceFile {
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		resolved := path.Join(path.Dir(from.Path), specifier)
		if f := p.files[resolved]; f != nil {
			return f
		}
		return p.files[resolved+".lum"]
	}
	return p.files[specifier]
}

// Symbol binds a name to its originating declaration node.
type Symbol struct {
	Name string
	Decl ast.Node
}

// Checker answers symbol queries over a Program. Scopes are built once per
// file and memoized for the lifetime of the pass.
type Checker struct {
	prog   *Program
	scopes map[*ast.SourceFile]map[string]ast.Node
}

// New creates a checker over prog.
func New(prog *Program) *Checker {
	return &Checker{
		prog:   prog,
		scopes: make(map[*ast.SourceFile]map[string]ast.Node),
	}
}

// Program returns the underlying file set.
func (c *Checker) Program() *Program { return c.prog }

// SymbolAt resolves name in file scope: local declarations first, then
// import specifiers by their local binding.
func (c *Checker) SymbolAt(file *ast.SourceFile, name string) *Symbol {
	if d := c.fileScope(file)[name]; d != nil {
		return &Symbol{Name: name, Decl: d}
	}
	return nil
}

// DeclaredType follows a symbol to the declaration backing its type. For a
// symbol declared by an import specifier this is the direct export of the
// target module; nil when the export is indirect (a re-export chain), which
// callers resolve themselves.
func (c *Checker) DeclaredType(sym *Symbol) ast.Node {
	spec, ok := sym.Decl.(*ast.ImportSpec)
	if !ok {
		return sym.Decl
	}
	imp, ok := spec.Parent().(*ast.ImportDecl)
	if !ok {
		return nil
	}
	from := ast.FileOf(spec)
	if from == nil {
		return nil
	}
	target := c.prog.ResolveModule(from, imp.Module)
	if target == nil {
		return nil
	}
	d := c.ExportedDecl(target, spec.Name.Name)
	if _, indirect := d.(*ast.ImportSpec); indirect {
		return nil
	}
	return d
}

// ExportedDecl returns the declaration file exports directly under name:
// either a declaration marked exported, or a local `export { x [as y] }`
// clause naming one. Re-export clauses with a module are not followed here.
func (c *Checker) ExportedDecl(file *ast.SourceFile, name string) ast.Node {
	scope := c.fileScope(file)
	for _, s := range file.Stmts {
		switch d := s.(type) {
		case ast.Decl:
			if d.DeclName() == name && isExported(d) {
				return d
			}
		case *ast.ExportDecl:
			if d.Module != "" {
				continue
			}
			for _, spec := range d.Specs {
				if spec.ExternalName() == name {
					return scope[spec.Name.Name]
				}
			}
		}
	}
	return nil
}

// ReExports returns the re-export clauses of file, in declaration order.
func (c *Checker) ReExports(file *ast.SourceFile) []*ast.ExportDecl {
	var out []*ast.ExportDecl
	for _, s := range file.Stmts {
		if d, ok := s.(*ast.ExportDecl); ok && d.Module != "" {
			out = append(out, d)
		}
	}
	return out
}

func (c *Checker) fileScope(file *ast.SourceFile) map[string]ast.Node {
	if scope, ok := c.scopes[file]; ok {
		return scope
	}
	scope := make(map[string]ast.Node)
	for _, s := range file.Stmts {
		switch d := s.(type) {
		case *ast.ImportDecl:
			for _, spec := range d.Specs {
				if _, taken := scope[spec.LocalName()]; !taken {
					scope[spec.LocalName()] = spec
				}
			}
		case ast.Decl:
			scope[d.DeclName()] = d
		}
	}
	c.scopes[file] = scope
	return scope
}

func isExported(d ast.Decl) bool {
	switch v := d.(type) {
	case *ast.ClassDecl:
		return v.Exported
	case *ast.InterfaceDecl:
		return v.Exported
	case *ast.EnumDecl:
		return v.Exported
	case *ast.TypeAliasDecl:
		return v.Exported
	case *ast.FunctionDecl:
		return v.Exported
	case *ast.VarDecl:
		return v.Exported
	default:
		return false
	}
}
