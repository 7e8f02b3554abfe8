package transform

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/lumen-lang/reflectc/ast"
	"github.com/lumen-lang/reflectc/checker"
	"github.com/lumen-lang/reflectc/logger"
	"github.com/lumen-lang/reflectc/typecode"
	"github.com/lumen-lang/reflectc/version"
)

// announceOnce is the process-wide already-logged flag: the activation notice
// goes to standard error exactly once no matter how many transformers the
// host constructs.
var announceOnce sync.Once

// Transformer is one reflection pass over a program. It is single-threaded
// and cooperative: the host invokes TransformFile per compilation unit and
// every call returns synchronously.
type Transformer struct {
	checker *checker.Checker
	oracle  *Oracle
	log     *zap.SugaredLogger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithSessionMode installs the host application's reflection-mode override.
func WithSessionMode(m Mode) Option {
	return func(t *Transformer) { t.oracle.SetSession(m) }
}

// WithLogger replaces the package logger for this pass.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(t *Transformer) { t.log = l }
}

// New creates a transformer over prog and announces activation on first
// load.
func New(prog *checker.Program, opts ...Option) *Transformer {
	t := &Transformer{
		checker: checker.New(prog),
		oracle:  NewOracle(),
		log:     logger.Logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	announceOnce.Do(func() {
		fmt.Fprintf(os.Stderr, "reflectc: type reflection transformer active (%s)\n", version.Get().Short())
	})
	return t
}

// Oracle exposes the pass's reflection-mode oracle, letting hosts adjust the
// session override between files.
func (t *Transformer) Oracle() *Oracle { return t.oracle }

// TransformFile decorates every reflectable declaration in f and returns f.
// Traversal is deterministic AST order; files that produce no packs come back
// unchanged.
func (t *Transformer) TransformFile(f *ast.SourceFile) *ast.SourceFile {
	out := make([]ast.Stmt, 0, len(f.Stmts))
	for _, s := range f.Stmts {
		switch d := s.(type) {
		case *ast.ClassDecl:
			t.visitClass(d, f)
			out = append(out, d)
		case *ast.FunctionDecl:
			out = append(out, d)
			if assign := t.visitFunction(d, f); assign != nil {
				out = append(out, assign)
			}
		case *ast.VarDecl:
			if d.Init != nil {
				d.Init = t.rewriteCallables(d.Init, f)
			}
			out = append(out, d)
		case *ast.ExprStmt:
			d.X = t.rewriteCallables(d.X, f)
			out = append(out, d)
		default:
			out = append(out, s)
		}
	}
	f.Stmts = out
	ast.SetParents(f)
	return f
}

// visitClass aggregates per-member packs under a static __type object. A
// class that already bears one is returned unchanged.
func (t *Transformer) visitClass(c *ast.ClassDecl, f *ast.SourceFile) {
	if t.oracle.ModeFor(c, f) == ModeNever {
		return
	}
	if hasTypeMember(c) {
		return
	}

	var props []*ast.PropertyAssign
	for _, m := range c.Members {
		if t.oracle.ModeFor(m, f) == ModeNever {
			continue
		}
		ex := t.newExtractor(f)
		ex.classMember(m)
		if ex.ps.Empty() {
			continue
		}
		packed := typecode.Pack(ex.ps)
		props = append(props, ast.NewProp(m.MemberName(), PackedExpr(packed)))
		t.log.Debugw("packed member",
			logger.FieldFile, f.Path,
			logger.FieldMember, c.Name.Name+"."+m.MemberName(),
			logger.FieldOps, len(ex.ps.Ops),
			logger.FieldStack, len(ex.ps.Stack))
	}
	if len(props) == 0 {
		return
	}
	decorateClass(c, props)
}

// visitFunction packs a named function's signature and returns the trailing
// assignment statement, or nil when nothing was produced.
func (t *Transformer) visitFunction(fn *ast.FunctionDecl, f *ast.SourceFile) ast.Stmt {
	if t.oracle.ModeFor(fn, f) == ModeNever {
		return nil
	}
	ex := t.newExtractor(f)
	if !ex.callablePrefix(fn.Params, fn.Return) {
		return nil
	}
	ex.ps.Emit(typecode.OpFunction)
	return functionAssign(fn.Name.Name, typecode.Pack(ex.ps))
}

// rewriteCallables wraps anonymous function values bottom-up so the pack
// rides on the value itself.
func (t *Transformer) rewriteCallables(e ast.Expr, f *ast.SourceFile) ast.Expr {
	return ast.RewriteExpr(e, func(x ast.Expr) ast.Expr {
		var params []*ast.Param
		var ret ast.TypeNode
		switch v := x.(type) {
		case *ast.ArrowFunc:
			params, ret = v.Params, v.Return
		case *ast.FuncExpr:
			params, ret = v.Params, v.Return
		default:
			return x
		}
		if t.oracle.ModeFor(x, f) == ModeNever {
			return x
		}
		ex := t.newExtractor(f)
		if !ex.callablePrefix(params, ret) {
			return x
		}
		ex.ps.Emit(typecode.OpFunction)
		return wrapAnonymous(x, typecode.Pack(ex.ps))
	})
}
