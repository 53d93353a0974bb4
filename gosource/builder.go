// Package gosource builds the documentation model from Go source code.
// It loads packages with go/packages, presents the type checker's
// results to the converter registry, and materializes every referenced
// declaration into a model.Project.
package gosource

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"log/slog"

	"github.com/refgraph/refgraph/converter"
	"github.com/refgraph/refgraph/model"
	"golang.org/x/tools/go/packages"
)

// Options configures a project build.
type Options struct {
	// Packages are the Go package paths to analyze.
	Packages []string

	// Roots restricts extraction to the named declarations and
	// everything they reference. Empty means all exported declarations.
	Roots []string

	// IncludeUnexported extracts unexported declarations too.
	IncludeUnexported bool

	// Registry overrides the default converter set.
	Registry *converter.Registry

	// Logger receives build diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Build loads the configured packages and converts their declarations
// into a documentation model.
func Build(ctx context.Context, opts Options) (*model.Project, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	registry := opts.Registry
	if registry == nil {
		registry = converter.NewRegistry()
	}

	b := &builder{
		pkgs:    pkgs,
		project: model.NewProject(),
		opts:    opts,
		logger:  logger,
	}
	cctx := converter.NewContext(goChecker{}, registry, logger)

	for _, pkg := range pkgs {
		b.project.Packages = append(b.project.Packages, model.PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
		})
	}

	roots := make(map[string]bool, len(opts.Roots))
	for _, r := range opts.Roots {
		roots[r] = true
	}

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				b.addDecl(cctx, pkg, decl, roots)
			}
		}
	}

	b.materializeDeferred(cctx)
	resolved := b.project.ResolveDeferred()
	logger.Debug("project built",
		slog.Int("declarations", len(b.project.Declarations)),
		slog.Int("deferred_resolved", resolved),
		slog.Int("warnings", len(b.project.Warnings)))

	return b.project, nil
}

// WarnUnsupportedType marks declarations whose type annotation has no
// documented form (channels, function types) and was recorded as
// written.
const WarnUnsupportedType = "unsupported-type"

// builder accumulates declarations during a build.
type builder struct {
	pkgs    []*packages.Package
	project *model.Project
	opts    Options
	logger  *slog.Logger

	// current is the fully-qualified name of the declaration whose
	// use-sites are being converted, for warning attribution.
	current string

	// materialized guards the deferred-reflection drain loop.
	materialized map[string]bool
}

// include reports whether a declaration name participates in the build.
func (b *builder) include(name string, roots map[string]bool) bool {
	if len(roots) > 0 {
		return roots[name]
	}
	if b.opts.IncludeUnexported {
		return true
	}
	return ast.IsExported(name)
}

func (b *builder) addDecl(cctx *converter.Context, pkg *packages.Package, decl ast.Decl, roots map[string]bool) {
	switch d := decl.(type) {
	case *ast.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.TypeSpec:
				if b.include(s.Name.Name, roots) {
					b.addTypeDecl(cctx, pkg, d, s)
				}
			case *ast.ValueSpec:
				b.addValueDecl(cctx, pkg, d, s, roots)
			}
		}
	case *ast.FuncDecl:
		// Methods belong to their receiver's page; only package-level
		// functions become declarations of their own.
		if d.Recv != nil {
			return
		}
		if b.include(d.Name.Name, roots) {
			b.addFuncDecl(cctx, pkg, d)
		}
	}
}

func (b *builder) addTypeDecl(cctx *converter.Context, pkg *packages.Package, decl *ast.GenDecl, spec *ast.TypeSpec) {
	doc := spec.Doc
	if doc == nil {
		doc = decl.Doc
	}

	d := &model.Declaration{
		Name:               spec.Name.Name,
		FullyQualifiedName: b.fqnOf(pkg, spec.Name),
		Documentation:      parseDocumentation(doc),
		Source:             b.sourceOf(pkg, spec.Name.Pos()),
	}
	b.current = d.FullyQualifiedName

	switch underlying := spec.Type.(type) {
	case *ast.StructType:
		d.Kind = model.DeclStruct
		d.Members = b.structMembers(cctx, pkg, underlying)
	case *ast.InterfaceType:
		d.Kind = model.DeclInterface
		d.Members = b.interfaceMembers(cctx, pkg, underlying)
	default:
		if spec.Assign.IsValid() {
			d.Kind = model.DeclAlias
		} else {
			d.Kind = model.DeclType
		}
		d.Type = b.convertExpr(cctx, pkg, spec.Type)
	}

	b.project.AddDeclaration(d)
}

func (b *builder) addValueDecl(cctx *converter.Context, pkg *packages.Package, decl *ast.GenDecl, spec *ast.ValueSpec, roots map[string]bool) {
	doc := spec.Doc
	if doc == nil {
		doc = decl.Doc
	}

	for _, name := range spec.Names {
		if name.Name == "_" || !b.include(name.Name, roots) {
			continue
		}

		d := &model.Declaration{
			Name:               name.Name,
			FullyQualifiedName: b.fqnOf(pkg, name),
			Documentation:      parseDocumentation(doc),
			Source:             b.sourceOf(pkg, name.Pos()),
		}
		b.current = d.FullyQualifiedName

		obj := pkg.TypesInfo.Defs[name]
		if cnst, ok := obj.(*types.Const); ok {
			d.Kind = model.DeclConst
			if spec.Type != nil {
				d.Type = b.convertExpr(cctx, pkg, spec.Type)
			} else {
				d.Type = model.Literal(constantValue(cnst.Val()))
			}
		} else {
			d.Kind = model.DeclVar
			if spec.Type != nil {
				d.Type = b.convertExpr(cctx, pkg, spec.Type)
			}
		}

		b.project.AddDeclaration(d)
	}
}

func (b *builder) addFuncDecl(cctx *converter.Context, pkg *packages.Package, decl *ast.FuncDecl) {
	b.current = b.fqnOf(pkg, decl.Name)
	sig := &model.Signature{}
	if decl.Type.Params != nil {
		for _, field := range decl.Type.Params.List {
			typ := b.convertExpr(cctx, pkg, field.Type)
			if len(field.Names) == 0 {
				sig.Params = append(sig.Params, model.Parameter{Type: typ})
				continue
			}
			for _, name := range field.Names {
				sig.Params = append(sig.Params, model.Parameter{Name: name.Name, Type: typ})
			}
		}
	}
	if decl.Type.Results != nil {
		for _, field := range decl.Type.Results.List {
			typ := b.convertExpr(cctx, pkg, field.Type)
			n := len(field.Names)
			if n == 0 {
				n = 1
			}
			for i := 0; i < n; i++ {
				sig.Results = append(sig.Results, typ)
			}
		}
	}

	b.project.AddDeclaration(&model.Declaration{
		Name:               decl.Name.Name,
		FullyQualifiedName: b.fqnOf(pkg, decl.Name),
		Kind:               model.DeclFunc,
		Signature:          sig,
		Documentation:      parseDocumentation(decl.Doc),
		Source:             b.sourceOf(pkg, decl.Name.Pos()),
	})
}

// structMembers converts exported struct fields.
func (b *builder) structMembers(cctx *converter.Context, pkg *packages.Package, st *ast.StructType) []model.Member {
	var members []model.Member
	for _, field := range st.Fields.List {
		typ := b.convertExpr(cctx, pkg, field.Type)
		doc := parseDocumentation(field.Doc)

		if len(field.Names) == 0 {
			// Embedded field: named after its type.
			name := embeddedName(field.Type)
			if name == "" || !ast.IsExported(name) && !b.opts.IncludeUnexported {
				continue
			}
			members = append(members, model.Member{Name: name, Type: typ, Documentation: doc})
			continue
		}
		for _, name := range field.Names {
			if !ast.IsExported(name.Name) && !b.opts.IncludeUnexported {
				continue
			}
			members = append(members, model.Member{Name: name.Name, Type: typ, Documentation: doc})
		}
	}
	return members
}

// interfaceMembers converts interface methods and embedded interfaces.
func (b *builder) interfaceMembers(cctx *converter.Context, pkg *packages.Package, it *ast.InterfaceType) []model.Member {
	var members []model.Member
	for _, field := range it.Methods.List {
		typ := b.convertExpr(cctx, pkg, field.Type)
		doc := parseDocumentation(field.Doc)

		if len(field.Names) == 0 {
			name := embeddedName(field.Type)
			if name == "" {
				continue
			}
			members = append(members, model.Member{Name: name, Type: typ, Documentation: doc})
			continue
		}
		for _, name := range field.Names {
			if !ast.IsExported(name.Name) && !b.opts.IncludeUnexported {
				continue
			}
			members = append(members, model.Member{Name: name.Name, Type: typ, Documentation: doc})
		}
	}
	return members
}

// embeddedName returns the bare name an embedded field is known by.
func embeddedName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return embeddedName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(e.X)
	case *ast.IndexListExpr:
		return embeddedName(e.X)
	}
	return ""
}

// convertExpr converts a type annotation. Composite shapes (slices,
// arrays, maps) recurse structurally; named use-sites and everything
// else go through the converter registry.
func (b *builder) convertExpr(cctx *converter.Context, pkg *packages.Package, expr ast.Expr) model.Type {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return b.convertExpr(cctx, pkg, e.X)
	case *ast.StarExpr:
		// Pointers are presentation detail, not identity; the doc
		// model records the pointee.
		return b.convertExpr(cctx, pkg, e.X)
	case *ast.Ellipsis:
		return model.Slice(b.convertExpr(cctx, pkg, e.Elt))
	case *ast.ArrayType:
		elem := b.convertExpr(cctx, pkg, e.Elt)
		if e.Len == nil {
			return model.Slice(elem)
		}
		if arr, ok := types.Unalias(pkg.TypesInfo.TypeOf(e)).(*types.Array); ok {
			return model.Array(elem, int(arr.Len()))
		}
		return model.Array(elem, 0)
	case *ast.MapType:
		return model.Map(
			b.convertExpr(cctx, pkg, e.Key),
			b.convertExpr(cctx, pkg, e.Value),
		)
	}

	t := cctx.ConvertNode(newNode(pkg, expr))
	if _, ok := t.(*model.UnknownType); ok {
		b.project.AddWarning(model.Warning{
			Code:        WarnUnsupportedType,
			Message:     fmt.Sprintf("type %s has no documented form and was recorded as written", types.ExprString(expr)),
			Declaration: b.current,
		})
	}
	return t
}

// materializeDeferred drains the deferred-reflection queue, turning
// every queued symbol into a declaration. Materializing one declaration
// can queue more, so the drain loops until the queue stops growing.
func (b *builder) materializeDeferred(cctx *converter.Context) {
	b.materialized = make(map[string]bool)
	for {
		progress := false
		for _, dr := range cctx.DeferredReflections() {
			if b.materialized[dr.FullyQualifiedName] {
				continue
			}
			b.materialized[dr.FullyQualifiedName] = true
			progress = true
			if b.project.Lookup(dr.FullyQualifiedName) != nil {
				continue
			}
			b.materializeSymbol(cctx, dr.FullyQualifiedName, dr.Symbol)
		}
		if !progress {
			break
		}
	}
}

// materializeSymbol adds a declaration for a queued symbol. Symbols
// declared in a loaded package materialize fully from their syntax;
// external ones get a shallow declaration from type information alone.
func (b *builder) materializeSymbol(cctx *converter.Context, fqn string, sym converter.Symbol) {
	obj, ok := sym.(types.Object)
	if !ok {
		return
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return
	}

	if pkg, spec, decl := b.findTypeSpec(obj); spec != nil {
		b.addTypeDecl(cctx, pkg, decl, spec)
		return
	}

	kind := model.DeclType
	switch tn.Type().Underlying().(type) {
	case *types.Struct:
		kind = model.DeclStruct
	case *types.Interface:
		kind = model.DeclInterface
	}
	b.project.AddDeclaration(&model.Declaration{
		Name:               obj.Name(),
		FullyQualifiedName: fqn,
		Kind:               kind,
	})
	b.logger.Debug("materialized external symbol",
		slog.String("fqn", fqn))
}

// findTypeSpec locates the syntax of an object declared in a loaded package.
func (b *builder) findTypeSpec(obj types.Object) (*packages.Package, *ast.TypeSpec, *ast.GenDecl) {
	for _, pkg := range b.pkgs {
		if pkg.Types != obj.Pkg() {
			continue
		}
		pos := obj.Pos()
		for _, file := range pkg.Syntax {
			if file.Pos() > pos || file.End() < pos {
				continue
			}
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok {
					continue
				}
				for _, spec := range gd.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Pos() == pos {
						return pkg, ts, gd
					}
				}
			}
		}
	}
	return nil, nil, nil
}

// fqnOf returns the fully-qualified name of a defining identifier.
func (b *builder) fqnOf(pkg *packages.Package, name *ast.Ident) string {
	if obj := pkg.TypesInfo.Defs[name]; obj != nil {
		return goChecker{}.FullyQualifiedName(obj)
	}
	return fmt.Sprintf("%q.%s", pkg.PkgPath, name.Name)
}

// sourceOf returns the source location of a position.
func (b *builder) sourceOf(pkg *packages.Package, pos token.Pos) model.Source {
	if pkg.Fset == nil || !pos.IsValid() {
		return model.Source{}
	}
	position := pkg.Fset.Position(pos)
	return model.Source{
		File:   position.Filename,
		Line:   position.Line,
		Column: position.Column,
	}
}

// constantValue converts a constant.Value to string, int64, float64, or bool.
func constantValue(v constant.Value) any {
	switch v.Kind() {
	case constant.String:
		return constant.StringVal(v)
	case constant.Int:
		i64, _ := constant.Int64Val(v)
		return i64
	case constant.Float:
		f64, _ := constant.Float64Val(v)
		return f64
	case constant.Bool:
		return constant.BoolVal(v)
	default:
		return v.String()
	}
}
