package gosource

import (
	"go/ast"
	"go/types"

	"github.com/refgraph/refgraph/converter"
	"golang.org/x/tools/go/packages"
)

// typeNode wraps a Go type-annotation expression as a converter.TypeNode.
type typeNode struct {
	pkg  *packages.Package
	expr ast.Expr
}

func newNode(pkg *packages.Package, expr ast.Expr) *typeNode {
	return &typeNode{pkg: pkg, expr: expr}
}

// Name returns the possibly-qualified surface name of the annotation.
// Identifiers that denote built-in primitives report no name, so the
// name-comparison converters never see them.
func (n *typeNode) Name() string {
	switch e := n.expr.(type) {
	case *ast.Ident:
		if n.isIntrinsicIdent(e) {
			return ""
		}
		return e.Name
	case *ast.SelectorExpr:
		if x, ok := e.X.(*ast.Ident); ok {
			return x.Name + "." + e.Sel.Name
		}
		return e.Sel.Name
	case *ast.IndexExpr:
		return newNode(n.pkg, e.X).Name()
	case *ast.IndexListExpr:
		return newNode(n.pkg, e.X).Name()
	}
	return ""
}

// Identifier returns the rightmost identifier of the annotation.
func (n *typeNode) Identifier() converter.TypeNode {
	switch e := n.expr.(type) {
	case *ast.SelectorExpr:
		return newNode(n.pkg, e.Sel)
	case *ast.IndexExpr:
		return newNode(n.pkg, e.X).Identifier()
	case *ast.IndexListExpr:
		return newNode(n.pkg, e.X).Identifier()
	}
	return n
}

// TypeArguments returns explicit type-argument syntax on generic
// instantiations.
func (n *typeNode) TypeArguments() []converter.TypeNode {
	switch e := n.expr.(type) {
	case *ast.IndexExpr:
		return []converter.TypeNode{newNode(n.pkg, e.Index)}
	case *ast.IndexListExpr:
		out := make([]converter.TypeNode, 0, len(e.Indices))
		for _, idx := range e.Indices {
			out = append(out, newNode(n.pkg, idx))
		}
		return out
	}
	return nil
}

// Text returns the annotation as written in source.
func (n *typeNode) Text() string {
	return types.ExprString(n.expr)
}

// isIntrinsicIdent reports whether the identifier denotes a predeclared
// primitive (universe-scope int, string, any, ...). A package-scope
// alias of a primitive is not intrinsic: its written name is the whole
// point of the alias detection.
func (n *typeNode) isIntrinsicIdent(id *ast.Ident) bool {
	obj := n.pkg.TypesInfo.Uses[id]
	if obj == nil || obj.Pkg() != nil {
		return false
	}
	if obj.Name() == "any" {
		return true
	}
	_, basic := types.Unalias(obj.Type()).(*types.Basic)
	return basic
}

// resolvedType wraps a types.Type as a converter.ResolvedType.
type resolvedType struct {
	t types.Type
}

// Symbol returns the declaration symbol of a named type. Aliases have
// already been unwrapped by the checker, so the symbol is the ultimate
// named type's, not the alias's.
func (r *resolvedType) Symbol() (converter.Symbol, bool) {
	if named, ok := types.Unalias(r.t).(*types.Named); ok {
		return named.Obj(), true
	}
	return nil, false
}

// Intrinsic returns the primitive name of basic types and "any" for the
// empty interface.
func (r *resolvedType) Intrinsic() (string, bool) {
	switch u := types.Unalias(r.t).(type) {
	case *types.Basic:
		return u.Name(), true
	case *types.Interface:
		if u.Empty() {
			return "any", true
		}
	}
	return "", false
}

// TypeArguments returns the instantiation arguments of a generic
// named type. The checker records these on the resolved type even when
// the use-site writes none, as with an alias of an instantiation.
func (r *resolvedType) TypeArguments() []converter.ResolvedType {
	named, ok := types.Unalias(r.t).(*types.Named)
	if !ok {
		return nil
	}
	targs := named.TypeArgs()
	if targs == nil || targs.Len() == 0 {
		return nil
	}
	out := make([]converter.ResolvedType, 0, targs.Len())
	for i := 0; i < targs.Len(); i++ {
		out = append(out, &resolvedType{t: targs.At(i)})
	}
	return out
}

// String returns the checker's rendering of the type.
func (r *resolvedType) String() string {
	return r.t.String()
}
