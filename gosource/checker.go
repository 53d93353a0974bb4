package gosource

import (
	"fmt"
	"go/ast"
	"go/types"

	"github.com/refgraph/refgraph/converter"
)

// goChecker implements converter.Checker over go/types information
// attached to loaded packages. Symbols are types.Object values.
type goChecker struct{}

// SymbolAt returns the object the identifier node resolves to.
func (goChecker) SymbolAt(node converter.TypeNode) (converter.Symbol, bool) {
	n, ok := node.(*typeNode)
	if !ok {
		return nil, false
	}
	id, ok := n.expr.(*ast.Ident)
	if !ok {
		return nil, false
	}
	if obj := n.pkg.TypesInfo.Uses[id]; obj != nil {
		return obj, true
	}
	if obj := n.pkg.TypesInfo.Defs[id]; obj != nil {
		return obj, true
	}
	return nil, false
}

// ResolveAliasedSymbol follows alias declarations to the ultimate named
// type's symbol. A symbol with no indirection resolves to itself; a
// chain ending at a non-named type (e.g. a primitive) reports failure.
func (goChecker) ResolveAliasedSymbol(sym converter.Symbol) (converter.Symbol, bool) {
	obj, ok := sym.(types.Object)
	if !ok {
		return nil, false
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, false
	}
	t := tn.Type()
	for {
		alias, ok := t.(*types.Alias)
		if !ok {
			break
		}
		t = alias.Rhs()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj(), true
	}
	return nil, false
}

// FullyQualifiedName renders a globally unique name for the symbol:
// `"pkg/path".Name` for package-scope declarations, the bare name for
// universe-scope ones.
func (goChecker) FullyQualifiedName(sym converter.Symbol) string {
	obj, ok := sym.(types.Object)
	if !ok {
		return ""
	}
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return fmt.Sprintf("%q.%s", obj.Pkg().Path(), obj.Name())
}

// TypeOf returns the checker's resolved type for a syntax node.
func (goChecker) TypeOf(node converter.TypeNode) (converter.ResolvedType, bool) {
	n, ok := node.(*typeNode)
	if !ok {
		return nil, false
	}
	t := n.pkg.TypesInfo.TypeOf(n.expr)
	if t == nil {
		return nil, false
	}
	return &resolvedType{t: t}, true
}
