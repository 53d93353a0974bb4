// Package converter routes type use-sites to conversion strategies and
// builds model types from resolved checker information. The registry
// selects exactly one converter per use-site by priority; the alias
// converter reconstructs checker-erased alias indirections from the
// mismatch between surface syntax and resolved symbol names.
package converter

import (
	"sort"

	"github.com/refgraph/refgraph/model"
)

// Symbol is an opaque handle to a checker declaration symbol.
type Symbol any

// TypeNode is the surface syntax of a type use-site.
type TypeNode interface {
	// Name returns the possibly-qualified surface name as written
	// (e.g. "pkg.User"), or "" when the node has no name portion.
	Name() string

	// Identifier returns the rightmost identifier of a qualified name,
	// or the node itself when the name is unqualified. Symbol lookup
	// happens at this node's position.
	Identifier() TypeNode

	// TypeArguments returns explicit type-argument syntax, in order.
	// Nil when the use-site carries no type arguments.
	TypeArguments() []TypeNode

	// Text returns the raw source text of the node.
	Text() string
}

// ResolvedType is the checker's resolved semantic type at a use-site.
type ResolvedType interface {
	// Symbol returns the type's associated declaration symbol. Absent
	// for non-referenceable types such as primitives and literals.
	Symbol() (Symbol, bool)

	// Intrinsic returns the primitive name when the resolved type is a
	// built-in primitive.
	Intrinsic() (string, bool)

	// TypeArguments returns the instantiation arguments the checker
	// recorded on the type. Nil when the type is not a generic
	// instantiation. These exist independently of surface syntax: an
	// alias of an instantiation carries them even when the use-site
	// spells no arguments.
	TypeArguments() []ResolvedType

	// String returns the checker's rendering of the type.
	String() string
}

// Checker is the narrow view of the type checker the converters need.
type Checker interface {
	// SymbolAt returns the symbol at an identifier node's position.
	SymbolAt(node TypeNode) (Symbol, bool)

	// ResolveAliasedSymbol follows one or more alias indirections to
	// the ultimate declaration symbol. A symbol with no indirection
	// resolves to itself. Returns false when the chain ends at a
	// non-referenceable type.
	ResolveAliasedSymbol(sym Symbol) (Symbol, bool)

	// FullyQualifiedName returns a stable, globally unique name for a
	// declaration symbol. May include a leading quoted module/path
	// segment (`"pkg/path".Name`).
	FullyQualifiedName(sym Symbol) string

	// TypeOf returns the resolved type of a syntax node.
	TypeOf(node TypeNode) (ResolvedType, bool)
}

// TypeConverter converts one category of type use-site into a model type.
type TypeConverter interface {
	// Name identifies the converter in logs.
	Name() string

	// Priority orders converter probing; higher runs first.
	Priority() int

	// Supports reports whether this converter claims the use-site.
	// The resolved type may be nil when the checker produced none.
	Supports(ctx *Context, node TypeNode, typ ResolvedType) bool

	// Convert produces the model type. Called only after Supports
	// returned true for the same use-site.
	Convert(ctx *Context, node TypeNode, typ ResolvedType) model.Type
}

// Registry holds the registered type converters and routes each use-site
// to exactly one of them.
type Registry struct {
	converters []TypeConverter
}

// NewRegistry returns a registry populated with the default converter
// set, including the lowest-priority catch-all that guarantees every
// use-site converts to something.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(&AliasConverter{})
	r.Register(&ReferenceConverter{})
	r.Register(&IntrinsicConverter{})
	r.Register(&unknownConverter{})
	return r
}

// Register adds a converter, keeping the probe order sorted by priority
// descending. Converters with equal priority keep registration order,
// so dispatch is deterministic.
func (r *Registry) Register(c TypeConverter) {
	i := sort.Search(len(r.converters), func(i int) bool {
		return r.converters[i].Priority() < c.Priority()
	})
	r.converters = append(r.converters, nil)
	copy(r.converters[i+1:], r.converters[i:])
	r.converters[i] = c
}

// Converters returns the registered converters in probe order.
func (r *Registry) Converters() []TypeConverter {
	out := make([]TypeConverter, len(r.converters))
	copy(out, r.converters)
	return out
}

// Convert routes a use-site to the highest-priority converter that
// supports it and returns that converter's result. Conversion never
// fails: the catch-all converter claims anything the rest declined.
func (r *Registry) Convert(ctx *Context, node TypeNode, typ ResolvedType) model.Type {
	for _, c := range r.converters {
		if c.Supports(ctx, node, typ) {
			return c.Convert(ctx, node, typ)
		}
	}
	// Reachable only with an empty or custom converter set.
	return model.Unknown(nodeText(node))
}

func nodeText(node TypeNode) string {
	if node == nil {
		return ""
	}
	return node.Text()
}
