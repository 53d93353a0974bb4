package converter

import "github.com/refgraph/refgraph/model"

// ReferencePriority runs after alias detection; by then a matching
// surface name means a direct reference to the resolved declaration.
const ReferencePriority = 50

// ReferenceConverter handles direct references to declared entities:
// the resolved type carries a symbol whose qualified name matches the
// name written at the use-site.
type ReferenceConverter struct{}

// Name returns "reference".
func (*ReferenceConverter) Name() string { return "reference" }

// Priority returns ReferencePriority.
func (*ReferenceConverter) Priority() int { return ReferencePriority }

// Supports claims named use-sites whose resolved symbol matches the
// surface name under the same right-aligned comparison the alias
// converter uses. A symbol-bearing type with no node at all is also a
// direct reference: instantiation arguments recovered from the checker
// have no surface syntax to compare.
func (*ReferenceConverter) Supports(ctx *Context, node TypeNode, typ ResolvedType) bool {
	if typ == nil {
		return false
	}
	sym, ok := typ.Symbol()
	if !ok {
		return false
	}
	if node == nil {
		return true
	}
	if node.Name() == "" {
		return false
	}
	symbolName := model.ParseQualifiedName(ctx.Checker().FullyQualifiedName(sym))
	nodeName := model.SplitSurfaceName(node.Name())
	if len(symbolName) == 0 || len(nodeName) == 0 {
		return false
	}
	return model.TailEquals(symbolName, nodeName)
}

// Convert produces a reference to the resolved symbol's declaration and
// queues it for materialization. With no node, the symbol's bare name
// stands in for the surface name.
func (*ReferenceConverter) Convert(ctx *Context, node TypeNode, typ ResolvedType) model.Type {
	sym, _ := typ.Symbol()
	fqn := ctx.Checker().FullyQualifiedName(sym)

	name := ""
	if node != nil {
		name = node.Name()
	}
	if name == "" {
		if qn := model.ParseQualifiedName(fqn); len(qn) > 0 {
			name = qn[len(qn)-1]
		}
	}

	ref := model.NewReference(name, fqn)
	ctx.QueueReflection(fqn, sym)
	if node != nil {
		if args := node.TypeArguments(); len(args) > 0 {
			ref.TypeArguments = ctx.ConvertTypes(args)
			return ref
		}
	}
	ref.TypeArguments = ctx.ConvertResolvedTypes(typ.TypeArguments())
	return ref
}
