package converter

import (
	"log/slog"

	"github.com/refgraph/refgraph/model"
)

// AliasPriority runs the alias converter before the generic reference
// converters. The checker erases alias boundaries from resolved types,
// so the alias case must be recognized first.
const AliasPriority = 100

// AliasConverter recognizes type-alias use-sites: places where the
// checker transparently substituted the written name's target, leaving
// no explicit alias marker behind. Detection compares the surface name
// against the resolved symbol's fully-qualified name; a textual
// mismatch is the only remaining evidence of the indirection.
type AliasConverter struct{}

// Name returns "alias".
func (*AliasConverter) Name() string { return "alias" }

// Priority returns AliasPriority.
func (*AliasConverter) Priority() int { return AliasPriority }

// Supports claims a use-site when the written name cannot be the
// resolved type's own name: either the resolved type has no symbol at
// all (the checker collapsed the alias into a non-referenceable type),
// or the trailing segments of the symbol's qualified name differ from
// what the author wrote.
func (*AliasConverter) Supports(ctx *Context, node TypeNode, typ ResolvedType) bool {
	if node == nil || node.Name() == "" || typ == nil {
		return false
	}
	sym, ok := typ.Symbol()
	if !ok {
		return true
	}
	symbolName := model.ParseQualifiedName(ctx.Checker().FullyQualifiedName(sym))
	nodeName := model.SplitSurfaceName(node.Name())
	if len(symbolName) == 0 || len(nodeName) == 0 {
		return false
	}
	// Right-aligned comparison: the surface name may be a shorter,
	// partially-qualified reference to the same declaration. A match
	// means the author referenced the entity directly.
	return !model.TailEquals(symbolName, nodeName)
}

// Convert resolves the written name through the checker's alias
// indirection and produces a reference to the ultimate target. When the
// target is unresolvable (e.g. an alias of a primitive), the reference
// defers to a later name-based lookup instead of failing.
func (*AliasConverter) Convert(ctx *Context, node TypeNode, typ ResolvedType) model.Type {
	surface := node.Name()

	ref := model.NewDeferredReference(surface)
	if sym, ok := ctx.Checker().SymbolAt(node.Identifier()); ok {
		if target, ok := ctx.Checker().ResolveAliasedSymbol(sym); ok {
			fqn := ctx.Checker().FullyQualifiedName(target)
			ref = model.NewReference(surface, fqn)
			// The target may never be referenced directly anywhere
			// else; queue it so it still materializes in the model.
			ctx.QueueReflection(fqn, target)
		} else {
			ctx.Logger().Debug("alias target unresolved, deferring to name lookup",
				slog.String("name", surface))
		}
	}

	// Surface arguments win; an alias of an instantiation written bare
	// still carries the arguments on its resolved type.
	if args := node.TypeArguments(); len(args) > 0 {
		ref.TypeArguments = ctx.ConvertTypes(args)
	} else {
		ref.TypeArguments = ctx.ConvertResolvedTypes(typ.TypeArguments())
	}
	return ref
}
