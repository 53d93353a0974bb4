package converter

import (
	"log/slog"
	"math"

	"github.com/refgraph/refgraph/model"
)

// IntrinsicPriority runs after the name-driven converters; intrinsic
// use-sites carry no name portion to compare.
const IntrinsicPriority = 25

// IntrinsicConverter handles use-sites of built-in primitive types.
// These nodes present no surface name (the name-comparison converters
// never apply), only a resolved primitive.
type IntrinsicConverter struct{}

// Name returns "intrinsic".
func (*IntrinsicConverter) Name() string { return "intrinsic" }

// Priority returns IntrinsicPriority.
func (*IntrinsicConverter) Priority() int { return IntrinsicPriority }

// Supports claims nameless use-sites whose resolved type is a
// primitive. Nodes resolved purely from checker information (nil node)
// qualify too.
func (*IntrinsicConverter) Supports(ctx *Context, node TypeNode, typ ResolvedType) bool {
	if typ == nil {
		return false
	}
	if node != nil && node.Name() != "" {
		return false
	}
	_, ok := typ.Intrinsic()
	return ok
}

// Convert produces the primitive's model type.
func (*IntrinsicConverter) Convert(ctx *Context, node TypeNode, typ ResolvedType) model.Type {
	name, _ := typ.Intrinsic()
	return model.Intrinsic(name)
}

// unknownConverter is the catch-all registered at the lowest possible
// priority. It supports every use-site, so registry conversion is total.
type unknownConverter struct{}

func (*unknownConverter) Name() string { return "unknown" }

func (*unknownConverter) Priority() int { return math.MinInt }

func (*unknownConverter) Supports(ctx *Context, node TypeNode, typ ResolvedType) bool {
	return true
}

func (*unknownConverter) Convert(ctx *Context, node TypeNode, typ ResolvedType) model.Type {
	text := nodeText(node)
	if text == "" && typ != nil {
		text = typ.String()
	}
	ctx.Logger().Debug("no converter claimed use-site, emitting type as written",
		slog.String("text", text))
	return model.Unknown(text)
}
