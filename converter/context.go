package converter

import (
	"log/slog"

	"github.com/refgraph/refgraph/model"
)

// Context carries the state of one conversion run: the checker facade,
// the converter registry, and the deferred-reflection queue. A Context
// is scoped to a single run and passed explicitly; it is not safe for
// concurrent use.
type Context struct {
	checker  Checker
	registry *Registry
	logger   *slog.Logger

	// Deferred-reflection queue. Keyed by fully-qualified name so that
	// the same target queued from two use-sites materializes once;
	// order preserves first registration.
	deferred map[string]Symbol
	order    []string
}

// DeferredReflection is a queued (fully-qualified name, symbol) pair
// awaiting materialization into the documentation model.
type DeferredReflection struct {
	FullyQualifiedName string
	Symbol             Symbol
}

// NewContext returns a conversion context over the given checker and
// registry. If logger is nil, slog.Default() is used.
func NewContext(checker Checker, registry *Registry, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		checker:  checker,
		registry: registry,
		logger:   logger,
		deferred: make(map[string]Symbol),
	}
}

// Checker returns the checker facade for this run.
func (c *Context) Checker() Checker { return c.checker }

// Registry returns the converter registry for this run.
func (c *Context) Registry() *Registry { return c.registry }

// Logger returns the context's logger.
func (c *Context) Logger() *slog.Logger { return c.logger }

// QueueReflection records a symbol for later materialization into the
// model, keyed by fully-qualified name. Repeat registrations for the
// same name are no-ops.
func (c *Context) QueueReflection(fqn string, sym Symbol) {
	if _, ok := c.deferred[fqn]; ok {
		return
	}
	c.deferred[fqn] = sym
	c.order = append(c.order, fqn)
}

// DeferredReflections returns the queued reflections in first-queued order.
func (c *Context) DeferredReflections() []DeferredReflection {
	out := make([]DeferredReflection, 0, len(c.order))
	for _, fqn := range c.order {
		out = append(out, DeferredReflection{FullyQualifiedName: fqn, Symbol: c.deferred[fqn]})
	}
	return out
}

// Convert converts a single use-site through the registry.
func (c *Context) Convert(node TypeNode, typ ResolvedType) model.Type {
	return c.registry.Convert(c, node, typ)
}

// ConvertNode resolves a node's type through the checker and converts it.
func (c *Context) ConvertNode(node TypeNode) model.Type {
	typ, ok := c.checker.TypeOf(node)
	if !ok {
		typ = nil
	}
	return c.registry.Convert(c, node, typ)
}

// ConvertTypes converts an ordered sequence of type-argument nodes.
// Returns nil for an empty sequence.
func (c *Context) ConvertTypes(nodes []TypeNode) []model.Type {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]model.Type, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, c.ConvertNode(n))
	}
	return out
}

// ConvertResolvedTypes converts resolved types that have no surface
// syntax, such as instantiation arguments recovered from the checker.
// Each goes through the registry with a nil node. Returns nil for an
// empty sequence.
func (c *Context) ConvertResolvedTypes(typs []ResolvedType) []model.Type {
	if len(typs) == 0 {
		return nil
	}
	out := make([]model.Type, 0, len(typs))
	for _, t := range typs {
		out = append(out, c.registry.Convert(c, nil, t))
	}
	return out
}
