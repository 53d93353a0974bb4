package model

// ResolveByName is the resolution target sentinel: the reference could
// not be tied to a concrete declaration at conversion time and must be
// resolved later by a name lookup over the completed project.
const ResolveByName = "@resolveByName"

// ReferenceType represents a use-site reference to a declared entity.
//
// Target is either the entity's fully-qualified name or ResolveByName.
// Instances are immutable after construction except for the deferred
// cross-reference resolution pass (Project.ResolveDeferred), which may
// rewrite a ResolveByName target once the full model is known.
type ReferenceType struct {
	// Name is the surface name exactly as written at the use-site,
	// possibly qualified (e.g. "pkg.User").
	Name string

	// Target is the referenced entity's fully-qualified name, or
	// ResolveByName when resolution is deferred.
	Target string

	// TypeArguments holds converted explicit type arguments, in order.
	TypeArguments []Type
}

// Kind returns KindReference.
func (t *ReferenceType) Kind() Kind { return KindReference }

func (*ReferenceType) sealed() {}

// Resolved reports whether the reference carries a concrete target.
func (t *ReferenceType) Resolved() bool { return t.Target != ResolveByName }

// NewReference returns a ReferenceType resolved to a fully-qualified name.
func NewReference(name, fqn string) *ReferenceType {
	return &ReferenceType{Name: name, Target: fqn}
}

// NewDeferredReference returns a ReferenceType whose target will be
// resolved later by name lookup over the completed project.
func NewDeferredReference(name string) *ReferenceType {
	return &ReferenceType{Name: name, Target: ResolveByName}
}
