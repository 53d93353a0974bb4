package model

// DeclKind identifies the category of a declaration.
type DeclKind int

const (
	DeclStruct DeclKind = iota
	DeclInterface
	DeclAlias
	DeclType // defined (non-alias, non-struct, non-interface) type
	DeclFunc
	DeclVar
	DeclConst
)

// String returns the string representation of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclInterface:
		return "interface"
	case DeclAlias:
		return "alias"
	case DeclType:
		return "type"
	case DeclFunc:
		return "func"
	case DeclVar:
		return "var"
	case DeclConst:
		return "const"
	default:
		return "unknown"
	}
}

// Documentation holds documentation comments extracted from source.
type Documentation struct {
	// Summary is the first sentence or line, suitable for brief listings.
	Summary string

	// Body is the complete documentation text, including the summary.
	Body string

	// Deprecated is non-nil if the declaration is marked deprecated.
	// The string value is the deprecation message (may be empty).
	Deprecated *string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == "" && d.Deprecated == nil
}

// Source represents a source code location.
type Source struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0 && s.Column == 0
}

// Warning represents a non-fatal issue encountered while building the model.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Declaration is the fully-qualified name that triggered the
	// warning, if applicable.
	Declaration string `json:"declaration,omitempty"`
}

// PackageInfo describes a source package included in the project.
type PackageInfo struct {
	// Path is the import path.
	Path string `json:"path"`

	// Name is the package name.
	Name string `json:"name"`
}

// Member is a named component of a declaration: a struct field or an
// interface method.
type Member struct {
	Name          string
	Type          Type
	Documentation Documentation
}

// Parameter is a named function parameter.
type Parameter struct {
	Name string `json:"name,omitempty"`
	Type Type   `json:"type"`
}

// Signature describes a function declaration's parameters and results.
type Signature struct {
	Params  []Parameter `json:"params,omitempty"`
	Results []Type      `json:"results,omitempty"`
}

// Declaration is a documented entity in the project: a type, function,
// variable, or constant.
type Declaration struct {
	// Name is the declaration's bare identifier.
	Name string

	// FullyQualifiedName is the globally unique path identifying this
	// declaration, independent of how use-sites refer to it.
	FullyQualifiedName string

	// Kind is the declaration category.
	Kind DeclKind

	// Type is the declaration's converted type: the aliased type for
	// aliases, the underlying type for defined types, the annotated
	// type for vars and consts. Nil for structs, interfaces, and funcs.
	Type Type

	// Members holds struct fields or interface methods.
	Members []Member

	// Signature is set for function declarations.
	Signature *Signature

	// Documentation extracted from the declaration's doc comment.
	Documentation Documentation

	// Source is the declaration site.
	Source Source
}

// Project is the completed documentation model: an ordered set of
// declarations with warnings collected along the way.
type Project struct {
	// Packages lists the source packages the project was built from.
	Packages []PackageInfo

	// Declarations in the order they were added. Deferred-reflection
	// targets are appended after the directly reachable declarations.
	Declarations []*Declaration

	// Warnings contains non-fatal issues encountered during the build.
	Warnings []Warning

	byFQN map[string]*Declaration
}

// NewProject returns an empty project.
func NewProject() *Project {
	return &Project{byFQN: make(map[string]*Declaration)}
}

// AddDeclaration appends a declaration to the project. A declaration
// with an already-present fully-qualified name is ignored.
func (p *Project) AddDeclaration(d *Declaration) {
	if p.byFQN == nil {
		p.byFQN = make(map[string]*Declaration)
	}
	if _, exists := p.byFQN[d.FullyQualifiedName]; exists {
		return
	}
	p.byFQN[d.FullyQualifiedName] = d
	p.Declarations = append(p.Declarations, d)
}

// AddWarning appends a warning to the project.
func (p *Project) AddWarning(w Warning) {
	p.Warnings = append(p.Warnings, w)
}

// Lookup returns the declaration with the given fully-qualified name,
// or nil if none exists.
func (p *Project) Lookup(fqn string) *Declaration {
	return p.byFQN[fqn]
}

// LookupByName returns all declarations whose bare name matches.
func (p *Project) LookupByName(name string) []*Declaration {
	var out []*Declaration
	for _, d := range p.Declarations {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

// ResolveDeferred is the cross-reference resolution pass over the
// completed model. Every ReferenceType whose target is the ResolveByName
// sentinel is resolved by looking up the rightmost segment of its
// surface name; the target is rewritten only when exactly one
// declaration matches. It returns the number of references resolved.
func (p *Project) ResolveDeferred() int {
	resolved := 0
	for _, d := range p.Declarations {
		walkTypes(d, func(t Type) {
			ref, ok := t.(*ReferenceType)
			if !ok || ref.Resolved() {
				return
			}
			segments := SplitSurfaceName(ref.Name)
			if len(segments) == 0 {
				return
			}
			matches := p.LookupByName(segments[len(segments)-1])
			if len(matches) == 1 {
				ref.Target = matches[0].FullyQualifiedName
				resolved++
			}
		})
	}
	return resolved
}

// walkTypes visits every type node reachable from a declaration.
func walkTypes(d *Declaration, visit func(Type)) {
	walkType(d.Type, visit)
	for _, m := range d.Members {
		walkType(m.Type, visit)
	}
	if d.Signature != nil {
		for _, p := range d.Signature.Params {
			walkType(p.Type, visit)
		}
		for _, r := range d.Signature.Results {
			walkType(r, visit)
		}
	}
}

func walkType(t Type, visit func(Type)) {
	if t == nil {
		return
	}
	visit(t)
	switch typ := t.(type) {
	case *ReferenceType:
		for _, arg := range typ.TypeArguments {
			walkType(arg, visit)
		}
	case *ArrayType:
		walkType(typ.Element, visit)
	case *MapType:
		walkType(typ.Key, visit)
		walkType(typ.Value, visit)
	}
}
