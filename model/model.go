// Package model defines the documentation type model: a graph of typed
// nodes produced from resolved type-checker information, with
// cross-references addressed by fully-qualified name. Renderers consume
// this model to emit API reference documentation.
package model

// Kind identifies the category of a type node.
type Kind int

const (
	// KindReference is a use-site reference to a declared entity,
	// addressed by fully-qualified name or deferred to a name lookup.
	KindReference Kind = iota

	// KindIntrinsic is a built-in primitive type (string, int, bool, ...).
	KindIntrinsic

	// KindLiteral is a constant-valued type.
	KindLiteral

	// KindArray is an ordered collection ([]T or [N]T).
	KindArray

	// KindMap is a key-value mapping (map[K]V).
	KindMap

	// KindUnknown is a type the converter set could not interpret,
	// carried as its raw source text.
	KindUnknown
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindReference:
		return "Reference"
	case KindIntrinsic:
		return "Intrinsic"
	case KindLiteral:
		return "Literal"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Type is the base interface for all type nodes in the model.
type Type interface {
	// Kind returns the node kind for type switching.
	Kind() Kind

	// Ensure only types in this package can implement Type.
	sealed()
}

// IntrinsicType represents a built-in primitive type.
type IntrinsicType struct {
	// Name is the primitive's canonical name (e.g. "string", "int64").
	Name string
}

// Kind returns KindIntrinsic.
func (t *IntrinsicType) Kind() Kind { return KindIntrinsic }

func (*IntrinsicType) sealed() {}

// Intrinsic returns an IntrinsicType for the given primitive name.
func Intrinsic(name string) *IntrinsicType {
	return &IntrinsicType{Name: name}
}

// LiteralType represents a constant-valued type.
type LiteralType struct {
	// Value is the literal's value: string, int64, float64, or bool.
	Value any
}

// Kind returns KindLiteral.
func (t *LiteralType) Kind() Kind { return KindLiteral }

func (*LiteralType) sealed() {}

// Literal returns a LiteralType for the given value.
func Literal(value any) *LiteralType {
	return &LiteralType{Value: value}
}

// ArrayType represents an ordered collection.
type ArrayType struct {
	// Element is the collection's element type.
	Element Type

	// Length is 0 for slices, or >0 for fixed-length arrays.
	Length int
}

// Kind returns KindArray.
func (t *ArrayType) Kind() Kind { return KindArray }

func (*ArrayType) sealed() {}

// Slice returns an ArrayType for a slice type.
func Slice(element Type) *ArrayType {
	return &ArrayType{Element: element}
}

// Array returns an ArrayType for a fixed-length array.
func Array(element Type, length int) *ArrayType {
	return &ArrayType{Element: element, Length: length}
}

// MapType represents a key-value mapping.
type MapType struct {
	Key   Type
	Value Type
}

// Kind returns KindMap.
func (t *MapType) Kind() Kind { return KindMap }

func (*MapType) sealed() {}

// Map returns a MapType with the given key and value types.
func Map(key, value Type) *MapType {
	return &MapType{Key: key, Value: value}
}

// UnknownType carries the raw source text of a type no converter
// claimed. It is the catch-all output that keeps conversion total.
type UnknownType struct {
	// Text is the type expression as written in source.
	Text string
}

// Kind returns KindUnknown.
func (t *UnknownType) Kind() Kind { return KindUnknown }

func (*UnknownType) sealed() {}

// Unknown returns an UnknownType carrying the given source text.
func Unknown(text string) *UnknownType {
	return &UnknownType{Text: text}
}
