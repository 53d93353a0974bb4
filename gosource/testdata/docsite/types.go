// Package docsite is test input covering alias use-sites, direct
// references, and primitive aliases.
package docsite

// RealClass is a concrete type that aliases point at.
type RealClass struct {
	// ID identifies the instance.
	ID   string
	Tags []string
	Meta map[string]int
}

// Alias is a transparent alias of RealClass.
type Alias = RealClass

// MyNumber is an alias of a primitive.
type MyNumber = int

// Score is a defined type over a primitive.
type Score int

// Chained goes through two alias hops.
type Chained = Alias

// Latest refers to RealClass through an alias.
var Latest Alias

// Current refers to RealClass directly.
var Current RealClass

// Count uses a primitive alias.
var Count MyNumber

// MaxScore is a typed constant.
const MaxScore Score = 100

// Version is an untyped constant.
const Version = "v1"

// Box holds a single value.
type Box[T any] struct {
	Value T
}

// IntBox is an alias of a generic instantiation.
type IntBox = Box[int]

// BoxVar uses the instantiation alias without spelling arguments.
var BoxVar IntBox

// Events streams updates as they happen.
var Events chan string

// Lookup finds a RealClass by ID.
//
// Deprecated: use LookupContext.
func Lookup(id string) (*RealClass, error) {
	return nil, nil
}

type hidden struct {
	n int
}
