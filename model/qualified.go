package model

import "strings"

// QualifiedName is an ordered sequence of name segments, outer scope
// first. It is produced either from surface syntax or from a symbol's
// fully-qualified name.
type QualifiedName []string

// String returns the dot-joined form of the qualified name.
func (q QualifiedName) String() string { return strings.Join(q, ".") }

// ParseQualifiedName splits a checker-produced fully-qualified name into
// segments. A leading quoted module/path segment (the `"pkg/path".Name`
// form) is stripped before splitting, since module paths contain dots
// and slashes that are not scope separators.
func ParseQualifiedName(s string) QualifiedName {
	if strings.HasPrefix(s, `"`) {
		if end := strings.Index(s[1:], `"`); end >= 0 {
			s = strings.TrimPrefix(s[end+2:], ".")
		}
	}
	if s == "" {
		return nil
	}
	return QualifiedName(strings.Split(s, "."))
}

// SplitSurfaceName splits a possibly-qualified surface name as written
// at a use-site (e.g. "pkg.User") into segments.
func SplitSurfaceName(s string) QualifiedName {
	if s == "" {
		return nil
	}
	return QualifiedName(strings.Split(s, "."))
}

// TailEquals compares the trailing min(len(a), len(b)) segments of two
// qualified names. The comparison is right-aligned so that a shorter,
// partially-qualified surface name can match a fully-qualified symbol
// name. Two empty names compare equal.
func TailEquals(a, b QualifiedName) bool {
	k := len(a)
	if len(b) < k {
		k = len(b)
	}
	for i := 1; i <= k; i++ {
		if a[len(a)-i] != b[len(b)-i] {
			return false
		}
	}
	return true
}
