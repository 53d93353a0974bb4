package model

import "encoding/json"

// JSON serialization support for the type model.
// All type nodes include a "kind" field for discrimination.

// MarshalJSON implements json.Marshaler for ReferenceType.
func (t *ReferenceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		Name          string `json:"name"`
		Target        string `json:"target"`
		TypeArguments []Type `json:"typeArguments,omitempty"`
	}{
		Kind:          "reference",
		Name:          t.Name,
		Target:        t.Target,
		TypeArguments: t.TypeArguments,
	})
}

// MarshalJSON implements json.Marshaler for IntrinsicType.
func (t *IntrinsicType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{
		Kind: "intrinsic",
		Name: t.Name,
	})
}

// MarshalJSON implements json.Marshaler for LiteralType.
func (t *LiteralType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Value any    `json:"value"`
	}{
		Kind:  "literal",
		Value: t.Value,
	})
}

// MarshalJSON implements json.Marshaler for ArrayType.
func (t *ArrayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string `json:"kind"`
		Element Type   `json:"element"`
		Length  int    `json:"length,omitempty"`
	}{
		Kind:    "array",
		Element: t.Element,
		Length:  t.Length,
	})
}

// MarshalJSON implements json.Marshaler for MapType.
func (t *MapType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Key   Type   `json:"key"`
		Value Type   `json:"value"`
	}{
		Kind:  "map",
		Key:   t.Key,
		Value: t.Value,
	})
}

// MarshalJSON implements json.Marshaler for UnknownType.
func (t *UnknownType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}{
		Kind: "unknown",
		Text: t.Text,
	})
}

// MarshalJSON implements json.Marshaler for Declaration.
func (d *Declaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name       string     `json:"name"`
		FQN        string     `json:"fullyQualifiedName"`
		Kind       string     `json:"kind"`
		Type       Type       `json:"type,omitempty"`
		Members    []Member   `json:"members,omitempty"`
		Signature  *Signature `json:"signature,omitempty"`
		Doc        string     `json:"doc,omitempty"`
		Deprecated *string    `json:"deprecated,omitempty"`
		Source     *Source    `json:"source,omitempty"`
	}{
		Name:       d.Name,
		FQN:        d.FullyQualifiedName,
		Kind:       d.Kind.String(),
		Type:       d.Type,
		Members:    d.Members,
		Signature:  d.Signature,
		Doc:        d.Documentation.Summary,
		Deprecated: d.Documentation.Deprecated,
		Source:     sourceOrNil(d.Source),
	})
}

func sourceOrNil(s Source) *Source {
	if s.IsZero() {
		return nil
	}
	return &s
}

// MarshalJSON implements json.Marshaler for Member.
func (m Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name string `json:"name"`
		Type Type   `json:"type"`
		Doc  string `json:"doc,omitempty"`
	}{
		Name: m.Name,
		Type: m.Type,
		Doc:  m.Documentation.Summary,
	})
}

// MarshalJSON implements json.Marshaler for Project.
func (p *Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Packages     []PackageInfo  `json:"packages"`
		Declarations []*Declaration `json:"declarations"`
		Warnings     []Warning      `json:"warnings,omitempty"`
	}{
		Packages:     p.Packages,
		Declarations: p.Declarations,
		Warnings:     p.Warnings,
	})
}
