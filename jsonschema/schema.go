// Package jsonschema holds the output representation for schema export. It
// has no dependency back on the validation engine.
package jsonschema

import (
	json "github.com/goccy/go-json"
)

// Draft selects the JSON Schema dialect advertised via $schema.
type Draft string

const (
	Draft07     Draft = "draft-07"
	Draft201909 Draft = "draft-2019-09"
	Draft202012 Draft = "draft-2020-12"
)

// URL returns the $schema URL for the draft. Unknown drafts fall back to
// draft-07, the default dialect.
func (d Draft) URL() string {
	switch d {
	case Draft201909:
		return "https://json-schema.org/draft/2019-09/schema"
	case Draft202012:
		return "https://json-schema.org/draft/2020-12/schema"
	default:
		return "http://json-schema.org/draft-07/schema#"
	}
}

// Schema is a minimal JSON Schema representation used for export. Keep this
// struct small and extend incrementally.
type Schema struct {
	// Core
	SchemaURI string             `json:"$schema,omitempty"`
	Ref       string             `json:"$ref,omitempty"`
	Defs      map[string]*Schema `json:"$defs,omitempty"`
	Type      string             `json:"type,omitempty"`
	Types     []string           `json:"-"` // multi-type form; rendered into "type" when set
	Format    string             `json:"format,omitempty"`
	Const     any                `json:"const,omitempty"`
	Enum      []any              `json:"enum,omitempty"`
	Default   any                `json:"default,omitempty"`

	// Annotations
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Examples    []any  `json:"examples,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	MinItems    *int      `json:"minItems,omitempty"`
	MaxItems    *int      `json:"maxItems,omitempty"`
	UniqueItems bool      `json:"uniqueItems,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Extra carries constraint keys with no dedicated field above; they are
	// merged verbatim into the serialized fragment.
	Extra map[string]any `json:"-"`
}

type schemaAlias Schema

// MarshalJSON renders the fragment, folding Types into "type" and merging
// Extra keys verbatim. Dedicated fields win over Extra on conflict.
func (s *Schema) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal((*schemaAlias)(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 && len(s.Types) == 0 {
		return raw, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	if len(s.Types) > 0 {
		m["type"] = s.Types
	}
	return json.Marshal(m)
}
