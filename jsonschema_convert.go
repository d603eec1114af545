package goval

import (
	js "github.com/reoring/goval/jsonschema"
)

// ConvertOption configures a single ToJSONSchema call.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	draft       js.Draft
	schemaURI   string
	defs        map[string]AnySchema
	useRegistry bool
}

// WithDraft selects the JSON Schema dialect ($schema URL). Default: draft-07.
func WithDraft(d js.Draft) ConvertOption {
	return func(o *convertOptions) { o.draft = d }
}

// WithSchemaURI overrides the $schema URL verbatim.
func WithSchemaURI(uri string) ConvertOption {
	return func(o *convertOptions) { o.schemaURI = uri }
}

// WithDefinitions merges the given named schemas into the output's $defs.
func WithDefinitions(defs map[string]AnySchema) ConvertOption {
	return func(o *convertOptions) { o.defs = defs }
}

// WithRegistryDefs merges the process-wide definitions registry into the
// output's $defs. Registry state is never shared implicitly; callers opt in
// per conversion.
func WithRegistryDefs() ConvertOption {
	return func(o *convertOptions) { o.useRegistry = true }
}

// ToJSONSchema projects a schema's metadata into a JSON Schema fragment. A
// schema with no attached metadata degrades to an empty fragment; the
// projection never fails.
func ToJSONSchema(s AnySchema, opts ...ConvertOption) (*js.Schema, error) {
	o := convertOptions{}
	for _, f := range opts {
		f(&o)
	}
	out := projectSchema(s)
	if o.schemaURI != "" {
		out.SchemaURI = o.schemaURI
	} else {
		out.SchemaURI = o.draft.URL()
	}
	var defs map[string]*js.Schema
	if o.useRegistry {
		defs = mergeDefs(defs, ToJSONSchemaDefs(Definitions()))
	}
	if o.defs != nil {
		defs = mergeDefs(defs, ToJSONSchemaDefs(o.defs))
	}
	if defs != nil {
		out.Defs = defs
	}
	return out, nil
}

// ToJSONSchemaDefs projects a map of named schemas into $defs fragments.
func ToJSONSchemaDefs(defs map[string]AnySchema) map[string]*js.Schema {
	if len(defs) == 0 {
		return nil
	}
	out := make(map[string]*js.Schema, len(defs))
	for name, s := range defs {
		out[name] = projectSchema(s)
	}
	return out
}

// JSONSchema projects the schema with default options (draft-07, no $defs).
func (s Schema[T]) JSONSchema() (*js.Schema, error) {
	out := projectSchema(s.AsAny())
	return out, nil
}

func mergeDefs(dst, src map[string]*js.Schema) map[string]*js.Schema {
	if src == nil {
		return dst
	}
	if dst == nil {
		dst = make(map[string]*js.Schema, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ---- definitions registry ----

// definitionRegistry is the process-wide named-definition store. It is plain
// single-threaded state with an explicit init/merge/clear lifecycle; callers
// populate it during setup and opt in per conversion via WithRegistryDefs.
var definitionRegistry = map[string]AnySchema{}

// RegisterDefinition adds or replaces a named definition (last writer wins).
func RegisterDefinition(name string, s AnySchema) {
	definitionRegistry[name] = s
}

// Definitions returns a copy of the registered definitions.
func Definitions() map[string]AnySchema {
	out := make(map[string]AnySchema, len(definitionRegistry))
	for k, v := range definitionRegistry {
		out[k] = v
	}
	return out
}

// ClearDefinitions empties the registry.
func ClearDefinitions() {
	definitionRegistry = map[string]AnySchema{}
}

// ---- projection ----

// optionalKinds are wrapper kinds whose fields are omitted from an object's
// required list (JSON Schema has no "optional" node; optionality is expressed
// only by omission from required).
var optionalKinds = map[Kind]bool{
	KindOptional:      true,
	KindExactOptional: true,
	KindUndefinedable: true,
	KindNullish:       true,
	KindDefault:       true,
	KindFallback:      true,
	KindCatch:         true,
}

func projectSchema(s AnySchema) *js.Schema {
	return projectMeta(s.Meta())
}

// projectMeta is the recursive core: one case per schema kind. It is total;
// missing metadata or missing children yield empty fragments, never a panic.
func projectMeta(m *Metadata) *js.Schema {
	if m == nil {
		return &js.Schema{}
	}
	out := &js.Schema{}
	switch m.Kind {
	case KindAny, KindUnknown:
		// accepts anything: empty fragment
	case KindString:
		out.Type = "string"
	case KindNumber:
		out.Type = "number"
	case KindInteger:
		out.Type = "integer"
	case KindBoolean:
		out.Type = "boolean"
	case KindNull:
		out.Type = "null"
	case KindLiteral:
		if v, ok := m.Constraints["value"]; ok {
			out.Const = v
			out.Type = literalType(v)
		}
	case KindEnum, KindKeyOf:
		if vs, ok := m.Constraints["values"].([]any); ok {
			out.Enum = vs
		}
	case KindObject, KindPartial, KindRequired:
		projectObject(out, m.Fields, nil)
	case KindLooseObject:
		projectObject(out, m.Fields, nil)
		out.AdditionalProperties = true
	case KindObjectWithRest:
		projectObject(out, m.Fields, m.Rest)
	case KindRecord:
		out.Type = "object"
		if m.Rest != nil {
			out.AdditionalProperties = projectSchema(*m.Rest)
		}
		if m.KeySchema != nil {
			if ks := projectSchema(*m.KeySchema); ks.Type != "" || ks.Pattern != "" || len(ks.Enum) > 0 {
				out.PropertyNames = ks
			}
		}
	case KindMap:
		out.Type = "object"
		if m.Rest != nil {
			out.AdditionalProperties = projectSchema(*m.Rest)
		}
	case KindArray:
		out.Type = "array"
		if len(m.Inner) > 0 {
			out.Items = projectSchema(m.Inner[0])
		}
	case KindSet:
		out.Type = "array"
		out.UniqueItems = true
		if len(m.Inner) > 0 {
			out.Items = projectSchema(m.Inner[0])
		}
	case KindTuple, KindLooseTuple, KindTupleWithRest:
		out.Type = "array"
		out.PrefixItems = make([]*js.Schema, len(m.Inner))
		for i, inner := range m.Inner {
			out.PrefixItems[i] = projectSchema(inner)
		}
		n := len(m.Inner)
		out.MinItems = &n
		if m.Kind == KindTuple {
			mx := n
			out.MaxItems = &mx
		}
		if m.Kind == KindTupleWithRest && m.Rest != nil {
			out.Items = projectSchema(*m.Rest)
		}
	case KindUnion, KindVariant:
		out.AnyOf = make([]*js.Schema, len(m.Inner))
		for i, inner := range m.Inner {
			out.AnyOf[i] = projectSchema(inner)
		}
	case KindIntersect:
		out.AllOf = make([]*js.Schema, len(m.Inner))
		for i, inner := range m.Inner {
			out.AllOf[i] = projectSchema(inner)
		}
	case KindPipe:
		// fold stage fragments left-to-right so later refinements layer
		// their constraints onto the base type
		for _, inner := range m.Inner {
			mergeFragment(out, projectSchema(inner))
		}
	case KindOptional, KindExactOptional, KindUndefinedable,
		KindNonNullable, KindNonNullish, KindNonOptional,
		KindRefine, KindTransform, KindCatch, KindCodec:
		// no native node: unwrap to the inner fragment
		if len(m.Inner) > 0 {
			out = projectSchema(m.Inner[0])
		}
	case KindNullable, KindNullish:
		if len(m.Inner) > 0 {
			out = withNull(projectSchema(m.Inner[0]))
		} else {
			out.Type = "null"
		}
	case KindDefault, KindFallback:
		if len(m.Inner) > 0 {
			out = projectSchema(m.Inner[0])
		}
	}
	applyConstraints(out, m.Constraints)
	applyAnnotations(out, m)
	return out
}

func projectObject(out *js.Schema, fields []NamedSchema, rest *AnySchema) {
	out.Type = "object"
	if len(fields) > 0 {
		out.Properties = make(map[string]*js.Schema, len(fields))
	}
	for _, f := range fields {
		out.Properties[f.Key] = projectSchema(f.Schema)
		if fm := f.Schema.Meta(); fm == nil || !optionalKinds[fm.Kind] {
			out.Required = append(out.Required, f.Key)
		}
	}
	if rest != nil {
		out.AdditionalProperties = projectSchema(*rest)
	}
}

// withNull merges a null member into a fragment: multi-type form when the
// fragment is a single named type, anyOf alternative otherwise.
func withNull(inner *js.Schema) *js.Schema {
	if inner.Type != "" && len(inner.AnyOf) == 0 && len(inner.AllOf) == 0 {
		t := inner.Type
		inner.Type = ""
		inner.Types = []string{t, "null"}
		return inner
	}
	return &js.Schema{AnyOf: []*js.Schema{inner, {Type: "null"}}}
}

// mergeFragment overlays src onto dst; scalar fields in src win, collections
// are replaced when set.
func mergeFragment(dst, src *js.Schema) {
	if src.Type != "" {
		dst.Type = src.Type
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Pattern != "" {
		dst.Pattern = src.Pattern
	}
	if src.MinLength != nil {
		dst.MinLength = src.MinLength
	}
	if src.MaxLength != nil {
		dst.MaxLength = src.MaxLength
	}
	if src.Minimum != nil {
		dst.Minimum = src.Minimum
	}
	if src.Maximum != nil {
		dst.Maximum = src.Maximum
	}
	if src.ExclusiveMinimum != nil {
		dst.ExclusiveMinimum = src.ExclusiveMinimum
	}
	if src.ExclusiveMaximum != nil {
		dst.ExclusiveMaximum = src.ExclusiveMaximum
	}
	if src.MultipleOf != nil {
		dst.MultipleOf = src.MultipleOf
	}
	if src.MinItems != nil {
		dst.MinItems = src.MinItems
	}
	if src.MaxItems != nil {
		dst.MaxItems = src.MaxItems
	}
	if src.Items != nil {
		dst.Items = src.Items
	}
	if src.Properties != nil {
		dst.Properties = src.Properties
	}
	if src.Required != nil {
		dst.Required = src.Required
	}
	if src.Enum != nil {
		dst.Enum = src.Enum
	}
	if src.Const != nil {
		dst.Const = src.Const
	}
	if src.AnyOf != nil {
		dst.AnyOf = src.AnyOf
	}
	if src.AllOf != nil {
		dst.AllOf = src.AllOf
	}
	for k, v := range src.Extra {
		if dst.Extra == nil {
			dst.Extra = map[string]any{}
		}
		dst.Extra[k] = v
	}
}

// applyConstraints copies constraint keys into the fragment: known keys map
// to dedicated fields, the rest go into Extra verbatim.
func applyConstraints(out *js.Schema, constraints map[string]any) {
	for k, v := range constraints {
		switch k {
		case "minLength":
			out.MinLength = intPtr(v)
		case "maxLength":
			out.MaxLength = intPtr(v)
		case "pattern":
			if s, ok := v.(string); ok {
				out.Pattern = s
			}
		case "format":
			if s, ok := v.(string); ok {
				out.Format = s
			}
		case "minimum":
			out.Minimum = floatPtr(v)
		case "maximum":
			out.Maximum = floatPtr(v)
		case "exclusiveMinimum":
			out.ExclusiveMinimum = floatPtr(v)
		case "exclusiveMaximum":
			out.ExclusiveMaximum = floatPtr(v)
		case "multipleOf":
			out.MultipleOf = floatPtr(v)
		case "minItems":
			out.MinItems = intPtr(v)
		case "maxItems":
			out.MaxItems = intPtr(v)
		case "uniqueItems":
			if b, ok := v.(bool); ok {
				out.UniqueItems = b
			}
		case "value", "values", "discriminator":
			// consumed by the kind cases above (or informational only)
		default:
			if out.Extra == nil {
				out.Extra = map[string]any{}
			}
			out.Extra[k] = v
		}
	}
}

func applyAnnotations(out *js.Schema, m *Metadata) {
	if m.Title != "" {
		out.Title = m.Title
	}
	if m.Description != "" {
		out.Description = m.Description
	}
	if len(m.Examples) > 0 {
		out.Examples = m.Examples
	}
	if m.HasDefault {
		out.Default = m.Default
	}
	if m.Deprecated {
		out.Deprecated = true
	}
	if m.ReadOnly {
		out.ReadOnly = true
	}
}

func literalType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64:
		return "integer"
	case float32, float64:
		return "number"
	case nil:
		return "null"
	default:
		return ""
	}
}

func intPtr(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	default:
		return nil
	}
}

func floatPtr(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}
