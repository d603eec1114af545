package dsl

import (
	goval "github.com/reoring/goval"
)

// Field pairs an object key with its schema. Declaration order is
// significant: fields validate in it, and the first failing field in
// declaration order is the one reported.
type Field struct {
	Key    string
	Schema goval.AnySchema
}

// F builds a Field.
func F(key string, s goval.AnySchema) Field { return Field{Key: key, Schema: s} }

// fieldEntry is a precomputed (key, check) pair. The shape is resolved once
// at construction so the per-call loop is a monomorphic iteration over
// captured funcs with no per-field dispatch decisions; this is the schema's
// performance contract, keep it when changing the loop.
type fieldEntry struct {
	key   string
	check func(any) (any, error)
}

func compileShape(fields []Field) []fieldEntry {
	entries := make([]fieldEntry, len(fields))
	for i, f := range fields {
		entries[i] = fieldEntry{key: f.Key, check: f.Schema.CheckFunc()}
	}
	return entries
}

func namedSchemas(fields []Field) []goval.NamedSchema {
	out := make([]goval.NamedSchema, len(fields))
	for i, f := range fields {
		out[i] = goval.NamedSchema{Key: f.Key, Schema: f.Schema}
	}
	return out
}

// objectCheck validates a non-array, non-null object against the shape.
// Absent keys reach their field schema as goval.Missing; fields must opt
// into absence themselves via Optional/ExactOptional/WithDefault. A field
// failure gains exactly the field-key path segment. keepUnknown selects
// passthrough semantics; the default strips unknown input keys.
func objectCheck(entries []fieldEntry, keepUnknown bool) func(any) (any, error) {
	return func(v any) (any, error) {
		m, ok := v.(map[string]any)
		if !ok || m == nil {
			return nil, typeIssue(v, "object")
		}
		var out map[string]any
		if keepUnknown {
			out = make(map[string]any, len(m))
			for k, raw := range m {
				out[k] = raw
			}
		} else {
			out = make(map[string]any, len(entries))
		}
		for i := range entries {
			e := &entries[i]
			fv, present := m[e.key]
			if !present {
				fv = goval.Missing
			}
			res, err := e.check(fv)
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.Key(e.key))
			}
			if goval.IsMissing(res) {
				delete(out, e.key)
				continue
			}
			out[e.key] = res
		}
		return out, nil
	}
}

// Object validates an object against the shape with strip semantics: unknown
// input keys are dropped from the output.
func Object(fields ...Field) goval.AnySchema {
	return goval.New(objectCheck(compileShape(fields), false)).
		WithMetadata(goval.Metadata{Kind: goval.KindObject, Fields: namedSchemas(fields)})
}

// Passthrough is Object with unknown input keys preserved in the output.
func Passthrough(fields ...Field) goval.AnySchema {
	return goval.New(objectCheck(compileShape(fields), true)).
		WithMetadata(goval.Metadata{Kind: goval.KindLooseObject, Fields: namedSchemas(fields)})
}

// Strict is an alias for the default stripping Object.
func Strict(fields ...Field) goval.AnySchema { return Object(fields...) }

// Strip is an alias for the default stripping Object.
func Strip(fields ...Field) goval.AnySchema { return Object(fields...) }

// LooseObject validates known keys and copies every unknown input key
// through verbatim.
func LooseObject(fields ...Field) goval.AnySchema {
	return Passthrough(fields...)
}
