package dsl

import (
	"sort"

	json "github.com/goccy/go-json"
	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

// Partial accepts any non-array object: when the inner schema succeeds its
// value is returned, otherwise the raw object passes through unchecked.
// Partial does not rewrite the shape to make fields optional; it only
// suppresses the inner schema's failure.
func Partial(s goval.AnySchema) goval.AnySchema {
	check := s.CheckFunc()
	return goval.New(func(v any) (any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeIssue(v, "object")
		}
		out, err := check(m)
		if err != nil {
			return m, nil
		}
		return out, nil
	}).WithMetadata(goval.Metadata{
		Kind:   goval.KindPartial,
		Inner:  []goval.AnySchema{s},
		Fields: shapeOf(s),
	})
}

// Required runs the inner (assumed-partial) schema and then rejects when any
// declared field is absent from the result, reporting "<key>: Required" for
// the first offending key. Declared keys come from the inner schema's shape
// metadata; without shape metadata, result entries that are absent or null
// are checked in sorted key order instead.
func Required(s goval.AnySchema) goval.AnySchema {
	check := s.CheckFunc()
	shape := shapeOf(s)
	msg := i18n.T(goval.CodeRequired, nil)
	return goval.New(func(v any) (any, error) {
		out, err := check(v)
		if err != nil {
			return nil, err
		}
		m, ok := out.(map[string]any)
		if !ok {
			return out, nil
		}
		if len(shape) > 0 {
			for _, f := range shape {
				if _, present := m[f.Key]; !present {
					return nil, goval.Issues{{
						Code:    goval.CodeRequired,
						Message: msg,
						Path:    []goval.Segment{goval.Key(f.Key)},
					}}
				}
			}
			return m, nil
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if e := m[k]; e == nil || goval.IsMissing(e) {
				return nil, goval.Issues{{
					Code:    goval.CodeRequired,
					Message: msg,
					Path:    []goval.Segment{goval.Key(k)},
				}}
			}
		}
		return m, nil
	}).WithMetadata(goval.Metadata{
		Kind:   goval.KindRequired,
		Inner:  []goval.AnySchema{s},
		Fields: shapeOf(s),
	})
}

// shapeOf walks wrapper metadata down to the first object shape.
func shapeOf(s goval.AnySchema) []goval.NamedSchema {
	m := s.Meta()
	for m != nil {
		if len(m.Fields) > 0 {
			return m.Fields
		}
		if len(m.Inner) == 0 {
			return nil
		}
		m = m.Inner[0].Meta()
	}
	return nil
}

// ObjectWithRest validates known keys against the shape and every other
// input key against rest; either side reports the offending key.
func ObjectWithRest(fields []Field, rest goval.AnySchema) goval.AnySchema {
	entries := compileShape(fields)
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.Key] = struct{}{}
	}
	restCheck := rest.CheckFunc()
	return goval.New(func(v any) (any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeIssue(v, "object")
		}
		out := make(map[string]any, len(m))
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
				continue
			}
			out[e.key] = res
		}
		// rest keys in sorted order so the first reported failure is
		// deterministic
		restKeys := make([]string, 0, len(m))
		for k := range m {
			if _, isKnown := known[k]; !isKnown {
				restKeys = append(restKeys, k)
			}
		}
		sort.Strings(restKeys)
		for _, k := range restKeys {
			res, err := restCheck(m[k])
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.Key(k))
			}
			out[k] = res
		}
		return out, nil
	}).WithMetadata(goval.Metadata{
		Kind:   goval.KindObjectWithRest,
		Fields: namedSchemas(fields),
		Rest:   &rest,
	})
}

// Variant requires a non-array object and tries the schemas in declaration
// order, first match wins. The discriminator key only shapes the failure
// message, it does not drive dispatch. The no-match message embeds the
// JSON-encoded discriminant value.
func Variant(key string, schemas []goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(schemas))
	for i, s := range schemas {
		checks[i] = s.CheckFunc()
	}
	return goval.New(func(v any) (any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeIssue(v, "object")
		}
		for _, check := range checks {
			out, err := check(m)
			if err == nil {
				return out, nil
			}
		}
		return nil, goval.Issues{{
			Code:    goval.CodeVariantNoMatch,
			Message: i18n.T(goval.CodeVariantNoMatch, map[string]string{"key": key, "value": renderDiscriminant(m, key)}),
			Input:   v,
		}}
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindVariant,
		Inner:       schemas,
		Constraints: map[string]any{"discriminator": key},
	})
}

// renderDiscriminant JSON-encodes the discriminator value for the failure
// message; an absent key renders as "undefined".
func renderDiscriminant(m map[string]any, key string) string {
	dv, present := m[key]
	if !present {
		return "undefined"
	}
	b, err := json.Marshal(dv)
	if err != nil {
		return "undefined"
	}
	return string(b)
}
