package dsl

import (
	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

// wrapper kinds short-circuit on their sentinel and otherwise delegate. They
// wrap the inner schema's metadata rather than discarding it, so projection
// and introspection can still see the inner shape.

func shortCircuit(s goval.AnySchema, kind goval.Kind, pass func(any) bool) goval.AnySchema {
	check := s.CheckFunc()
	return goval.New(func(v any) (any, error) {
		if pass(v) {
			return v, nil
		}
		return check(v)
	}).WithMetadata(goval.Metadata{Kind: kind, Inner: []goval.AnySchema{s}})
}

// Optional passes the absence sentinel (goval.Missing) through untouched and
// delegates everything else, explicit null included.
func Optional(s goval.AnySchema) goval.AnySchema {
	return shortCircuit(s, goval.KindOptional, goval.IsMissing)
}

// ExactOptional is Optional for containers that distinguish a key being
// absent from a key holding undefined. Map-backed objects cannot represent
// the latter, so it short-circuits on the same sentinel as Optional; it keeps
// its own metadata kind.
func ExactOptional(s goval.AnySchema) goval.AnySchema {
	return shortCircuit(s, goval.KindExactOptional, goval.IsMissing)
}

// Undefinedable passes the absence sentinel through and delegates otherwise.
func Undefinedable(s goval.AnySchema) goval.AnySchema {
	return shortCircuit(s, goval.KindUndefinedable, goval.IsMissing)
}

// Nullable passes explicit null through untouched and delegates otherwise.
func Nullable(s goval.AnySchema) goval.AnySchema {
	return shortCircuit(s, goval.KindNullable, func(v any) bool { return v == nil })
}

// Nullish passes both null and the absence sentinel through.
func Nullish(s goval.AnySchema) goval.AnySchema {
	return shortCircuit(s, goval.KindNullish, func(v any) bool { return v == nil || goval.IsMissing(v) })
}

// WithDefault substitutes def only when the input is absent; any other
// input, valid or not, is delegated and failures still propagate. Contrast
// Fallback, which swallows failures.
func WithDefault(s goval.AnySchema, def any) goval.AnySchema {
	check := s.CheckFunc()
	return goval.New(func(v any) (any, error) {
		if goval.IsMissing(v) {
			return def, nil
		}
		return check(v)
	}).WithMetadata(goval.Metadata{
		Kind:       goval.KindDefault,
		Inner:      []goval.AnySchema{s},
		Default:    def,
		HasDefault: true,
	})
}

// Fallback substitutes def on any validation failure of the wrapped schema;
// successes propagate unchanged. Contrast WithDefault, which only fills in
// for absent input.
func Fallback(s goval.AnySchema, def any) goval.AnySchema {
	check := s.CheckFunc()
	return goval.New(func(v any) (any, error) {
		out, err := check(v)
		if err != nil {
			return def, nil
		}
		return out, nil
	}).WithMetadata(goval.Metadata{
		Kind:       goval.KindFallback,
		Inner:      []goval.AnySchema{s},
		Default:    def,
		HasDefault: true,
	})
}

func rejectResult(s goval.AnySchema, kind goval.Kind, code string, bad func(any) bool) goval.AnySchema {
	check := s.CheckFunc()
	msg := i18n.T(code, nil)
	return goval.New(func(v any) (any, error) {
		out, err := check(v)
		if err != nil {
			return nil, err
		}
		if bad(out) {
			return nil, goval.Issues{{Code: code, Message: msg, Input: v}}
		}
		return out, nil
	}).WithMetadata(goval.Metadata{Kind: kind, Inner: []goval.AnySchema{s}})
}

// NonNullable inverts a nullable wrapper: the inner schema runs first, then
// a null result is rejected with a fixed message regardless of what the
// inner schema would say about null itself.
func NonNullable(s goval.AnySchema) goval.AnySchema {
	return rejectResult(s, goval.KindNonNullable, goval.CodeNotNull,
		func(out any) bool { return out == nil })
}

// NonOptional rejects an absent result with a fixed message.
func NonOptional(s goval.AnySchema) goval.AnySchema {
	return rejectResult(s, goval.KindNonOptional, goval.CodeNotUndefined, goval.IsMissing)
}

// NonNullish rejects both null and absent results with a fixed message.
func NonNullish(s goval.AnySchema) goval.AnySchema {
	return rejectResult(s, goval.KindNonNullish, goval.CodeNotNullish,
		func(out any) bool { return out == nil || goval.IsMissing(out) })
}
