package dsl

import (
	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

// Union tries each alternative in declaration order; the first success wins.
// When none succeed the failure is a single fixed message; individual branch
// errors are discarded.
func Union(alts ...goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(alts))
	for i, s := range alts {
		checks[i] = s.CheckFunc()
	}
	msg := i18n.T(goval.CodeUnionNoMatch, nil)
	return goval.New(func(v any) (any, error) {
		for _, check := range checks {
			out, err := check(v)
			if err == nil {
				return out, nil
			}
		}
		return nil, goval.Issues{{Code: goval.CodeUnionNoMatch, Message: msg, Input: v}}
	}).WithMetadata(goval.Metadata{Kind: goval.KindUnion, Inner: alts})
}

// DiscriminatedUnion requires the input to be a non-array object, then tries
// the alternatives in the same first-match-wins order as Union. The
// discriminator key is recorded in metadata only; dispatch is the object
// precheck plus the linear scan.
func DiscriminatedUnion(key string, alts []goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(alts))
	for i, s := range alts {
		checks[i] = s.CheckFunc()
	}
	msg := i18n.T(goval.CodeUnionNoMatch, nil)
	return goval.New(func(v any) (any, error) {
		if _, ok := v.(map[string]any); !ok {
			return nil, typeIssue(v, "object")
		}
		for _, check := range checks {
			out, err := check(v)
			if err == nil {
				return out, nil
			}
		}
		return nil, goval.Issues{{Code: goval.CodeUnionNoMatch, Message: msg, Input: v}}
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindUnion,
		Inner:       alts,
		Constraints: map[string]any{"discriminator": key},
	})
}
