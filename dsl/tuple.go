package dsl

import (
	"strconv"

	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

func lengthIssue(code string, want, got int) goval.Issues {
	return goval.Issues{{
		Code: goval.CodeInvalidLength,
		Message: i18n.T(code, map[string]string{
			"want": strconv.Itoa(want),
			"got":  strconv.Itoa(got),
		}),
	}}
}

// Tuple validates a fixed-length array positionally. A length mismatch fails
// with "Expected N items, got M" before any element is validated.
func Tuple(items ...goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(items))
	for i, s := range items {
		checks[i] = s.CheckFunc()
	}
	return goval.New(func(v any) (any, error) {
		src, ok := v.([]any)
		if !ok {
			return nil, typeIssue(v, "array")
		}
		if len(src) != len(checks) {
			return nil, lengthIssue("invalid_length", len(checks), len(src))
		}
		out := make([]any, len(src))
		for i, check := range checks {
			res, err := check(src[i])
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.Index(i))
			}
			out[i] = res
		}
		return out, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindTuple, Inner: items})
}

// LooseTuple validates the declared positions and passes any extra items
// through verbatim. Arrays shorter than the declared length fail with
// "Expected at least N items, got M" before any element is validated.
func LooseTuple(items ...goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(items))
	for i, s := range items {
		checks[i] = s.CheckFunc()
	}
	return goval.New(func(v any) (any, error) {
		src, ok := v.([]any)
		if !ok {
			return nil, typeIssue(v, "array")
		}
		if len(src) < len(checks) {
			return nil, lengthIssue("invalid_length_min", len(checks), len(src))
		}
		out := make([]any, len(src))
		for i, check := range checks {
			res, err := check(src[i])
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.Index(i))
			}
			out[i] = res
		}
		copy(out[len(checks):], src[len(checks):])
		return out, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindLooseTuple, Inner: items})
}

// TupleWithRest validates the declared positions and every extra item
// against rest. Arrays shorter than the declared length fail with
// "Expected at least N items, got M" before any element is validated.
func TupleWithRest(items []goval.AnySchema, rest goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(items))
	for i, s := range items {
		checks[i] = s.CheckFunc()
	}
	restCheck := rest.CheckFunc()
	return goval.New(func(v any) (any, error) {
		src, ok := v.([]any)
		if !ok {
			return nil, typeIssue(v, "array")
		}
		if len(src) < len(checks) {
			return nil, lengthIssue("invalid_length_min", len(checks), len(src))
		}
		out := make([]any, len(src))
		for i, check := range checks {
			res, err := check(src[i])
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.Index(i))
			}
			out[i] = res
		}
		for i := len(checks); i < len(src); i++ {
			res, err := restCheck(src[i])
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.Index(i))
			}
			out[i] = res
		}
		return out, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindTupleWithRest, Inner: items, Rest: &rest})
}
