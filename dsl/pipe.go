package dsl

import (
	goval "github.com/reoring/goval"
)

// Pipe applies stages left to right, feeding each stage's output into the
// next. The first failing stage short-circuits and its error is returned
// verbatim: stage boundaries are not structural boundaries, so no path
// segment is added.
func Pipe(stages ...goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(stages))
	for i, s := range stages {
		checks[i] = s.CheckFunc()
	}
	return goval.New(func(v any) (any, error) {
		cur := v
		for _, check := range checks {
			out, err := check(cur)
			if err != nil {
				return nil, err
			}
			cur = out
		}
		return cur, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindPipe, Inner: stages})
}

// Into re-types an erased schema: validation is delegated unchanged and the
// output is asserted to T. A successful validation producing a non-T output
// is a composition bug and reports an invalid_type issue.
func Into[T any](s goval.AnySchema) goval.Schema[T] {
	check := s.CheckFunc()
	out := goval.New(func(v any) (T, error) {
		raw, err := check(v)
		if err != nil {
			var zero T
			return zero, err
		}
		t, ok := raw.(T)
		if !ok {
			var zero T
			return zero, typeIssue(raw, typeName(zero))
		}
		return t, nil
	})
	if m := s.Meta(); m != nil {
		out = out.WithMetadata(*m)
	}
	return out
}
