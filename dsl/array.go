package dsl

import (
	goval "github.com/reoring/goval"
)

// Array validates every element of an array against elem, prefixing the
// failing element's index to its error. Paths build incrementally, so nested
// arrays report multi-segment paths like [1][1].
func Array(elem goval.AnySchema) goval.AnySchema {
	check := elem.CheckFunc()
	return goval.New(func(v any) (any, error) {
		src, ok := v.([]any)
		if !ok {
			return nil, typeIssue(v, "array")
		}
		out := make([]any, len(src))
		for i := range src {
			res, err := check(src[i])
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.Index(i))
			}
			out[i] = res
		}
		return out, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindArray, Inner: []goval.AnySchema{elem}})
}
