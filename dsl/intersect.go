package dsl

import (
	goval "github.com/reoring/goval"
)

// Intersect runs every schema against the same input and folds the outputs
// left to right: two plain-object results shallow-merge (the later schema's
// keys win on conflict), any other result replaces the accumulator. The
// first failing schema short-circuits and its error is reported verbatim,
// with no path prefix.
func Intersect(schemas ...goval.AnySchema) goval.AnySchema {
	checks := make([]func(any) (any, error), len(schemas))
	for i, s := range schemas {
		checks[i] = s.CheckFunc()
	}
	return goval.New(func(v any) (any, error) {
		var acc any
		for i, check := range checks {
			out, err := check(v)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				acc = out
				continue
			}
			accMap, accOK := acc.(map[string]any)
			outMap, outOK := out.(map[string]any)
			if accOK && outOK {
				merged := make(map[string]any, len(accMap)+len(outMap))
				for k, e := range accMap {
					merged[k] = e
				}
				for k, e := range outMap {
					merged[k] = e
				}
				acc = merged
				continue
			}
			acc = out
		}
		return acc, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindIntersect, Inner: schemas})
}
