package dsl

import (
	"sort"

	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

// Record validates a homogeneous string-keyed object: every key against
// keySchema (failure reads "Invalid key: <message>") and every value against
// valueSchema (failure reads "[key]: <message>"). Keys are visited in sorted
// order so the first reported failure is deterministic. The key schema may
// transform keys; its output names the entry in the result.
func Record(keySchema goval.Schema[string], valueSchema goval.AnySchema) goval.AnySchema {
	keyCheck := keySchema.CheckFunc()
	valCheck := valueSchema.CheckFunc()
	keyAny := keySchema.AsAny()
	return goval.New(func(v any) (any, error) {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeIssue(v, "object")
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(m))
		for _, k := range keys {
			kout, err := keyCheck(k)
			if err != nil {
				return nil, goval.Issues{{
					Code:    goval.CodeInvalidKey,
					Message: i18n.T(goval.CodeInvalidKey, map[string]string{"message": flatOf(err)}),
					Input:   k,
				}}
			}
			res, err := valCheck(m[k])
			if err != nil {
				return nil, goval.PrefixIssues(err, goval.RecordKey(k))
			}
			out[kout] = res
		}
		return out, nil
	}).WithMetadata(goval.Metadata{
		Kind:      goval.KindRecord,
		KeySchema: &keyAny,
		Rest:      &valueSchema,
	})
}

// flatOf renders an error's single-line form for message embedding.
func flatOf(err error) string {
	if iss, ok := goval.AsIssues(err); ok {
		return iss.Error()
	}
	return err.Error()
}
