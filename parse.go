package goval

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes data as JSON and validates the result against s. Decode
// failures surface as a single parse_error issue at the root.
func ParseJSON[T any](s Schema[T], data []byte) (T, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, Issues{{Code: CodeParseError, Message: err.Error()}}
	}
	return s.Parse(v)
}

// ParseYAML decodes data as YAML and validates the result against s. Mapping
// keys are normalized to strings so object schemas see map[string]any.
func ParseYAML[T any](s Schema[T], data []byte) (T, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, Issues{{Code: CodeParseError, Message: err.Error()}}
	}
	return s.Parse(normalizeYAML(v))
}

// normalizeYAML rewrites yaml.v3 output into the JSON-shaped value space:
// map[string]any for mappings, []any for sequences. Non-string mapping keys
// are stringified via their YAML representation.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeYAML(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				b, err := yaml.Marshal(k)
				if err != nil {
					continue
				}
				ks = string(b)
				if n := len(ks); n > 0 && ks[n-1] == '\n' {
					ks = ks[:n-1]
				}
			}
			out[ks] = normalizeYAML(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	default:
		return v
	}
}
