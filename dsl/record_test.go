package dsl_test

import (
	"testing"

	"github.com/reoring/goval/dsl"
)

func TestRecord_ValidatesKeysAndValues(t *testing.T) {
	s := dsl.Record(dsl.Pattern(`^[a-z]+$`), dsl.Number().AsAny())

	v, err := s.Parse(map[string]any{"one": 1.0, "two": 2.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	if m["one"] != 1.0 || m["two"] != 2.0 {
		t.Fatalf("unexpected value: %#v", m)
	}

	if _, err := s.Parse("nope"); err == nil || err.Error() != "Expected object" {
		t.Fatalf("expected 'Expected object', got %v", err)
	}

	_, err = s.Parse(map[string]any{"BAD": 1.0})
	if err == nil || err.Error() != "Invalid key: Invalid format" {
		t.Fatalf("unexpected key failure: %v", err)
	}

	_, err = s.Parse(map[string]any{"ok": "x"})
	if err == nil || err.Error() != "[ok]: Expected number" {
		t.Fatalf("unexpected value failure: %v", err)
	}
}

func TestRecord_DeterministicFirstFailure(t *testing.T) {
	s := dsl.Record(dsl.String(), dsl.Number().AsAny())
	// both values invalid; sorted key order makes "a" the reported one
	_, err := s.Parse(map[string]any{"b": "x", "a": "y"})
	if err == nil || err.Error() != "[a]: Expected number" {
		t.Fatalf("expected deterministic first failure, got %v", err)
	}
}

func TestRecord_KeySchemaMayTransform(t *testing.T) {
	upper := dsl.Transform(dsl.String(), func(s string) (string, error) {
		out := make([]rune, 0, len(s))
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out = append(out, r)
		}
		return string(out), nil
	})
	s := dsl.Record(upper, dsl.Number().AsAny())
	v, err := s.Parse(map[string]any{"key": 1.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.(map[string]any)["KEY"] != 1.0 {
		t.Fatalf("key transform should name the output entry: %#v", v)
	}
}
