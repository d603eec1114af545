package dsl_test

import (
	"testing"

	"github.com/reoring/goval/dsl"
)

func TestIntersect_ShallowMergesObjects(t *testing.T) {
	a := dsl.Passthrough(dsl.F("x", dsl.Number().AsAny()))
	b := dsl.Passthrough(dsl.F("y", dsl.String().AsAny()))
	s := dsl.Intersect(a, b)

	v, err := s.Parse(map[string]any{"x": 1.0, "y": "two"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	if m["x"] != 1.0 || m["y"] != "two" {
		t.Fatalf("unexpected merge: %#v", m)
	}
}

func TestIntersect_LaterKeysWinOnConflict(t *testing.T) {
	low := dsl.Object(dsl.F("n", dsl.Number().AsAny()))
	doubled := dsl.Transform(dsl.Into[map[string]any](dsl.Object(dsl.F("n", dsl.Number().AsAny()))),
		func(m map[string]any) (map[string]any, error) {
			return map[string]any{"n": m["n"].(float64) * 2}, nil
		})
	s := dsl.Intersect(low, doubled.AsAny())

	v, err := s.Parse(map[string]any{"n": 3.0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.(map[string]any)["n"] != 6.0 {
		t.Fatalf("later schema's keys should win, got %#v", v)
	}
}

func TestIntersect_NonObjectResultReplaces(t *testing.T) {
	s := dsl.Intersect(dsl.Number().AsAny(), dsl.Min(1).AsAny())
	if v, err := s.Parse(2.0); err != nil || v != 2.0 {
		t.Fatalf("last non-object result should win, got v=%v err=%v", v, err)
	}
}

func TestIntersect_FirstFailureVerbatim(t *testing.T) {
	s := dsl.Intersect(dsl.Number().AsAny(), dsl.Min(10).AsAny())
	_, err := s.Parse(5.0)
	if err == nil || err.Error() != "Expected value >= 10" {
		t.Fatalf("expected the failing schema's error with no prefix, got %v", err)
	}
}
