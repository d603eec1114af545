package dsl_test

import (
	"testing"

	"github.com/reoring/goval/dsl"
)

// Pipe reports the failing stage's error verbatim: stage boundaries add no
// path segments and no message prefixes.
func TestPipe_FlatErrors(t *testing.T) {
	s := dsl.Pipe(dsl.String().AsAny(), dsl.NonEmpty().AsAny(), dsl.MinLen(2).AsAny())

	if _, err := s.Parse(""); err == nil || err.Error() != "Required" {
		t.Fatalf("expected exactly 'Required', got %v", err)
	}
	if _, err := s.Parse(1); err == nil || err.Error() != "Expected string" {
		t.Fatalf("expected first stage error verbatim, got %v", err)
	}
	if v, err := s.Parse("ok"); err != nil || v != "ok" {
		t.Fatalf("pipe success expected, got v=%v err=%v", v, err)
	}
}

func TestPipe_FeedsOutputsForward(t *testing.T) {
	double := dsl.Transform(dsl.Number(), func(f float64) (float64, error) { return f * 2, nil })
	s := dsl.Pipe(double.AsAny(), dsl.Min(4).AsAny())

	if v, err := s.Parse(2.0); err != nil || v != 4.0 {
		t.Fatalf("expected transformed output to feed next stage, got v=%v err=%v", v, err)
	}
	if _, err := s.Parse(1.0); err == nil {
		t.Fatalf("expected constraint failure on transformed output")
	}
}

func TestInto_RetypesErasedSchema(t *testing.T) {
	s := dsl.Into[string](dsl.Pipe(dsl.String().AsAny(), dsl.NonEmpty().AsAny()))
	if v, err := s.Parse("x"); err != nil || v != "x" {
		t.Fatalf("expected typed success, got v=%v err=%v", v, err)
	}
	if _, err := s.Parse(1); err == nil {
		t.Fatalf("expected failure to pass through Into")
	}
}
