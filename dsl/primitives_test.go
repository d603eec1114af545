package dsl_test

import (
	"testing"

	goval "github.com/reoring/goval"
	"github.com/reoring/goval/dsl"
)

func TestPrimitives_Minimal(t *testing.T) {
	if v, err := dsl.String().Parse("hello"); err != nil || v != "hello" {
		t.Fatalf("string parse expected ok, got v=%v err=%v", v, err)
	}
	if _, err := dsl.String().Parse(1); err == nil || err.Error() != "Expected string" {
		t.Fatalf("expected 'Expected string', got %v", err)
	}

	if v, err := dsl.Bool().Parse(true); err != nil || v != true {
		t.Fatalf("bool parse expected ok, got v=%v err=%v", v, err)
	}
	if _, err := dsl.Bool().Parse("nope"); err == nil || err.Error() != "Expected boolean" {
		t.Fatalf("expected 'Expected boolean', got %v", err)
	}

	if v, err := dsl.Number().Parse(1.5); err != nil || v != 1.5 {
		t.Fatalf("number parse expected ok, got v=%v err=%v", v, err)
	}
	// ints widen (YAML and hand-built inputs)
	if v, err := dsl.Number().Parse(3); err != nil || v != 3.0 {
		t.Fatalf("number parse from int expected ok, got v=%v err=%v", v, err)
	}
	if _, err := dsl.Number().Parse("1.0"); err == nil || err.Error() != "Expected number" {
		t.Fatalf("expected 'Expected number', got %v", err)
	}

	if _, err := dsl.Integer().Parse(2.0); err != nil {
		t.Fatalf("integer parse expected ok, err=%v", err)
	}
	if _, err := dsl.Integer().Parse(2.5); err == nil {
		t.Fatalf("expected failure for fractional integer input")
	}

	if _, err := dsl.Null().Parse(nil); err != nil {
		t.Fatalf("null parse expected ok, err=%v", err)
	}
	if _, err := dsl.Null().Parse(0); err == nil {
		t.Fatalf("expected failure for non-null input")
	}

	if v, err := dsl.Unknown().Parse([]any{1}); err != nil || len(v.([]any)) != 1 {
		t.Fatalf("unknown should accept anything, got v=%v err=%v", v, err)
	}
}

func TestLiteralAndEnum(t *testing.T) {
	lit := dsl.Literal("on")
	if v, err := lit.Parse("on"); err != nil || v != "on" {
		t.Fatalf("literal parse expected ok, got v=%v err=%v", v, err)
	}
	if _, err := lit.Parse("off"); err == nil {
		t.Fatalf("expected literal mismatch failure")
	}

	e := dsl.Enum("a", "b")
	if v, err := e.Parse("b"); err != nil || v != "b" {
		t.Fatalf("enum parse expected ok, got v=%v err=%v", v, err)
	}
	if _, err := e.Parse("c"); err == nil || err.Error() != "Expected one of: a, b" {
		t.Fatalf("unexpected enum failure: %v", err)
	}
}

func TestConstraintLeaves(t *testing.T) {
	if _, err := dsl.NonEmpty().Parse(""); err == nil || err.Error() != "Required" {
		t.Fatalf("expected 'Required', got %v", err)
	}
	if v, err := dsl.NonEmpty().Parse("x"); err != nil || v != "x" {
		t.Fatalf("nonempty parse expected ok, got v=%v err=%v", v, err)
	}

	if _, err := dsl.MinLen(3).Parse("ab"); err == nil {
		t.Fatalf("expected too_short failure")
	}
	if _, err := dsl.MaxLen(2).Parse("abc"); err == nil {
		t.Fatalf("expected too_long failure")
	}
	if _, err := dsl.Pattern(`^[a-z]+$`).Parse("abc1"); err == nil {
		t.Fatalf("expected pattern failure")
	}
	if _, err := dsl.Min(1).Parse(0.5); err == nil {
		t.Fatalf("expected too_small failure")
	}
	if _, err := dsl.Max(1).Parse(1.5); err == nil {
		t.Fatalf("expected too_big failure")
	}
}

func TestConstraintLeaves_CarryMetadataConstraints(t *testing.T) {
	m := dsl.MinLen(3).Meta()
	if m == nil || m.Kind != goval.KindString || m.Constraints["minLength"] != 3 {
		t.Fatalf("unexpected metadata: %#v", m)
	}
}
