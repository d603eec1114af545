package goval_test

import (
	"testing"

	goval "github.com/reoring/goval"
	"github.com/reoring/goval/dsl"
)

func TestSchema_DualPathEquivalence(t *testing.T) {
	schemas := map[string]goval.AnySchema{
		"string": dsl.String().AsAny(),
		"number": dsl.Number().AsAny(),
		"object": dsl.Object(dsl.F("a", dsl.Number().AsAny())),
		"union":  dsl.Union(dsl.String().AsAny(), dsl.Number().AsAny()),
	}
	inputs := []any{"x", 1.5, true, nil, map[string]any{"a": 1.0}, map[string]any{"a": "no"}, []any{1.0}}

	for name, s := range schemas {
		for _, in := range inputs {
			out, err := s.Parse(in)
			res := s.Safe(in)
			if (err != nil) == res.OK {
				t.Fatalf("%s(%v): safe/throwing disagree: err=%v ok=%v", name, in, err, res.OK)
			}
			if err != nil {
				if res.Err != err.Error() {
					t.Fatalf("%s(%v): message mismatch: %q vs %q", name, in, res.Err, err.Error())
				}
				continue
			}
			switch want := out.(type) {
			case map[string]any:
				got, ok := res.Value.(map[string]any)
				if !ok || len(got) != len(want) {
					t.Fatalf("%s(%v): value mismatch: %#v vs %#v", name, in, res.Value, out)
				}
			default:
				if res.Value != out {
					t.Fatalf("%s(%v): value mismatch: %#v vs %#v", name, in, res.Value, out)
				}
			}
		}
	}
}

func TestNewSafe_PrefersHandWrittenSafe(t *testing.T) {
	calls := 0
	s := goval.NewSafe(
		func(v any) (string, error) {
			if str, ok := v.(string); ok {
				return str, nil
			}
			return "", goval.Issues{{Message: "Expected string"}}
		},
		func(v any) goval.Result[string] {
			calls++
			if str, ok := v.(string); ok {
				return goval.Ok(str)
			}
			return goval.Fail[string]("Expected string")
		},
	)
	if res := s.Safe("hi"); !res.OK || res.Value != "hi" {
		t.Fatalf("unexpected safe result: %#v", res)
	}
	if res := s.Safe(1); res.OK || res.Err != "Expected string" {
		t.Fatalf("unexpected safe failure: %#v", res)
	}
	if calls != 2 {
		t.Fatalf("hand-written safe not used, calls=%d", calls)
	}
}

func TestSchema_MustParse_PanicsWithIssues(t *testing.T) {
	s := dsl.Number()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value should be an error, got %T", r)
		}
		if _, ok := goval.AsIssues(err); !ok {
			t.Fatalf("panic error should carry Issues, got %v", err)
		}
	}()
	s.MustParse("nope")
}

func TestSchema_Safe_NormalizesPanics(t *testing.T) {
	erring := goval.New(func(v any) (any, error) {
		panic("not an error value")
	})
	res := erring.Safe(1)
	if res.OK || res.Err != "Unknown error" {
		t.Fatalf("expected normalized 'Unknown error', got %#v", res)
	}

	st := erring.Standard()
	sr := st.Validate(1)
	if len(sr.Issues) != 1 || sr.Issues[0].Message != "Unknown error" {
		t.Fatalf("standard adapter should normalize panics, got %#v", sr)
	}
}

func TestSchema_IsImmutableUnderComposition(t *testing.T) {
	leaf := dsl.Number().AsAny()
	_ = dsl.Optional(leaf)
	_ = dsl.Pipe(leaf, leaf)
	_ = dsl.Object(dsl.F("a", leaf), dsl.F("b", leaf))

	// the shared leaf still behaves as before
	if _, err := leaf.Parse(2.0); err != nil {
		t.Fatalf("leaf changed after composition: %v", err)
	}
	if m := leaf.Meta(); m == nil || m.Kind != goval.KindNumber {
		t.Fatalf("leaf metadata changed after composition: %#v", m)
	}
}

func TestIs(t *testing.T) {
	if !goval.Is(dsl.String(), "x") {
		t.Fatalf("expected conformance")
	}
	if goval.Is(dsl.String(), 1) {
		t.Fatalf("expected non-conformance")
	}
}
