package dsl_test

import (
	"reflect"
	"testing"

	"github.com/reoring/goval/dsl"
)

func baseShape() dsl.Shape {
	return dsl.Shape{
		dsl.F("id", dsl.String().AsAny()),
		dsl.F("name", dsl.String().AsAny()),
		dsl.F("age", dsl.Number().AsAny()),
	}
}

func TestShape_PickOmitPreserveOrder(t *testing.T) {
	sh := baseShape()

	if got := sh.Pick("age", "id").Keys(); !reflect.DeepEqual(got, []string{"id", "age"}) {
		t.Fatalf("pick must preserve declaration order, got %v", got)
	}
	if got := sh.Omit("name").Keys(); !reflect.DeepEqual(got, []string{"id", "age"}) {
		t.Fatalf("omit must preserve declaration order, got %v", got)
	}
	// originals untouched
	if got := sh.Keys(); !reflect.DeepEqual(got, []string{"id", "name", "age"}) {
		t.Fatalf("source shape mutated: %v", got)
	}
}

func TestShape_ExtendAndMerge(t *testing.T) {
	sh := baseShape()

	ext := sh.Extend(dsl.F("email", dsl.String().AsAny()))
	if got := ext.Keys(); !reflect.DeepEqual(got, []string{"id", "name", "age", "email"}) {
		t.Fatalf("unexpected extend result: %v", got)
	}

	// rebinding an existing key keeps its position
	reb := sh.Extend(dsl.F("name", dsl.NonEmpty().AsAny()))
	if got := reb.Keys(); !reflect.DeepEqual(got, []string{"id", "name", "age"}) {
		t.Fatalf("rebind must keep position: %v", got)
	}
	if _, err := dsl.Object(reb...).Parse(map[string]any{"id": "1", "name": "", "age": 2.0}); err == nil {
		t.Fatalf("rebound field schema should be in effect")
	}

	merged := sh.Merge(dsl.Shape{dsl.F("name", dsl.NonEmpty().AsAny()), dsl.F("tag", dsl.String().AsAny())})
	if got := merged.Keys(); !reflect.DeepEqual(got, []string{"id", "name", "age", "tag"}) {
		t.Fatalf("unexpected merge result: %v", got)
	}
}

func TestKeyOf_AcceptsOnlyShapeKeys(t *testing.T) {
	k := dsl.KeyOf(baseShape())
	if v, err := k.Parse("name"); err != nil || v != "name" {
		t.Fatalf("expected key acceptance, got v=%v err=%v", v, err)
	}
	if _, err := k.Parse("email"); err == nil || err.Error() != "Expected one of: id, name, age" {
		t.Fatalf("unexpected rejection message: %v", err)
	}
	if _, err := k.Parse(1); err == nil {
		t.Fatalf("non-strings must be rejected")
	}
}
