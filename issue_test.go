package goval_test

import (
	"errors"
	"testing"

	goval "github.com/reoring/goval"
)

func TestIssue_FlatMessage_PrefixChain(t *testing.T) {
	it := goval.Issue{
		Message: "Expected number",
		Path:    []goval.Segment{goval.Key("a"), goval.Key("b")},
	}
	if got := it.FlatMessage(); got != "a: b: Expected number" {
		t.Fatalf("unexpected flat message: %q", got)
	}

	it = goval.Issue{
		Message: "Expected number",
		Path:    []goval.Segment{goval.Index(1), goval.Index(1)},
	}
	if got := it.FlatMessage(); got != "[1]: [1]: Expected number" {
		t.Fatalf("unexpected flat message: %q", got)
	}

	it = goval.Issue{
		Message: "Expected string",
		Path:    []goval.Segment{goval.Key("env"), goval.RecordKey("HOME")},
	}
	if got := it.FlatMessage(); got != "env: [HOME]: Expected string" {
		t.Fatalf("unexpected flat message: %q", got)
	}
}

func TestIssue_PathString_IndexBindsWithoutDot(t *testing.T) {
	it := goval.Issue{
		Message: "Expected number",
		Path:    []goval.Segment{goval.Key("a"), goval.Index(1), goval.Key("b")},
	}
	if got := it.PathString(); got != "a[1].b" {
		t.Fatalf("unexpected path string: %q", got)
	}

	it = goval.Issue{Message: "x", Path: []goval.Segment{goval.Index(0), goval.Index(2)}}
	if got := it.PathString(); got != "[0][2]" {
		t.Fatalf("unexpected path string: %q", got)
	}

	if got := (goval.Issue{Message: "x"}).PathString(); got != "" {
		t.Fatalf("root path should render empty, got %q", got)
	}
}

func TestIssues_Error_SingleAndSummary(t *testing.T) {
	one := goval.Issues{{Message: "Expected number", Path: []goval.Segment{goval.Key("n")}}}
	if got := one.Error(); got != "n: Expected number" {
		t.Fatalf("unexpected single message: %q", got)
	}

	many := goval.Issues{{Message: "a"}, {Message: "b"}, {Message: "c"}}
	if got := many.Error(); got != "3 validation issues" {
		t.Fatalf("unexpected summary: %q", got)
	}

	if got := (goval.Issues{}).Error(); got != "" {
		t.Fatalf("empty Issues should render empty, got %q", got)
	}
}

func TestIssues_FormatAndFlatten(t *testing.T) {
	iss := goval.Issues{
		{Message: "Expected number", Path: []goval.Segment{goval.Key("a"), goval.Index(0)}},
		{Message: "Required"},
	}
	want := "a[0]: Expected number\nRequired"
	if got := iss.Format(); got != want {
		t.Fatalf("unexpected format:\n%q\nwant\n%q", got, want)
	}

	flat := iss.Flatten()
	if msgs := flat["a[0]"]; len(msgs) != 1 || msgs[0] != "Expected number" {
		t.Fatalf("unexpected flatten entry: %#v", flat)
	}
	if msgs := flat[""]; len(msgs) != 1 || msgs[0] != "Required" {
		t.Fatalf("unexpected root flatten entry: %#v", flat)
	}
}

func TestPrefixIssues_WrapsForeignErrors(t *testing.T) {
	iss := goval.PrefixIssues(errors.New("boom"), goval.Key("f"))
	if len(iss) != 1 || iss[0].Code != goval.CodeParseError {
		t.Fatalf("expected single parse_error issue, got %#v", iss)
	}
	if got := iss.Error(); got != "f: boom" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestAsIssues_RoundTrip(t *testing.T) {
	var err error = goval.Issues{{Message: "x"}}
	iss, ok := goval.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected to extract Issues, got %v %v", iss, ok)
	}
	if _, ok := goval.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not extract as Issues")
	}
	if _, ok := goval.AsIssues(nil); ok {
		t.Fatalf("nil error must not extract as Issues")
	}
}
