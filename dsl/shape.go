package dsl

import (
	"strings"

	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

// Shape is an ordered field list. The utilities below are pure structural
// operations: they build new shapes and never touch validation behavior.
type Shape []Field

// Keys returns the field keys in declaration order.
func (sh Shape) Keys() []string {
	out := make([]string, len(sh))
	for i, f := range sh {
		out[i] = f.Key
	}
	return out
}

// Pick keeps only the named fields, preserving declaration order.
func (sh Shape) Pick(keys ...string) Shape {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	out := make(Shape, 0, len(keys))
	for _, f := range sh {
		if _, ok := want[f.Key]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Omit drops the named fields, preserving declaration order.
func (sh Shape) Omit(keys ...string) Shape {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(Shape, 0, len(sh))
	for _, f := range sh {
		if _, ok := drop[f.Key]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// Extend appends fields; a field rebinding an existing key replaces it in
// place, keeping the original position.
func (sh Shape) Extend(fields ...Field) Shape {
	out := make(Shape, len(sh), len(sh)+len(fields))
	copy(out, sh)
	for _, f := range fields {
		replaced := false
		for i := range out {
			if out[i].Key == f.Key {
				out[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, f)
		}
	}
	return out
}

// Merge is Extend over another shape: other's fields win on key conflict.
func (sh Shape) Merge(other Shape) Shape {
	return sh.Extend(other...)
}

// KeyOf returns a schema accepting only the literal key strings of the
// shape.
func KeyOf(sh Shape) goval.Schema[string] {
	keys := sh.Keys()
	set := make(map[string]struct{}, len(keys))
	anyKeys := make([]any, len(keys))
	for i, k := range keys {
		set[k] = struct{}{}
		anyKeys[i] = k
	}
	msg := i18n.T(goval.CodeInvalidEnum, map[string]string{"values": strings.Join(keys, ", ")})
	return goval.New(func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", typeIssue(v, "string")
		}
		if _, ok := set[s]; !ok {
			return "", goval.Issues{{Code: goval.CodeInvalidEnum, Message: msg, Input: v}}
		}
		return s, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindKeyOf,
		Constraints: map[string]any{"values": anyKeys},
	})
}
