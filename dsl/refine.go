package dsl

import (
	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

// Refine runs the schema and then applies pred to its output, rejecting with
// a fixed message when the predicate returns false. The message is the
// caller's (or "Validation failed"), never derived from the inner schema.
func Refine[T any](s goval.Schema[T], pred func(T) bool, message ...string) goval.Schema[T] {
	check := s.CheckFunc()
	msg := i18n.T(goval.CodeRefineFailed, nil)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	out := goval.New(func(v any) (T, error) {
		t, err := check(v)
		if err != nil {
			var zero T
			return zero, err
		}
		if !pred(t) {
			var zero T
			return zero, goval.Issues{{Code: goval.CodeRefineFailed, Message: msg, Input: v}}
		}
		return t, nil
	})
	return out.WithMetadata(goval.Metadata{
		Kind:  goval.KindRefine,
		Inner: []goval.AnySchema{s.AsAny()},
	})
}

// Transform runs the schema and maps its output through fn. A failure (or
// panic) inside fn is reported as a validation failure, not propagated.
func Transform[T, U any](s goval.Schema[T], fn func(T) (U, error)) goval.Schema[U] {
	check := s.CheckFunc()
	out := goval.New(func(v any) (u U, err error) {
		t, cerr := check(v)
		if cerr != nil {
			return u, cerr
		}
		defer func() {
			if r := recover(); r != nil {
				u = *new(U)
				err = goval.Issues{{Code: goval.CodeTransformError, Message: recoverMessage(r), Input: v}}
			}
		}()
		mapped, merr := fn(t)
		if merr != nil {
			return u, goval.Issues{{Code: goval.CodeTransformError, Message: merr.Error(), Input: v}}
		}
		return mapped, nil
	})
	return out.WithMetadata(goval.Metadata{
		Kind:  goval.KindTransform,
		Inner: []goval.AnySchema{s.AsAny()},
	})
}

func recoverMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return i18n.T(goval.CodeTransformError, nil)
}

// CatchError runs the schema and substitutes def on any failure, so the
// resulting schema can never fail.
func CatchError[T any](s goval.Schema[T], def T) goval.Schema[T] {
	check := s.CheckFunc()
	out := goval.New(func(v any) (T, error) {
		t, err := check(v)
		if err != nil {
			return def, nil
		}
		return t, nil
	})
	return out.WithMetadata(goval.Metadata{
		Kind:  goval.KindCatch,
		Inner: []goval.AnySchema{s.AsAny()},
	})
}
