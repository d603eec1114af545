package dsl

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	goval "github.com/reoring/goval"
	"github.com/reoring/goval/i18n"
)

// typeName reports a JS-flavored type name for diagnostics.
func typeName(v any) string {
	if goval.IsMissing(v) {
		return "undefined"
	}
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64, float32, float64, json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func typeIssue(v any, expected string) goval.Issues {
	return goval.Issues{{
		Code:     goval.CodeInvalidType,
		Message:  i18n.T(goval.CodeInvalidType, map[string]string{"expected": expected}),
		Input:    v,
		Expected: expected,
		Received: typeName(v),
	}}
}

// String returns the minimal string schema.
func String() goval.Schema[string] {
	return goval.New(func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", typeIssue(v, "string")
		}
		return s, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindString})
}

// Bool returns the minimal bool schema.
func Bool() goval.Schema[bool] {
	return goval.New(func(v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, typeIssue(v, "boolean")
		}
		return b, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindBoolean})
}

// numberValue widens the numeric shapes JSON and YAML decoding produce.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Number returns the minimal number schema (float64 output). Accepts the
// numeric shapes produced by JSON and YAML decoding.
func Number() goval.Schema[float64] {
	return goval.New(func(v any) (float64, error) {
		f, ok := numberValue(v)
		if !ok {
			return 0, typeIssue(v, "number")
		}
		return f, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindNumber})
}

// Integer returns a number schema restricted to integral values.
func Integer() goval.Schema[float64] {
	return goval.New(func(v any) (float64, error) {
		f, ok := numberValue(v)
		if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, typeIssue(v, "integer")
		}
		return f, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindInteger})
}

// Null accepts only an explicit null.
func Null() goval.Schema[any] {
	return goval.New(func(v any) (any, error) {
		if v != nil {
			return nil, typeIssue(v, "null")
		}
		return nil, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindNull})
}

// Unknown accepts any value unchanged.
func Unknown() goval.AnySchema {
	return goval.New(func(v any) (any, error) {
		return v, nil
	}).WithMetadata(goval.Metadata{Kind: goval.KindAny})
}

// Literal accepts exactly the given value.
func Literal[T comparable](want T) goval.Schema[T] {
	expected := fmt.Sprintf("%v", want)
	return goval.New(func(v any) (T, error) {
		got, ok := v.(T)
		if !ok || got != want {
			var zero T
			return zero, typeIssue(v, expected)
		}
		return got, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindLiteral,
		Constraints: map[string]any{"value": want},
	})
}

// Enum accepts one of the given string values.
func Enum(values ...string) goval.Schema[string] {
	set := make(map[string]struct{}, len(values))
	anyVals := make([]any, len(values))
	for i, v := range values {
		set[v] = struct{}{}
		anyVals[i] = v
	}
	msg := i18n.T(goval.CodeInvalidEnum, map[string]string{"values": strings.Join(values, ", ")})
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
		Kind:        goval.KindEnum,
		Constraints: map[string]any{"values": anyVals},
	})
}

// ---- constraint leaves ----
//
// These validate an already-typed value, so they slot into Pipe after the
// corresponding type leaf: Pipe(String().AsAny(), NonEmpty().AsAny(), ...).

// NonEmpty rejects the empty string with the fixed message "Required".
func NonEmpty() goval.Schema[string] {
	return goval.New(func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", typeIssue(v, "string")
		}
		if s == "" {
			return "", goval.Issues{{Code: goval.CodeRequired, Message: i18n.T(goval.CodeRequired, nil), Input: v}}
		}
		return s, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindString,
		Constraints: map[string]any{"minLength": 1},
	})
}

// MinLen rejects strings shorter than n runes.
func MinLen(n int) goval.Schema[string] {
	msg := i18n.T(goval.CodeTooShort, map[string]string{"min": strconv.Itoa(n)})
	return goval.New(func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", typeIssue(v, "string")
		}
		if len([]rune(s)) < n {
			return "", goval.Issues{{Code: goval.CodeTooShort, Message: msg, Input: v}}
		}
		return s, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindString,
		Constraints: map[string]any{"minLength": n},
	})
}

// MaxLen rejects strings longer than n runes.
func MaxLen(n int) goval.Schema[string] {
	msg := i18n.T(goval.CodeTooLong, map[string]string{"max": strconv.Itoa(n)})
	return goval.New(func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", typeIssue(v, "string")
		}
		if len([]rune(s)) > n {
			return "", goval.Issues{{Code: goval.CodeTooLong, Message: msg, Input: v}}
		}
		return s, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindString,
		Constraints: map[string]any{"maxLength": n},
	})
}

// Pattern rejects strings not matching the regular expression. The pattern
// is compiled at construction time; an invalid pattern panics there, never
// during validation.
func Pattern(expr string) goval.Schema[string] {
	re := regexp.MustCompile(expr)
	msg := i18n.T(goval.CodePattern, nil)
	return goval.New(func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", typeIssue(v, "string")
		}
		if !re.MatchString(s) {
			return "", goval.Issues{{Code: goval.CodePattern, Message: msg, Input: v}}
		}
		return s, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindString,
		Constraints: map[string]any{"pattern": expr},
	})
}

// Min rejects numbers below n.
func Min(n float64) goval.Schema[float64] {
	msg := i18n.T(goval.CodeTooSmall, map[string]string{"min": strconv.FormatFloat(n, 'g', -1, 64)})
	return goval.New(func(v any) (float64, error) {
		f, ok := numberValue(v)
		if !ok {
			return 0, typeIssue(v, "number")
		}
		if f < n {
			return 0, goval.Issues{{Code: goval.CodeTooSmall, Message: msg, Input: v}}
		}
		return f, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindNumber,
		Constraints: map[string]any{"minimum": n},
	})
}

// Max rejects numbers above n.
func Max(n float64) goval.Schema[float64] {
	msg := i18n.T(goval.CodeTooBig, map[string]string{"max": strconv.FormatFloat(n, 'g', -1, 64)})
	return goval.New(func(v any) (float64, error) {
		f, ok := numberValue(v)
		if !ok {
			return 0, typeIssue(v, "number")
		}
		if f > n {
			return 0, goval.Issues{{Code: goval.CodeTooBig, Message: msg, Input: v}}
		}
		return f, nil
	}).WithMetadata(goval.Metadata{
		Kind:        goval.KindNumber,
		Constraints: map[string]any{"maximum": n},
	})
}
