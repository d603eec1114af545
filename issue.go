package goval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodePattern        = "pattern"
	CodeInvalidEnum    = "invalid_enum"
	CodeInvalidLength  = "invalid_length"
	CodeInvalidKey     = "invalid_key"
	CodeUnionNoMatch   = "union_no_match"
	CodeVariantNoMatch = "variant_no_match"
	CodeNotNull        = "not_null"
	CodeNotUndefined   = "not_undefined"
	CodeNotNullish     = "not_nullish"
	CodeRefineFailed   = "refine_failed"
	CodeTransformError = "transform_error"
	CodeParseError     = "parse_error"
	CodeUnknown        = "unknown_error"
)

type segmentKind uint8

const (
	segKey segmentKind = iota
	segIndex
	segRecordKey
)

// Segment is one step of a root-to-leaf issue path: an object key, an
// array/tuple index, or a record key. Record keys carry a string like object
// keys but flatten with bracket notation ("[key]: ..." rather than "key: ...").
type Segment struct {
	key  string
	idx  int
	kind segmentKind
}

// Key returns an object-key path segment.
func Key(k string) Segment { return Segment{key: k, kind: segKey} }

// Index returns an array/tuple index path segment.
func Index(i int) Segment { return Segment{idx: i, kind: segIndex} }

// RecordKey returns a record-key path segment.
func RecordKey(k string) Segment { return Segment{key: k, kind: segRecordKey} }

// Value reports the segment as a plain string (keys) or int (indices),
// the shape used by Standard-Schema paths.
func (s Segment) Value() any {
	if s.kind == segIndex {
		return s.idx
	}
	return s.key
}

// prefix renders the segment for the flat "segment: message" chain.
func (s Segment) prefix() string {
	switch s.kind {
	case segIndex:
		return "[" + strconv.Itoa(s.idx) + "]: "
	case segRecordKey:
		return "[" + s.key + "]: "
	default:
		return s.key + ": "
	}
}

// render appends the segment to a dotted path string. Indices bind directly
// to the preceding segment ("key[0]", never "key.[0]").
func (s Segment) render(b *strings.Builder, first bool) {
	if s.kind == segIndex {
		b.WriteString("[")
		b.WriteString(strconv.Itoa(s.idx))
		b.WriteString("]")
		return
	}
	if !first {
		b.WriteString(".")
	}
	b.WriteString(s.key)
}

// Issue represents a single validation failure at one location.
type Issue struct {
	Code     string    // One of the codes listed above.
	Message  string    // Leaf message, without path prefixes.
	Path     []Segment // Root-to-leaf; empty for top-level failures.
	Input    any       // Optional: the offending input value.
	Expected string    // Optional: expected type/shape name.
	Received string    // Optional: received type/shape name.
}

// FlatMessage renders the single-line form: one "segment: " prefix per
// structural boundary crossed, then the leaf message.
func (it Issue) FlatMessage() string {
	if len(it.Path) == 0 {
		return it.Message
	}
	b := &strings.Builder{}
	for _, seg := range it.Path {
		b.WriteString(seg.prefix())
	}
	b.WriteString(it.Message)
	return b.String()
}

// PathString renders the dotted path form ("a.b[1]"); empty for the root.
func (it Issue) PathString() string {
	b := &strings.Builder{}
	for i, seg := range it.Path {
		seg.render(b, i == 0)
	}
	return b.String()
}

// Issues is a collection of validation failures that implements error.
type Issues []Issue

// Error derives the flat message: a single issue renders as its prefixed
// chain, multiple issues as a count summary.
func (iss Issues) Error() string {
	switch len(iss) {
	case 0:
		return ""
	case 1:
		return iss[0].FlatMessage()
	default:
		return fmt.Sprintf("%d validation issues", len(iss))
	}
}

// Format renders every issue on its own line as "<path>: <message>"
// ("<message>" alone at the root), for human consumption.
func (iss Issues) Format() string {
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteString("\n")
		}
		if p := it.PathString(); p != "" {
			b.WriteString(p)
			b.WriteString(": ")
		}
		b.WriteString(it.Message)
	}
	return b.String()
}

// Flatten groups leaf messages by rendered path. The root path maps from the
// empty string.
func (iss Issues) Flatten() map[string][]string {
	out := make(map[string][]string, len(iss))
	for _, it := range iss {
		p := it.PathString()
		out[p] = append(out[p], it.Message)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// PrefixIssues converts err into Issues and prepends seg to every path.
// Non-Issues errors become a single parse_error issue at seg.
func PrefixIssues(err error, seg Segment) Issues {
	iss, ok := AsIssues(err)
	if !ok {
		return Issues{{Code: CodeParseError, Message: err.Error(), Path: []Segment{seg}}}
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		p := make([]Segment, 0, len(it.Path)+1)
		p = append(p, seg)
		p = append(p, it.Path...)
		it.Path = p
		out[i] = it
	}
	return out
}
