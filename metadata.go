package goval

// Kind identifies a schema's shape for introspection and JSON-Schema
// projection. It is a closed set: the projector switches over it
// exhaustively, so new schema kinds must extend the enum rather than
// smuggle a new string tag in.
type Kind int

const (
	KindUnknown Kind = iota
	KindAny
	KindString
	KindNumber
	KindInteger
	KindBoolean
	KindNull
	KindLiteral
	KindEnum
	KindObject
	KindLooseObject
	KindObjectWithRest
	KindPartial
	KindRequired
	KindVariant
	KindArray
	KindTuple
	KindLooseTuple
	KindTupleWithRest
	KindRecord
	KindMap
	KindSet
	KindUnion
	KindIntersect
	KindPipe
	KindOptional
	KindExactOptional
	KindUndefinedable
	KindNullable
	KindNullish
	KindNonNullable
	KindNonNullish
	KindNonOptional
	KindDefault
	KindFallback
	KindRefine
	KindTransform
	KindCatch
	KindCodec
	KindKeyOf
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindAny:            "any",
	KindString:         "string",
	KindNumber:         "number",
	KindInteger:        "integer",
	KindBoolean:        "boolean",
	KindNull:           "null",
	KindLiteral:        "literal",
	KindEnum:           "enum",
	KindObject:         "object",
	KindLooseObject:    "looseObject",
	KindObjectWithRest: "objectWithRest",
	KindPartial:        "partial",
	KindRequired:       "required",
	KindVariant:        "variant",
	KindArray:          "array",
	KindTuple:          "tuple",
	KindLooseTuple:     "looseTuple",
	KindTupleWithRest:  "tupleWithRest",
	KindRecord:         "record",
	KindMap:            "map",
	KindSet:            "set",
	KindUnion:          "union",
	KindIntersect:      "intersect",
	KindPipe:           "pipe",
	KindOptional:       "optional",
	KindExactOptional:  "exactOptional",
	KindUndefinedable:  "undefinedable",
	KindNullable:       "nullable",
	KindNullish:        "nullish",
	KindNonNullable:    "nonNullable",
	KindNonNullish:     "nonNullish",
	KindNonOptional:    "nonOptional",
	KindDefault:        "default",
	KindFallback:       "fallback",
	KindRefine:         "refine",
	KindTransform:      "transform",
	KindCatch:          "catch",
	KindCodec:          "codec",
	KindKeyOf:          "keyof",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// NamedSchema pairs an object key with its field schema. Order is
// declaration order and is significant: fields validate in it and error
// ordering tie-breaks follow it.
type NamedSchema struct {
	Key    string
	Schema AnySchema
}

// Metadata is the behavior-inert descriptor attached to a schema. It exists
// only for introspection (JSON-Schema projection, tooling); validation never
// reads it.
type Metadata struct {
	Kind        Kind
	Constraints map[string]any // kind-specific structural parameters, e.g. {"minLength": 3}
	Inner       []AnySchema    // children for array/tuple/union/pipe/wrapper kinds
	Fields      []NamedSchema  // children for object kinds, declaration order
	KeySchema   *AnySchema     // record key schema
	Rest        *AnySchema     // record value / objectWithRest / tupleWithRest rest schema

	Title       string
	Description string
	Examples    []any
	Default     any
	HasDefault  bool
	Deprecated  bool
	ReadOnly    bool
}

// withMeta mutates a copy of the attached metadata (empty one when absent)
// and reattaches it, preserving immutability of the original schema.
func (s Schema[T]) withMeta(f func(*Metadata)) Schema[T] {
	var m Metadata
	if s.meta != nil {
		m = *s.meta
	}
	f(&m)
	s.meta = &m
	return s
}

// Describe annotates the schema with a description.
func (s Schema[T]) Describe(desc string) Schema[T] {
	return s.withMeta(func(m *Metadata) { m.Description = desc })
}

// Titled annotates the schema with a title.
func (s Schema[T]) Titled(title string) Schema[T] {
	return s.withMeta(func(m *Metadata) { m.Title = title })
}

// Examples annotates the schema with example values.
func (s Schema[T]) Examples(examples ...any) Schema[T] {
	return s.withMeta(func(m *Metadata) { m.Examples = examples })
}

// Deprecated marks the schema deprecated for documentation purposes.
func (s Schema[T]) Deprecated() Schema[T] {
	return s.withMeta(func(m *Metadata) { m.Deprecated = true })
}

// ReadOnly marks the schema read-only for documentation purposes.
func (s Schema[T]) ReadOnly() Schema[T] {
	return s.withMeta(func(m *Metadata) { m.ReadOnly = true })
}
