package dsl

import (
	goval "github.com/reoring/goval"
)

// Codec pairs a wire-side schema with a bidirectional transform between the
// wire representation A and the domain representation B. Validation
// (Schema/Decode) runs the wire schema then decode; encode is the sibling
// reverse direction and is never invoked during validation.
type Codec[A, B any] struct {
	wire   goval.Schema[A]
	decode func(A) (B, error)
	encode func(B) (A, error)
}

// NewCodec builds a codec from a wire schema and a decode/encode pair.
func NewCodec[A, B any](wire goval.Schema[A], decode func(A) (B, error), encode func(B) (A, error)) Codec[A, B] {
	return Codec[A, B]{wire: wire, decode: decode, encode: encode}
}

// Wire returns the wire-side schema.
func (c Codec[A, B]) Wire() goval.Schema[A] { return c.wire }

// Schema returns the decoding schema: validate via the wire schema, then
// apply decode. Decode failures surface as transform errors.
func (c Codec[A, B]) Schema() goval.Schema[B] {
	s := Transform(c.wire, c.decode)
	return s.WithMetadata(goval.Metadata{
		Kind:  goval.KindCodec,
		Inner: []goval.AnySchema{c.wire.AsAny()},
	})
}

// Decode validates v and converts it to the domain representation.
func (c Codec[A, B]) Decode(v any) (B, error) {
	return c.Schema().Parse(v)
}

// Encode converts a domain value back to the wire representation.
func (c Codec[A, B]) Encode(b B) (A, error) {
	return c.encode(b)
}
