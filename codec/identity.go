// Package codec provides reusable decode/encode pairs for dsl.Codec.
package codec

import (
	goval "github.com/reoring/goval"
	"github.com/reoring/goval/dsl"
)

// Identity returns a Codec[T,T] whose decode and encode are both the
// identity; validation is whatever the wire schema enforces.
func Identity[T any](wire goval.Schema[T]) dsl.Codec[T, T] {
	id := func(v T) (T, error) { return v, nil }
	return dsl.NewCodec(wire, id, id)
}
