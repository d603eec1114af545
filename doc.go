// Package goval provides:
//
// - Composable runtime validation via Schema[T] (Parse/MustParse/Safe)
// - A stable error model via Issues (typed path segments, code, message)
// - Behavior-inert Metadata on every schema, projected to JSON Schema
// - A Standard-Schema V1 adapter for vendor-neutral interop
//
// Design policy:
// - Keep only the validator contract in the root package; put constructors
//   and combinators under dsl/, reusable codecs under codec/.
// - Schemas are immutable values: composing schemas never mutates an input
//   schema, it always produces a new one.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object(
//		dsl.F("id", dsl.String().AsAny()),
//		dsl.F("age", dsl.Optional(dsl.Number().AsAny())),
//	)
//	v, err := user.Parse(map[string]any{"id": "u_1"})
//	res := user.Safe(map[string]any{"id": 1}) // res.OK == false
package goval
