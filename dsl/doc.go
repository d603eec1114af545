// Package dsl provides the schema constructors and combinators: primitive
// leaves, the wrapper/composition algebra (Pipe, Optional, Union, Intersect,
// Refine, ...), and the structural schemas (Object, Array, Tuple, Record).
//
// Everything here composes goval.Schema values without mutating them; a leaf
// schema can be shared freely across composites. Heterogeneous composition
// points (object fields, union alternatives, pipe stages) take the erased
// goval.AnySchema; use Schema.AsAny to erase and dsl.Into to re-type.
package dsl
