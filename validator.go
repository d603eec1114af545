package goval

// missing is the type of the Missing sentinel.
type missing struct{}

// Missing marks a value absent from its container, the analogue of a JSON
// object key that is not present (as opposed to present-and-null, which is a
// plain nil). Structural schemas hand Missing to field validators for absent
// keys; a field whose validated value is Missing is omitted from the output.
var Missing any = missing{}

// IsMissing reports whether v is the absence sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// Schema validates and possibly transforms an untyped input into T. It is an
// immutable value: combinators never mutate an input schema, they produce a
// new one, so the same leaf schema can be shared across many composites.
//
// A Schema exposes the same validation through two error-signaling
// conventions that are kept observably equivalent:
//
//   - Parse returns (T, error) where the error is Issues carrying structured
//     root-to-leaf paths (MustParse panics with the same error);
//   - Safe returns a Result[T] whose Err is the flattened single-line form.
//
// Safe(x).OK is false exactly when Parse(x) returns a non-nil error, and on
// success both report the same value.
type Schema[T any] struct {
	check func(any) (T, error)
	safe  func(any) Result[T]
	meta  *Metadata
}

// New builds a schema from a single check implementation. The non-throwing
// form is synthesized from it (invoke, recover, flatten), so the two paths
// cannot drift apart.
func New[T any](check func(any) (T, error)) Schema[T] {
	return Schema[T]{check: check}
}

// NewSafe builds a schema from a pair of independently written
// implementations. The pair must agree: same acceptance set, same error
// message modulo path prefixing. Supplying safe is an optimization for
// callers that already have a non-throwing form; behavior must match New's
// synthesized one exactly.
func NewSafe[T any](check func(any) (T, error), safe func(any) Result[T]) Schema[T] {
	return Schema[T]{check: check, safe: safe}
}

// Parse validates v, returning the (possibly transformed) output or an
// Issues error.
func (s Schema[T]) Parse(v any) (T, error) {
	return s.check(v)
}

// MustParse validates v and panics with the Issues error on failure, for
// call sites that want throw semantics (schema construction, tests).
func (s Schema[T]) MustParse(v any) T {
	out, err := s.check(v)
	if err != nil {
		panic(err)
	}
	return out
}

// Safe validates v without ever returning an error or panicking.
func (s Schema[T]) Safe(v any) Result[T] {
	if s.safe != nil {
		return s.safe(v)
	}
	return safeFromCheck(s.check, v)
}

// SafeFunc returns the non-throwing form as a standalone func, precomputed so
// hot loops can call it without re-deciding between the explicit and the
// synthesized variant on every element.
func (s Schema[T]) SafeFunc() func(any) Result[T] {
	if s.safe != nil {
		return s.safe
	}
	check := s.check
	return func(v any) Result[T] { return safeFromCheck(check, v) }
}

// CheckFunc returns the primary form as a standalone func. Structural schemas
// capture it per field/element so their loops stay monomorphic.
func (s Schema[T]) CheckFunc() func(any) (T, error) {
	return s.check
}

// safeFromCheck is the fallback non-throwing path: invoke the primary form,
// recover panics, and flatten the error. A panic with a non-error value is
// normalized to the literal message "Unknown error".
func safeFromCheck[T any](check func(any) (T, error), v any) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](panicMessage(r))
		}
	}()
	out, err := check(v)
	if err != nil {
		return Fail[T](flatMessage(err))
	}
	return Ok(out)
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return flatMessage(err)
	}
	return "Unknown error"
}

func flatMessage(err error) string {
	if iss, ok := AsIssues(err); ok {
		return iss.Error()
	}
	return err.Error()
}

// Is reports whether v conforms to the schema.
func Is[T any](s Schema[T], v any) bool {
	return s.Safe(v).OK
}

// AnySchema is the type-erased schema used wherever heterogeneous schemas
// meet: object shapes, union alternatives, pipe stages.
type AnySchema = Schema[any]

// AsAny erases the output type. The erased schema shares the underlying
// implementation, so precomputed fast paths survive erasure.
func (s Schema[T]) AsAny() AnySchema {
	check := s.check
	out := AnySchema{
		check: func(v any) (any, error) { return check(v) },
		meta:  s.meta,
	}
	if s.safe != nil {
		safe := s.safe
		out.safe = func(v any) Result[any] {
			r := safe(v)
			if !r.OK {
				return Fail[any](r.Err)
			}
			return Ok[any](r.Value)
		}
	}
	return out
}

// Meta returns the attached metadata descriptor, or nil. Metadata is purely
// descriptive; stripping it never changes validation behavior.
func (s Schema[T]) Meta() *Metadata { return s.meta }

// WithMetadata returns a copy of the schema with m attached.
func (s Schema[T]) WithMetadata(m Metadata) Schema[T] {
	s.meta = &m
	return s
}
