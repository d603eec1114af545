package goval

// Result is the non-throwing outcome of a validation: exactly one of the
// success shape (OK with Value) or the failure shape (Err holding a single
// human-readable line). Nested failures are flattened into the Err string
// as "segment: message" chains; structured paths are available through the
// Issues error on the primary path and through the Standard adapter.
type Result[T any] struct {
	OK    bool
	Value T
	Err   string
}

// Ok wraps a value in a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{OK: true, Value: v} }

// Fail builds a failed Result carrying a single message line.
func Fail[T any](msg string) Result[T] { return Result[T]{Err: msg} }
