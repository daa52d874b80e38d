package result

// Result holds either a success value of type T or an error value of type E.
// The zero Result is an error Result holding E's zero value; use [Ok] or
// [Err] to construct meaningful instances.
//
// Fallible operations in this module return Result by value so the render
// thread can inspect outcomes without unwinding or heap allocation.
type Result[T, E any] struct {
	val T
	err E
	ok  bool
}

// Ok returns a Result in the success state holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v, ok: true}
}

// Err returns a Result in the error state holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// HasValue reports whether the Result is in the success state.
func (r Result[T, E]) HasValue() bool {
	return r.ok
}

// HasError reports whether the Result is in the error state.
func (r Result[T, E]) HasError() bool {
	return !r.ok
}

// Value returns the success payload.
// Calling Value on an error Result is a contract violation and panics;
// callers must check HasValue first.
func (r Result[T, E]) Value() T {
	if !r.ok {
		panic("result: Value called on an error Result")
	}
	return r.val
}

// Error returns the error payload.
// Calling Error on a success Result is a contract violation and panics;
// callers must check HasError first.
func (r Result[T, E]) Error() E {
	if r.ok {
		panic("result: Error called on a success Result")
	}
	return r.err
}

// ValueOr returns the success payload, or fallback when in the error state.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.ok {
		return r.val
	}
	return fallback
}

// Swap exchanges the full states of a and b, including their discriminants.
// The exchange is all-or-nothing: a struct assignment cannot fail partway,
// so neither operand is ever observable in a mixed state.
func Swap[T, E any](a, b *Result[T, E]) {
	*a, *b = *b, *a
}

// Map applies f to the success value and wraps the result; an error Result
// propagates unchanged without calling f.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.val))
	}
	return Err[U, E](r.err)
}

// AndThen chains a fallible computation: f runs only on a success Result
// and its Result is returned directly. An error Result short-circuits.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.val)
	}
	return Err[U, E](r.err)
}

// OrElse recovers from the error state: f runs only on an error Result and
// its Result is returned directly. A success Result passes through.
func OrElse[T, E any](r Result[T, E], f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

// Equal reports whether a and b are in the same state with equal payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.val == b.val
	}
	return a.err == b.err
}

// Unit is the payload type for operations that succeed without producing a
// value, the equivalent of a void success.
type Unit struct{}

// OkUnit returns a success Result carrying no value.
func OkUnit[E any]() Result[Unit, E] {
	return Ok[Unit, E](Unit{})
}
