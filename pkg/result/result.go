// Package result provides the Result container: a computation outcome that
// is either a success (Ok) or a failure (Fail). Its two type parameters make
// it the canonical arity-2 subject: the failure type E is held fixed across
// a single derivation while the element type varies.
package result

// Result represents Ok(x) or Fail(e).
type Result[T, E any] struct {
	value T
	fail  E
	ok    bool
}

// Ok creates a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Fail creates a failed Result.
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{fail: e}
}

// IsOk reports whether the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsFail reports whether the Result is a failure.
func (r Result[T, E]) IsFail() bool {
	return !r.ok
}

// Unwrap returns the success value. Panics on Fail.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("unwrap: expected Ok, got Fail")
	}
	return r.value
}

// UnwrapOr returns the success value or the provided default.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapFail returns the failure value. Panics on Ok.
func (r Result[T, E]) UnwrapFail() E {
	if r.ok {
		panic("unwrapFail: expected Fail, got Ok")
	}
	return r.fail
}

// Equal reports whether two results are equal, comparing both branches
// with ==.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.fail == b.fail
}

// Pure lifts a value into Ok. It is the Result instantiation of return, with
// the failure type threaded through unchanged.
func Pure[T, E any](v T) Result[T, E] {
	return Ok[T, E](v)
}

// FlatMap applies f to the success value; Fail propagates without invoking f.
// It is the Result instantiation of bind.
func FlatMap[A, B, E any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if !r.ok {
		return Fail[B](r.fail)
	}
	return f(r.value)
}

// OrElse returns a when it is Ok and falls back to b otherwise.
func OrElse[T, E any](a, b Result[T, E]) Result[T, E] {
	if a.ok {
		return a
	}
	return b
}

// FoldLeft folds over the at-most-one element. Only the Ok branch is
// foldable: Fail contributes nothing and init is returned untouched.
func FoldLeft[A, Acc, E any](r Result[A, E], init Acc, f func(Acc, A) Acc) Acc {
	if !r.ok {
		return init
	}
	return f(init, r.value)
}
