// Package option provides the Option container: a value that is either
// present (Some) or absent (None). It is one of the two canonical subjects
// the derivers are exercised against; the package hand-writes only the
// primitive operations (Pure, FlatMap, OrElse, FoldLeft) and leaves the rest
// to derivation.
package option

// Option represents an optional value: Some(x) or None.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option containing a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the contained value. Panics on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("unwrap: expected Some, got None")
	}
	return o.value
}

// UnwrapOr returns the contained value or the provided default.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or computes one from the fallback.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.some {
		return o.value
	}
	return f()
}

// Equal reports whether two options are equal, comparing payloads with ==.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}

// Pure lifts a value into Some. It is the Option instantiation of return.
func Pure[T any](v T) Option[T] {
	return Some(v)
}

// FlatMap applies f to the contained value; None short-circuits without
// invoking f. It is the Option instantiation of bind.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.some {
		return None[B]()
	}
	return f(o.value)
}

// OrElse returns a when it holds a value and falls back to b otherwise.
// None is the left identity of OrElse.
func OrElse[T any](a, b Option[T]) Option[T] {
	if a.some {
		return a
	}
	return b
}

// FoldLeft folds over the at-most-one element: f(init, x) for Some(x), init
// untouched for None.
func FoldLeft[A, Acc any](o Option[A], init Acc, f func(Acc, A) Acc) Acc {
	if !o.some {
		return init
	}
	return f(init, o.value)
}
