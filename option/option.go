package option

import "fmt"

// Option represents an optional value: either Some(value) or None.
// The zero value is None. Option[T] is comparable whenever T is, and all
// None values of a given T compare equal.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsSomeAnd reports whether the Option contains a value and that value
// satisfies pred. The predicate is not invoked on None.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.present && pred(o.value)
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the contained value. It panics with an *UnwrapError
// carrying the fixed message "called Unwrap on None" if the Option is empty.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(&UnwrapError{Msg: unwrapNoneMsg})
	}
	return o.value
}

// Expect returns the contained value. It panics with an *UnwrapError
// carrying msg verbatim if the Option is empty.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(&UnwrapError{Msg: msg})
	}
	return o.value
}

// UnwrapOr returns the contained value or the given default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes one from fn.
// fn is not invoked when a value is present.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Inspect invokes fn with the contained value, if any, and returns the
// Option unchanged. Intended for observation side effects only.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

// Map applies fn to the contained value if present. Transformations that
// change the payload type use the package-level Map function.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if o.present {
		return Some(fn(o.value))
	}
	return o
}

// Filter returns the Option unchanged if it contains a value satisfying
// pred, and None otherwise. The predicate is not invoked on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return None[T]()
}

// AndThen applies fn to the contained value and returns its result, or
// None if the Option is empty. Cross-type binds use the package-level
// AndThen function.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if o.present {
		return fn(o.value)
	}
	return o
}

// OrElse returns the Option unchanged if it contains a value, and the
// result of fn otherwise. fn is not invoked when a value is present.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return fn()
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to the contained value if present, producing an Option of
// the result type.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// MapOr applies fn to the contained value and returns the result, or the
// given default when the Option is empty.
func MapOr[T, U any](o Option[T], defaultValue U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultValue
}

// MapOrElse applies fn to the contained value and returns the result, or
// computes a default from defaultFn when the Option is empty. Exactly one
// of the two functions is invoked.
func MapOrElse[T, U any](o Option[T], defaultFn func() U, fn func(T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defaultFn()
}

// AndThen applies fn to the contained value and returns its result, or
// None of the result type when the Option is empty.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}

// Equal reports whether two Options are equal: both None, or both Some
// with equal values.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}
