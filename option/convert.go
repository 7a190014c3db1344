package option

import "iter"

// FromPtr lifts a nullable pointer into an Option: nil becomes None,
// anything else becomes Some of the pointed-to value.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// ToPtr returns a pointer to a copy of the contained value, or nil when
// the Option is empty.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// ToSlice returns the Option as a slice of length zero or one.
func (o Option[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// All returns an iterator over the contained value, yielding it zero or
// one times. The sequence is restartable: iterating twice yields the same
// values.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}
