package option

// Number constrains the payload types accepted by the arithmetic
// combinators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns Some(a+b) when both operands contain a value, and None
// otherwise.
func Add[T Number](a, b Option[T]) Option[T] {
	if a.present && b.present {
		return Some(a.value + b.value)
	}
	return None[T]()
}

// Mul returns Some(a*b) when both operands contain a value, and None
// otherwise.
func Mul[T Number](a, b Option[T]) Option[T] {
	if a.present && b.present {
		return Some(a.value * b.value)
	}
	return None[T]()
}
