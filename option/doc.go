// Package option provides a generic two-variant container representing the
// presence (Some) or absence (None) of a value.
//
// An Option is an immutable value type: every combinator returns a new
// Option and never mutates its receiver. Absence is not an error — only
// force-extracting from an absent value is, and that failure is an
// UnwrapError panic.
//
// # Usage
//
//	o := option.Some(42)
//	doubled := o.Map(func(n int) int { return n * 2 })
//	v := doubled.UnwrapOr(0) // 84
//
//	option.FromPtr(maybeNil).Filter(positive).UnwrapOrElse(expensive)
//
// Transformations that change the payload type are package-level functions,
// since Go methods cannot introduce new type parameters:
//
//	s := option.Map(option.Some(42), strconv.Itoa) // Option[string]
package option
