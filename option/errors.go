package option

// unwrapNoneMsg is the fixed message carried by the panic raised when
// Unwrap is called on None.
const unwrapNoneMsg = "called Unwrap on None"

// UnwrapError is the panic value raised by Unwrap and Expect when invoked
// on an empty Option. It always signals a caller bug: an invariant the
// caller believed ("value is present") was false.
type UnwrapError struct {
	// Msg is the fixed Unwrap message, or the caller-supplied Expect message.
	Msg string
}

// Error returns the string representation of the error.
func (e *UnwrapError) Error() string {
	return "option: " + e.Msg
}
