package jsonstream

import (
	"github.com/pkg/errors"
)

// Error wraps the diagnostic the encoder stashed internally before
// converting it into streamval.ErrStop at the call site. The sink
// protocol's sentinel carries no payload by design (it is not allowed
// to allocate); an Encoder keeps its own richer cause, and Encode returns
// it in place of ErrStop once the top-level emit call has returned.
// Encoder has no accessor for it, so a caller driving an Encoder
// directly sees only ErrStop.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return "jsonstream: " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

func wrapf(cause error, format string, args ...any) error {
	return &Error{cause: errors.Wrapf(cause, format, args...)}
}

func newErrorf(format string, args ...any) error {
	return &Error{cause: errors.Errorf(format, args...)}
}

// IsErr reports whether err is (or wraps) a *jsonstream.Error.
func IsErr(err error) bool {
	var target *Error
	return errors.As(err, &target)
}
