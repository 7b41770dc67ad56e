package streamval

import "errors"

// ErrStop is the early-termination sentinel a Stream method returns to
// signal that it has decided to stop accepting further tokens. It carries
// no payload by design: the flat protocol cannot afford to allocate rich
// error context on every call, and a sink wanting diagnostics stores them
// itself and returns them to its own caller once the top-level emission
// returns.
//
// A producer that observes ErrStop from any Stream method must make no
// further calls and must propagate the error to its own caller unchanged.
var ErrStop = errors.New("streamval: stream stopped accepting tokens")

// IsStop reports whether err is, or wraps, ErrStop.
func IsStop(err error) bool {
	return errors.Is(err, ErrStop)
}
