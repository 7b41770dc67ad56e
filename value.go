package streamval

// Value is anything that can describe itself as an ordered sequence of
// Stream calls. A Value owns nothing beyond itself: Emit must issue a
// well-formed token sequence against whatever Stream it is handed, and
// must accept any conforming Stream implementation. A Value may not
// assume anything about which concrete Stream it is talking to.
//
// A Value may choose how it represents a given datum (a plain scalar vs.
// a tagged variant, say) but having chosen, the sequence it emits for
// that choice must be well-formed.
type Value interface {
	// Emit streams v's structure to s, returning ErrStop (or a wrapped
	// ErrStop) the moment any Stream method returns it, and making no
	// further Stream calls afterward.
	Emit(s Stream) error
}

// Emit is the top-level driver: it calls v.Emit(s) and returns whatever
// v returns, unchanged. It exists purely for symmetry with Stream.Value,
// so callers never need to remember which side owns the recursion.
func Emit(s Stream, v Value) error {
	return v.Emit(s)
}

// ValueFunc adapts a plain function to the Value interface.
type ValueFunc func(s Stream) error

// Emit calls f(s).
func (f ValueFunc) Emit(s Stream) error { return f(s) }
