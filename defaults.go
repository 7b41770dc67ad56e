package streamval

// Defaults implements every extended-model Stream method as its tabulated
// reduction to the base model. Embed Defaults in a concrete
// Stream type and call NewDefaults (or set the Self field directly) with
// the embedding type itself, so the default methods dispatch back
// through the full Stream interface, including any extended methods the
// embedder overrides, rather than only through Defaults' own fallback
// implementations.
//
//	type MyStream struct {
//		streamval.Defaults
//		// ... own state ...
//	}
//
//	func NewMyStream() *MyStream {
//		s := &MyStream{}
//		s.Defaults = streamval.NewDefaults(s)
//		return s
//	}
//
// A MyStream must still implement the ten required base-model methods
// itself; Defaults only ever provides the extended ones.
type Defaults struct {
	// Self must be set to the Stream embedding this Defaults value
	// before any of its methods are called. Every default reduction
	// dispatches through Self so overrides anywhere in the extended
	// model are honored by reductions that build on them (for
	// example, the binary-as-seq-of-u8 reduction calls Self.U8, which
	// may itself be overridden).
	Self Stream
}

// NewDefaults returns a Defaults wired to self. Call it from the
// embedding type's constructor.
func NewDefaults(self Stream) Defaults {
	return Defaults{Self: self}
}

// Value dispatches v.Emit(d.Self).
func (d Defaults) Value(v Value) error {
	return v.Emit(d.Self)
}

// TextFragment defaults to the computed form: the borrowed lifetime
// guarantee is lost, but the content is byte-identical, so any Stream
// that doesn't care about zero-copy can ignore the distinction entirely.
func (d Defaults) TextFragment(fragment string) error {
	return d.Self.TextFragmentComputed(fragment)
}

// BinaryFragment defaults to the computed form, for the same reason
// TextFragment does.
func (d Defaults) BinaryFragment(fragment []byte) error {
	return d.Self.BinaryFragmentComputed(fragment)
}
