package streamval

// Stream is the consumer half of the producer/consumer contract: anything
// that receives a totally ordered sequence of token calls from a Value and
// turns them into a side effect (bytes written, state mutated, a value
// extracted).
//
// Exactly ten methods are required for a Stream to be useful on its own:
// Null, Bool, I64, TextBegin, TextFragmentComputed, TextEnd, SeqBegin,
// SeqValueBegin, SeqValueEnd, SeqEnd. Every other method has a default
// reduction to that base set, implemented by Defaults (see defaults.go);
// embed Defaults in a concrete Stream type, wire Defaults.Self to the
// concrete type once (see NewDefaults), implement the ten required
// methods, and override only the extended methods whose specialized
// behavior you actually care about.
//
// No method may be called again on a Stream once any method has returned
// ErrStop; producers are responsible for enforcing this, not Streams.
type Stream interface {
	// --- required base model ---

	Null() error
	Bool(v bool) error
	I64(v int64) error

	TextBegin(numBytes *int) error
	TextFragmentComputed(fragment string) error
	TextEnd() error

	SeqBegin(numEntries *int) error
	SeqValueBegin() error
	SeqValueEnd() error
	SeqEnd() error

	// --- extended model: integers ---

	U8(v uint8) error
	U16(v uint16) error
	U32(v uint32) error
	U64(v uint64) error
	U128(v Uint128) error
	I8(v int8) error
	I16(v int16) error
	I32(v int32) error
	I128(v Int128) error

	// --- extended model: floats ---

	F32(v float32) error
	F64(v float64) error

	// --- extended model: text/binary borrow form ---

	TextFragment(fragment string) error
	BinaryBegin(numBytes *int) error
	BinaryFragment(fragment []byte) error
	BinaryFragmentComputed(fragment []byte) error
	BinaryEnd() error

	// --- extended model: maps ---

	MapBegin(numEntries *int) error
	MapKeyBegin() error
	MapKeyEnd() error
	MapValueBegin() error
	MapValueEnd() error
	MapEnd() error

	// --- extended model: tags ---

	Tag(tag *Tag, label *Label, index *Index) error
	TaggedBegin(tag *Tag, label *Label, index *Index) error
	TaggedEnd(tag *Tag, label *Label, index *Index) error

	// --- extended model: records, tuples, enums ---

	RecordBegin(tag *Tag, label *Label, index *Index, numEntries *int) error
	RecordValueBegin(tag *Tag, label Label) error
	RecordValueEnd(tag *Tag, label Label) error
	RecordEnd(tag *Tag, label *Label, index *Index) error

	TupleBegin(tag *Tag, label *Label, index *Index, numEntries *int) error
	TupleValueBegin(tag *Tag, index Index) error
	TupleValueEnd(tag *Tag, index Index) error
	TupleEnd(tag *Tag, label *Label, index *Index) error

	RecordTupleBegin(tag *Tag, label *Label, index *Index, numEntries *int) error
	RecordTupleValueBegin(tag *Tag, label Label, index Index) error
	RecordTupleValueEnd(tag *Tag, label Label, index Index) error
	RecordTupleEnd(tag *Tag, label *Label, index *Index) error

	EnumBegin(tag *Tag, label *Label, index *Index) error
	EnumEnd(tag *Tag, label *Label, index *Index) error

	// --- bridge ---

	// Value dispatches v.Emit(s) where s is the Stream this method was
	// called on. It exists so a producer never needs to build a separate
	// bridge type, and so a Stream can observe recursion points (for
	// buffering, say) without the flat protocol ever actually recursing
	// through Stream itself.
	Value(v Value) error
}

// Int holds n so an optional-count argument can be built inline:
// s.SeqBegin(streamval.Int(3)).
func Int(n int) *int { return &n }
