package streamval

import "fmt"

// Validate wraps next in a depth validator: a stateful Stream that tracks
// an expectation stack derived from the token-sequence invariants and
// converts any call that would violate them into ErrStop, without ever
// forwarding the offending call to next. Every call that passes
// validation is forwarded to next unchanged, and next's own return value
// (success or ErrStop) is propagated verbatim.
//
// The validator is itself a sink that wraps another sink. Wrap a Stream
// with Validate in debug and test builds; an unwrapped Stream is
// unchecked, and a malformed token sequence against it produces
// unspecified behavior.
func Validate(next Stream) Stream {
	v := &validator{next: next}
	v.Defaults = NewDefaults(v)
	return v
}

// Unchecked returns s unchanged. It exists only so call sites can make
// the decision to skip validation as explicit as the decision to apply
// it: streamval.Unchecked(s) reads the same as streamval.Validate(s)
// at the call site that wires up a Stream.
func Unchecked(s Stream) Stream { return s }

type frameKind uint8

const (
	kindTop frameKind = iota
	kindSeq
	kindSeqValue
	kindMap
	kindMapKey
	kindMapValue
	kindText
	kindBinary
	kindTagged
	kindRecord
	kindRecordValue
	kindTuple
	kindTupleValue
	kindRecordTuple
	kindRecordTupleValue
	kindEnum
)

func (k frameKind) String() string {
	switch k {
	case kindTop:
		return "top level"
	case kindSeq:
		return "seq"
	case kindSeqValue:
		return "seq value"
	case kindMap:
		return "map"
	case kindMapKey:
		return "map key"
	case kindMapValue:
		return "map value"
	case kindText:
		return "text"
	case kindBinary:
		return "binary"
	case kindTagged:
		return "tagged"
	case kindRecord:
		return "record"
	case kindRecordValue:
		return "record value"
	case kindTuple:
		return "tuple"
	case kindTupleValue:
		return "tuple value"
	case kindRecordTuple:
		return "record tuple"
	case kindRecordTupleValue:
		return "record tuple value"
	case kindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// mapState tracks which half of a key/value pair a map frame is waiting
// for next.
type mapState uint8

const (
	mapAwaitingKey mapState = iota
	mapAwaitingValue
)

type frame struct {
	kind    frameKind
	started bool // exactly-one-value frames: has the value already begun?
	mapSt   mapState
}

type validator struct {
	Defaults
	next    Stream
	stack   []frame
	topDone bool
	err     error
}

func (v *validator) reject(format string, args ...any) error {
	if v.err == nil {
		v.err = fmt.Errorf("streamval: malformed token sequence: "+format, args...)
	}
	return ErrStop
}

func (v *validator) top() *frame {
	if len(v.stack) == 0 {
		return nil
	}
	return &v.stack[len(v.stack)-1]
}

func (v *validator) push(k frameKind) {
	v.stack = append(v.stack, frame{kind: k})
}

// pop removes the top frame, verifying it has the expected kind, and
// returns it.
func (v *validator) pop(expect frameKind) (frame, error) {
	f := v.top()
	if f == nil || f.kind != expect {
		got := "top level"
		if f != nil {
			got = f.kind.String()
		}
		return frame{}, v.reject("expected to close a %s, but innermost open context is %s", expect, got)
	}
	closed := *f
	v.stack = v.stack[:len(v.stack)-1]
	return closed, nil
}

// enterValue is called at the start of every call that itself emits a
// complete leaf value or opens a container that will become one (Null,
// Bool, I64, ..., Tag, TextBegin, BinaryBegin, SeqBegin, MapBegin,
// TaggedBegin, RecordBegin, TupleBegin, RecordTupleBegin, EnumBegin). It
// enforces invariant 7 at the top level and the "exactly one value"
// invariant (5/6) for any frame that only ever holds a single value.
func (v *validator) enterValue() error {
	f := v.top()
	if f == nil {
		if v.topDone {
			return v.reject("a second top-level value was emitted; exactly one is allowed")
		}
		v.topDone = true
		return nil
	}
	switch f.kind {
	case kindSeqValue, kindMapKey, kindMapValue, kindTupleValue,
		kindRecordValue, kindRecordTupleValue, kindTagged, kindEnum:
		if f.started {
			return v.reject("%s already holds a value; it may only wrap exactly one", f.kind)
		}
		f.started = true
		return nil
	default:
		return v.reject("a value may not appear directly inside a %s; wrap it in the matching *_value_begin/*_end pair", f.kind)
	}
}

// --- required base model ---

func (v *validator) Null() error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.Null()
}

func (v *validator) Bool(b bool) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.Bool(b)
}

func (v *validator) I64(x int64) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.I64(x)
}

func (v *validator) TextBegin(numBytes *int) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindText)
	return v.next.TextBegin(numBytes)
}

func (v *validator) TextFragmentComputed(fragment string) error {
	if f := v.top(); f == nil || f.kind != kindText {
		return v.reject("text_fragment_computed outside of text_begin/text_end")
	}
	return v.next.TextFragmentComputed(fragment)
}

func (v *validator) TextFragment(fragment string) error {
	if f := v.top(); f == nil || f.kind != kindText {
		return v.reject("text_fragment outside of text_begin/text_end")
	}
	return v.next.TextFragment(fragment)
}

func (v *validator) TextEnd() error {
	if _, err := v.pop(kindText); err != nil {
		return err
	}
	return v.next.TextEnd()
}

func (v *validator) SeqBegin(numEntries *int) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindSeq)
	return v.next.SeqBegin(numEntries)
}

func (v *validator) SeqValueBegin() error {
	if f := v.top(); f == nil || f.kind != kindSeq {
		return v.reject("seq_value_begin outside of seq_begin/seq_end")
	}
	v.push(kindSeqValue)
	return v.next.SeqValueBegin()
}

func (v *validator) SeqValueEnd() error {
	closed, err := v.pop(kindSeqValue)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("seq_value_begin/seq_value_end must wrap exactly one value")
	}
	return v.next.SeqValueEnd()
}

func (v *validator) SeqEnd() error {
	if _, err := v.pop(kindSeq); err != nil {
		return err
	}
	return v.next.SeqEnd()
}

// --- extended model: integers ---

func (v *validator) U8(x uint8) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.U8(x)
}

func (v *validator) U16(x uint16) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.U16(x)
}

func (v *validator) U32(x uint32) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.U32(x)
}

func (v *validator) U64(x uint64) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.U64(x)
}

func (v *validator) U128(x Uint128) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.U128(x)
}

func (v *validator) I8(x int8) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.I8(x)
}

func (v *validator) I16(x int16) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.I16(x)
}

func (v *validator) I32(x int32) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.I32(x)
}

func (v *validator) I128(x Int128) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.I128(x)
}

func (v *validator) F32(x float32) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.F32(x)
}

func (v *validator) F64(x float64) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.F64(x)
}

// --- extended model: binary ---

func (v *validator) BinaryBegin(numBytes *int) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindBinary)
	return v.next.BinaryBegin(numBytes)
}

func (v *validator) BinaryFragment(fragment []byte) error {
	if f := v.top(); f == nil || f.kind != kindBinary {
		return v.reject("binary_fragment outside of binary_begin/binary_end")
	}
	return v.next.BinaryFragment(fragment)
}

func (v *validator) BinaryFragmentComputed(fragment []byte) error {
	if f := v.top(); f == nil || f.kind != kindBinary {
		return v.reject("binary_fragment_computed outside of binary_begin/binary_end")
	}
	return v.next.BinaryFragmentComputed(fragment)
}

func (v *validator) BinaryEnd() error {
	if _, err := v.pop(kindBinary); err != nil {
		return err
	}
	return v.next.BinaryEnd()
}

// --- extended model: maps ---

func (v *validator) MapBegin(numEntries *int) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindMap)
	return v.next.MapBegin(numEntries)
}

func (v *validator) MapKeyBegin() error {
	f := v.top()
	if f == nil || f.kind != kindMap {
		return v.reject("map_key_begin outside of map_begin/map_end")
	}
	if f.mapSt != mapAwaitingKey {
		return v.reject("map_key_begin without a matching map_value_end for the previous pair")
	}
	v.push(kindMapKey)
	return v.next.MapKeyBegin()
}

func (v *validator) MapKeyEnd() error {
	closed, err := v.pop(kindMapKey)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("map_key_begin/map_key_end must wrap exactly one value")
	}
	v.top().mapSt = mapAwaitingValue
	return v.next.MapKeyEnd()
}

func (v *validator) MapValueBegin() error {
	f := v.top()
	if f == nil || f.kind != kindMap {
		return v.reject("map_value_begin outside of map_begin/map_end")
	}
	if f.mapSt != mapAwaitingValue {
		return v.reject("map_value_begin without a preceding map_key_begin/map_key_end")
	}
	v.push(kindMapValue)
	return v.next.MapValueBegin()
}

func (v *validator) MapValueEnd() error {
	closed, err := v.pop(kindMapValue)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("map_value_begin/map_value_end must wrap exactly one value")
	}
	v.top().mapSt = mapAwaitingKey
	return v.next.MapValueEnd()
}

func (v *validator) MapEnd() error {
	f := v.top()
	if f == nil || f.kind != kindMap {
		return v.reject("map_end without a matching map_begin")
	}
	if f.mapSt != mapAwaitingKey {
		return v.reject("map_end with an orphan key: every key needs a matching value")
	}
	if _, err := v.pop(kindMap); err != nil {
		return err
	}
	return v.next.MapEnd()
}

// --- extended model: tags ---

func (v *validator) Tag(tag *Tag, label *Label, index *Index) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	return v.next.Tag(tag, label, index)
}

func (v *validator) TaggedBegin(tag *Tag, label *Label, index *Index) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindTagged)
	return v.next.TaggedBegin(tag, label, index)
}

func (v *validator) TaggedEnd(tag *Tag, label *Label, index *Index) error {
	closed, err := v.pop(kindTagged)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("tagged_begin/tagged_end must wrap exactly one value")
	}
	return v.next.TaggedEnd(tag, label, index)
}

// --- extended model: records ---

func (v *validator) RecordBegin(tag *Tag, label *Label, index *Index, numEntries *int) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindRecord)
	return v.next.RecordBegin(tag, label, index, numEntries)
}

func (v *validator) RecordValueBegin(tag *Tag, label Label) error {
	if f := v.top(); f == nil || f.kind != kindRecord {
		return v.reject("record_value_begin outside of record_begin/record_end")
	}
	v.push(kindRecordValue)
	return v.next.RecordValueBegin(tag, label)
}

func (v *validator) RecordValueEnd(tag *Tag, label Label) error {
	closed, err := v.pop(kindRecordValue)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("record_value_begin/record_value_end must wrap exactly one value")
	}
	return v.next.RecordValueEnd(tag, label)
}

func (v *validator) RecordEnd(tag *Tag, label *Label, index *Index) error {
	if _, err := v.pop(kindRecord); err != nil {
		return err
	}
	return v.next.RecordEnd(tag, label, index)
}

// --- extended model: tuples ---

func (v *validator) TupleBegin(tag *Tag, label *Label, index *Index, numEntries *int) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindTuple)
	return v.next.TupleBegin(tag, label, index, numEntries)
}

func (v *validator) TupleValueBegin(tag *Tag, index Index) error {
	if f := v.top(); f == nil || f.kind != kindTuple {
		return v.reject("tuple_value_begin outside of tuple_begin/tuple_end")
	}
	v.push(kindTupleValue)
	return v.next.TupleValueBegin(tag, index)
}

func (v *validator) TupleValueEnd(tag *Tag, index Index) error {
	closed, err := v.pop(kindTupleValue)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("tuple_value_begin/tuple_value_end must wrap exactly one value")
	}
	return v.next.TupleValueEnd(tag, index)
}

func (v *validator) TupleEnd(tag *Tag, label *Label, index *Index) error {
	if _, err := v.pop(kindTuple); err != nil {
		return err
	}
	return v.next.TupleEnd(tag, label, index)
}

// --- extended model: record-tuples ---

func (v *validator) RecordTupleBegin(tag *Tag, label *Label, index *Index, numEntries *int) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindRecordTuple)
	return v.next.RecordTupleBegin(tag, label, index, numEntries)
}

func (v *validator) RecordTupleValueBegin(tag *Tag, label Label, index Index) error {
	if f := v.top(); f == nil || f.kind != kindRecordTuple {
		return v.reject("record_tuple_value_begin outside of record_tuple_begin/record_tuple_end")
	}
	v.push(kindRecordTupleValue)
	return v.next.RecordTupleValueBegin(tag, label, index)
}

func (v *validator) RecordTupleValueEnd(tag *Tag, label Label, index Index) error {
	closed, err := v.pop(kindRecordTupleValue)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("record_tuple_value_begin/record_tuple_value_end must wrap exactly one value")
	}
	return v.next.RecordTupleValueEnd(tag, label, index)
}

func (v *validator) RecordTupleEnd(tag *Tag, label *Label, index *Index) error {
	if _, err := v.pop(kindRecordTuple); err != nil {
		return err
	}
	return v.next.RecordTupleEnd(tag, label, index)
}

// --- extended model: enums ---

func (v *validator) EnumBegin(tag *Tag, label *Label, index *Index) error {
	if err := v.enterValue(); err != nil {
		return err
	}
	v.push(kindEnum)
	return v.next.EnumBegin(tag, label, index)
}

func (v *validator) EnumEnd(tag *Tag, label *Label, index *Index) error {
	closed, err := v.pop(kindEnum)
	if err != nil {
		return err
	}
	if !closed.started {
		return v.reject("enum_begin/enum_end must wrap exactly one value")
	}
	return v.next.EnumEnd(tag, label, index)
}

// --- bridge ---

func (v *validator) Value(val Value) error {
	return val.Emit(v)
}

// Err returns the first structural violation the validator rejected, or
// nil if every call it saw was well-formed. Useful for surfacing a
// human-readable diagnostic alongside the opaque ErrStop a caller
// receives from Emit.
func Err(s Stream) error {
	if v, ok := s.(*validator); ok {
		return v.err
	}
	return nil
}
