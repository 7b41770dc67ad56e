// Package jsonstream implements a streamval.Stream that renders the
// values it receives as RFC 8259 JSON text. It is the core contract's
// worked-example consumer: every extended-model method it does not
// need to specialize is left to streamval.Defaults' tabulated
// reduction, and the methods it does override exist because JSON needs
// to say something a generic reduction cannot (object-vs-array
// brackets, comma placement, quoting).
package jsonstream

import (
	"bytes"
	"io"
	"strconv"

	"github.com/nilfen/streamval"
)

// DefaultMaxDepth bounds total bracket nesting when no explicit limit
// is configured. Past 16 levels the encoder's frame stack grows onto
// the heap instead of rejecting the value; DefaultMaxDepth is the
// point past which it gives up rather than grow unboundedly.
const DefaultMaxDepth = 10000

// inlineDepth is how many nesting levels the frame stack holds without
// a heap allocation.
const inlineDepth = 16

type jsonFrameKind uint8

const (
	frameArray jsonFrameKind = iota
	frameObject
)

type jsonFrame struct {
	kind  jsonFrameKind
	first bool
}

// Encoder is a streamval.Stream that writes JSON text to an io.Writer.
// It is not safe for concurrent use; each Encoder is meant to serve a
// single top-level Emit call, matching the core contract's assumption
// that a Stream instance is exclusively owned by one emission.
type Encoder struct {
	streamval.Defaults

	w        io.Writer
	err      error
	maxDepth int

	inline   [inlineDepth]jsonFrame
	overflow []jsonFrame
	depth    int

	inKey    bool // currently inside map_key_begin/map_key_end
	inNumber int  // >0 while inside a NUMBER-tagged tagged_begin/end
}

// Option configures an Encoder at construction time.
type Option func(*Encoder)

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(e *Encoder) { e.maxDepth = n }
}

// NewEncoder returns an Encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{w: w, maxDepth: DefaultMaxDepth}
	e.Defaults = streamval.NewDefaults(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode renders v as a JSON byte slice in one call. Wrap v's stream
// with streamval.Validate first if you want malformed token sequences
// turned into a diagnosable error instead of undefined behavior.
func Encode(v streamval.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := v.Emit(enc); err != nil {
		if enc.err != nil {
			return nil, enc.err
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Encoder) fail(err error) error {
	if e.err == nil {
		e.err = err
	}
	return streamval.ErrStop
}

func (e *Encoder) write(s string) error {
	if _, err := io.WriteString(e.w, s); err != nil {
		return e.fail(wrapf(err, "writing JSON output"))
	}
	return nil
}

func (e *Encoder) writeByte(b byte) error {
	return e.write(string(b))
}

// frame returns the currently open frame, or nil at the top level.
func (e *Encoder) frame() *jsonFrame {
	if e.depth == 0 {
		return nil
	}
	if e.depth <= inlineDepth {
		return &e.inline[e.depth-1]
	}
	return &e.overflow[e.depth-inlineDepth-1]
}

func (e *Encoder) pushFrame(kind jsonFrameKind) error {
	if e.depth >= e.maxDepth {
		return e.fail(newErrorf("nesting exceeds configured max depth %d", e.maxDepth))
	}
	e.depth++
	f := jsonFrame{kind: kind, first: true}
	if e.depth <= inlineDepth {
		e.inline[e.depth-1] = f
	} else {
		e.overflow = append(e.overflow, f)
	}
	return nil
}

func (e *Encoder) popFrame() {
	if e.depth > inlineDepth {
		e.overflow = e.overflow[:len(e.overflow)-1]
	}
	e.depth--
}

// beginElement writes the separating comma for every element after the
// first one in the currently open array/object frame. It is a no-op at
// the top level, where there is exactly one logical value and so
// nothing to separate. Called exactly once per element, from whichever
// method marks that element's start (SeqValueBegin, TupleValueBegin,
// MapKeyBegin, writeLabelKey), never from a container's own *Begin,
// which would double it with the enclosing element's own call.
func (e *Encoder) beginElement() error {
	f := e.frame()
	if f == nil {
		return nil
	}
	if f.first {
		f.first = false
		return nil
	}
	return e.writeByte(',')
}

// --- required base model ---

func (e *Encoder) Null() error {
	if e.inKey {
		return e.write(`"null"`)
	}
	return e.write("null")
}

func (e *Encoder) Bool(v bool) error {
	if v {
		if e.inKey {
			return e.write(`"true"`)
		}
		return e.write("true")
	}
	if e.inKey {
		return e.write(`"false"`)
	}
	return e.write("false")
}

func (e *Encoder) I64(v int64) error {
	digits := strconv.FormatInt(v, 10)
	if e.inKey {
		return e.write(`"` + digits + `"`)
	}
	return e.write(digits)
}

// F64 is overridden rather than left to streamval.Defaults' reduction
// because the reduction is format-agnostic about NaN/Infinity, and
// strict JSON is not: formatFloat rejects both.
func (e *Encoder) F64(v float64) error {
	digits, err := formatFloat(v)
	if err != nil {
		return e.fail(err)
	}
	if e.inKey {
		return e.write(`"` + digits + `"`)
	}
	return e.write(digits)
}

func (e *Encoder) textQuoted() bool {
	return e.inKey || e.inNumber == 0
}

func (e *Encoder) TextBegin(numBytes *int) error {
	if e.textQuoted() {
		return e.writeByte('"')
	}
	return nil
}

func (e *Encoder) TextFragmentComputed(fragment string) error {
	if !e.textQuoted() {
		// NUMBER-tagged digits are already a valid JSON number token;
		// nothing in it needs escaping.
		return e.write(fragment)
	}
	if err := writeEscapedTo(e.w, fragment); err != nil {
		return e.fail(wrapf(err, "writing JSON output"))
	}
	return nil
}

func (e *Encoder) TextEnd() error {
	if e.textQuoted() {
		return e.writeByte('"')
	}
	return nil
}

// rejectCompositeKey fails the encode if a container is about to open
// while a map key is being written: a JSON object key must be a single
// scalar token, never a nested array or object.
func (e *Encoder) rejectCompositeKey() error {
	if e.inKey {
		return e.fail(newErrorf("map key must be a scalar, got a composite value"))
	}
	return nil
}

// SeqBegin writes its opening bracket with no separator of its own: a
// seq nested as another container's element is already separated by
// that container's own *_value_begin (SeqValueBegin, TupleValueBegin,
// writeLabelKey, MapKeyBegin), and at the top level there is nothing to
// separate from.
func (e *Encoder) SeqBegin(numEntries *int) error {
	if err := e.rejectCompositeKey(); err != nil {
		return err
	}
	if err := e.writeByte('['); err != nil {
		return err
	}
	return e.pushFrame(frameArray)
}

func (e *Encoder) SeqValueBegin() error {
	return e.beginElement()
}

func (e *Encoder) SeqValueEnd() error { return nil }

func (e *Encoder) SeqEnd() error {
	e.popFrame()
	return e.writeByte(']')
}

// --- maps: always rendered as a JSON object ---
//
// A map is rendered as a JSON object when its keys reduce to text;
// otherwise the base-model reduction would fall back to an array of
// pairs. This encoder widens "reduce to text" to cover every base-model
// scalar (Null, Bool, any integer or float, and text itself) by
// stringifying whichever one a key turns out to be, applying the same
// stringification uniformly rather than only for the cases that already
// happen to be text. A key that begins a composite value (seq, map,
// record, tuple; tagged and enum pass the check through to whatever
// they wrap) cannot be decided this way without buffering the entire
// map to see whether every key qualifies, which would cost the one
// thing a streaming encoder is supposed to avoid, so such a key is
// rejected instead of silently falling back mid-stream: SeqBegin,
// MapBegin, RecordBegin and TupleBegin all call rejectCompositeKey
// while inKey is set.

func (e *Encoder) MapBegin(numEntries *int) error {
	if err := e.rejectCompositeKey(); err != nil {
		return err
	}
	if err := e.writeByte('{'); err != nil {
		return err
	}
	return e.pushFrame(frameObject)
}

func (e *Encoder) MapKeyBegin() error {
	if err := e.beginElement(); err != nil {
		return err
	}
	e.inKey = true
	return nil
}

func (e *Encoder) MapKeyEnd() error {
	e.inKey = false
	return e.writeByte(':')
}

func (e *Encoder) MapValueBegin() error { return nil }

func (e *Encoder) MapValueEnd() error { return nil }

func (e *Encoder) MapEnd() error {
	e.popFrame()
	return e.writeByte('}')
}

// --- tags ---

func (e *Encoder) TaggedBegin(tag *streamval.Tag, label *streamval.Label, index *streamval.Index) error {
	if tag != nil && tag.Equal(streamval.NUMBER) {
		e.inNumber++
	}
	return nil
}

func (e *Encoder) TaggedEnd(tag *streamval.Tag, label *streamval.Label, index *streamval.Index) error {
	if tag != nil && tag.Equal(streamval.NUMBER) {
		e.inNumber--
	}
	return nil
}

// --- records, record-tuples: JSON object keyed by label text ---

func (e *Encoder) RecordBegin(tag *streamval.Tag, label *streamval.Label, index *streamval.Index, numEntries *int) error {
	if err := e.rejectCompositeKey(); err != nil {
		return err
	}
	if err := e.writeByte('{'); err != nil {
		return err
	}
	return e.pushFrame(frameObject)
}

func (e *Encoder) writeLabelKey(label streamval.Label) error {
	if err := e.beginElement(); err != nil {
		return err
	}
	if err := e.writeByte('"'); err != nil {
		return err
	}
	if err := writeEscapedTo(e.w, label.Text()); err != nil {
		return e.fail(wrapf(err, "writing JSON output"))
	}
	if err := e.writeByte('"'); err != nil {
		return err
	}
	return e.writeByte(':')
}

func (e *Encoder) RecordValueBegin(tag *streamval.Tag, label streamval.Label) error {
	return e.writeLabelKey(label)
}

func (e *Encoder) RecordValueEnd(tag *streamval.Tag, label streamval.Label) error { return nil }

func (e *Encoder) RecordEnd(tag *streamval.Tag, label *streamval.Label, index *streamval.Index) error {
	e.popFrame()
	return e.writeByte('}')
}

func (e *Encoder) RecordTupleBegin(tag *streamval.Tag, label *streamval.Label, index *streamval.Index, numEntries *int) error {
	return e.RecordBegin(tag, label, index, numEntries)
}

func (e *Encoder) RecordTupleValueBegin(tag *streamval.Tag, label streamval.Label, index streamval.Index) error {
	return e.writeLabelKey(label)
}

func (e *Encoder) RecordTupleValueEnd(tag *streamval.Tag, label streamval.Label, index streamval.Index) error {
	return nil
}

func (e *Encoder) RecordTupleEnd(tag *streamval.Tag, label *streamval.Label, index *streamval.Index) error {
	return e.RecordEnd(tag, label, index)
}

// --- tuples: JSON array, positional ---

func (e *Encoder) TupleBegin(tag *streamval.Tag, label *streamval.Label, index *streamval.Index, numEntries *int) error {
	if err := e.rejectCompositeKey(); err != nil {
		return err
	}
	if err := e.writeByte('['); err != nil {
		return err
	}
	return e.pushFrame(frameArray)
}

func (e *Encoder) TupleValueBegin(tag *streamval.Tag, index streamval.Index) error {
	return e.beginElement()
}

func (e *Encoder) TupleValueEnd(tag *streamval.Tag, index streamval.Index) error { return nil }

func (e *Encoder) TupleEnd(tag *streamval.Tag, label *streamval.Label, index *streamval.Index) error {
	e.popFrame()
	return e.writeByte(']')
}

// EnumBegin/EnumEnd are left to streamval.Defaults, which implements
// them as a pure structural passthrough, exactly what JSON wants since
// an enum contributes no bracket of its own.
