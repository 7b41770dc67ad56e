package jsonstream

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/nilfen/streamval"

	"github.com/stretchr/testify/assert"
)

// encodeOf is a small helper that threads a native Go value through
// streamval.Of and an Encoder, returning the resulting JSON text.
func encodeOf(t *testing.T, v any) string {
	t.Helper()
	out, err := Encode(streamval.Of(v))
	assert.NoError(t, err)
	return string(out)
}

// Scenario A: a record renders as a JSON object keyed by field label.
func TestEncode_RecordAsObject(t *testing.T) {
	type rec struct {
		Field0 int64
		Field1 bool
		Field2 string
	}
	got := encodeOf(t, rec{Field0: 1, Field1: true, Field2: "some text"})
	assert.Equal(t, `{"Field0":1,"Field1":true,"Field2":"some text"}`, got)
}

// Scenario B: a sequence renders as a JSON array.
func TestEncode_SeqAsArray(t *testing.T) {
	got := encodeOf(t, []int{1, 2, 3})
	assert.Equal(t, `[1,2,3]`, got)
}

// Scenario C: multiple text fragments concatenate into one JSON string,
// with no extra quoting or separators at the fragment boundary.
func TestEncode_MultiFragmentTextConcatenates(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	three := 3
	assert.NoError(t, enc.TextBegin(&three))
	assert.NoError(t, enc.TextFragmentComputed("ab"))
	assert.NoError(t, enc.TextFragmentComputed("c"))
	assert.NoError(t, enc.TextEnd())
	assert.Equal(t, `"abc"`, buf.String())
}

// Scenario D: a map renders as a JSON object.
func TestEncode_MapAsObject(t *testing.T) {
	got := encodeOf(t, map[string]int{"a": 1})
	assert.Equal(t, `{"a":1}`, got)
}

// Scenario E: fragment-level input is escaped on the way out: the quote
// marks are escaped, while JSON structural characters such as { } and :
// inside a string pass through verbatim.
func TestEncode_FragmentEscaping(t *testing.T) {
	got := encodeOf(t, `{"a":1}`)
	assert.Equal(t, `"{\"a\":1}"`, got)
}

// Scenario F: a U64 past MaxInt64 reduces to NUMBER-tagged text and is
// rendered as an unquoted JSON number, not as a quoted string.
func TestEncode_U64OutOfRangeUnquoted(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	assert.NoError(t, enc.U64(18446744073709551615))
	assert.Equal(t, `18446744073709551615`, buf.String())
}

// Scenario G: F64 is written by the Encoder's own F64 override as a bare
// number token, so it comes out unquoted like the NUMBER-tagged path.
func TestEncode_F64Unquoted(t *testing.T) {
	got := encodeOf(t, 3.5)
	assert.Equal(t, `3.5`, got)
}

// Scenario G': NaN and Infinity are rejected rather than silently
// rendered as null or as an invalid bare token.
func TestEncode_RejectsNaNAndInfinity(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	err := enc.F64(math.NaN())
	assert.True(t, streamval.IsStop(err))
	assert.Error(t, enc.err)

	var buf2 bytes.Buffer
	enc2 := NewEncoder(&buf2)
	err = enc2.F64(math.Inf(1))
	assert.True(t, streamval.IsStop(err))
	assert.Error(t, enc2.err)
}

// Scenario H: enum/tagged wrappers contribute no bracket of their own;
// the wrapped value's own JSON shape passes straight through.
func TestEncode_EnumIsTransparent(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	label := streamval.NewLabel("Some")
	assert.NoError(t, enc.EnumBegin(nil, &label, nil))
	assert.NoError(t, enc.I64(7))
	assert.NoError(t, enc.EnumEnd(nil, &label, nil))
	assert.Equal(t, `7`, buf.String())
}

// Scenario I: control characters and the two named escapes both render
// using their short escape form, not \u00XX, when a short form exists.
func TestEncode_NamedEscapes(t *testing.T) {
	got := encodeOf(t, "a\"b\\c\nd")
	assert.Equal(t, `"a\"b\\c\nd"`, got)
}

func TestEncode_ControlCharUsesUnicodeEscape(t *testing.T) {
	got := encodeOf(t, "a\x01b")
	assert.Equal(t, "\"a\\u0001b\"", got)
}

// Property 6: every finite float64 round-trips through formatFloat in a
// form strconv can parse back to the same bits.
func TestFormatFloat_RoundTrips(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 3.5, 1e300, -1e-300, 123456789.123456} {
		s, err := formatFloat(f)
		assert.NoError(t, err)
		back, err := strconv.ParseFloat(s, 64)
		assert.NoError(t, err)
		assert.Equal(t, f, back)
	}
}

func TestEncode_NestedSeqOfRecords(t *testing.T) {
	type pt struct {
		X int64
		Y int64
	}
	got := encodeOf(t, []pt{{X: 1, Y: 2}, {X: 3, Y: 4}})
	assert.Equal(t, `[{"X":1,"Y":2},{"X":3,"Y":4}]`, got)
}

func TestEncode_MapKeyQuotedEvenWhenNumeric(t *testing.T) {
	got := encodeOf(t, map[int]string{1: "one"})
	assert.Equal(t, `{"1":"one"}`, got)
}

// A map key that opens a composite value (seq, map, record, tuple) is
// rejected rather than silently producing malformed JSON like
// {[1,2]:3}.
func TestEncode_RejectsCompositeMapKey(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	one := 1
	assert.NoError(t, enc.MapBegin(&one))
	assert.NoError(t, enc.MapKeyBegin())

	two := 2
	err := enc.SeqBegin(&two)
	assert.True(t, streamval.IsStop(err))
	assert.Error(t, enc.err)
}
