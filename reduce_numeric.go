package streamval

import (
	"math"
	"strconv"
)

// U8, U16, U32, I8, I16, I32 all reduce to I64 with a widening cast

func (d Defaults) U8(v uint8) error   { return d.Self.I64(int64(v)) }
func (d Defaults) U16(v uint16) error { return d.Self.I64(int64(v)) }
func (d Defaults) U32(v uint32) error { return d.Self.I64(int64(v)) }
func (d Defaults) I8(v int8) error    { return d.Self.I64(int64(v)) }
func (d Defaults) I16(v int16) error  { return d.Self.I64(int64(v)) }
func (d Defaults) I32(v int32) error  { return d.Self.I64(int64(v)) }

// U64 reduces to I64 when representable; otherwise to a base-10 ASCII
// decimal through the text path, tagged NUMBER.
func (d Defaults) U64(v uint64) error {
	if v <= math.MaxInt64 {
		return d.Self.I64(int64(v))
	}
	return numberText(d.Self, strconv.FormatUint(v, 10))
}

// U128 reduces to I64 when representable; otherwise to the NUMBER-tagged
// text path.
func (d Defaults) U128(v Uint128) error {
	if n, ok := v.I64(); ok {
		return d.Self.I64(n)
	}
	return numberText(d.Self, v.Decimal())
}

// I128 reduces to I64 when representable; otherwise to the NUMBER-tagged
// text path.
func (d Defaults) I128(v Int128) error {
	if n, ok := v.I64(); ok {
		return d.Self.I64(n)
	}
	return numberText(d.Self, v.Decimal())
}

// F32 reduces to F64.
func (d Defaults) F32(v float32) error { return d.Self.F64(float64(v)) }

// F64 reduces to a base-10 ASCII shortest-round-trip decimal through the
// text path, tagged NUMBER.
func (d Defaults) F64(v float64) error {
	return numberText(d.Self, strconv.FormatFloat(v, 'g', -1, 64))
}

// numberText emits s as a NUMBER-tagged text value: tagged_begin, then the
// base text_begin/text_fragment_computed/text_end triple, then tagged_end.
// TaggedBegin/TaggedEnd are themselves structurally transparent by
// default (see reduce_tag.go), so an unmodified Defaults-only Stream sees
// exactly the three base text calls plus two no-op bracketing calls; a
// Stream that overrides TaggedBegin/TaggedEnd (like the JSON encoder) can
// recognize the NUMBER tag and render the digits unquoted.
func numberText(s Stream, digits string) error {
	if err := s.TaggedBegin(&NUMBER, nil, nil); err != nil {
		return err
	}
	n := len(digits)
	if err := s.TextBegin(&n); err != nil {
		return err
	}
	if err := s.TextFragmentComputed(digits); err != nil {
		return err
	}
	if err := s.TextEnd(); err != nil {
		return err
	}
	return s.TaggedEnd(&NUMBER, nil, nil)
}
