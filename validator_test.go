package streamval

import "testing"

// discard is a base-only sink that does nothing; it exists so
// validator tests exercise only the validator's own bookkeeping, not a
// real consumer's behavior.
type discard struct{ Defaults }

func newDiscard() *discard {
	d := &discard{}
	d.Defaults = NewDefaults(d)
	return d
}

func (d *discard) Null() error                      { return nil }
func (d *discard) Bool(v bool) error                { return nil }
func (d *discard) I64(v int64) error                { return nil }
func (d *discard) TextBegin(n *int) error            { return nil }
func (d *discard) TextFragmentComputed(s string) error { return nil }
func (d *discard) TextEnd() error                   { return nil }
func (d *discard) SeqBegin(n *int) error             { return nil }
func (d *discard) SeqValueBegin() error              { return nil }
func (d *discard) SeqValueEnd() error                { return nil }
func (d *discard) SeqEnd() error                     { return nil }

func TestValidator_AcceptsWellFormedSeq(t *testing.T) {
	v := Validate(newDiscard())
	one := 1
	if err := v.SeqBegin(&one); err != nil {
		t.Fatalf("SeqBegin: %v", err)
	}
	if err := v.SeqValueBegin(); err != nil {
		t.Fatalf("SeqValueBegin: %v", err)
	}
	if err := v.I64(1); err != nil {
		t.Fatalf("I64: %v", err)
	}
	if err := v.SeqValueEnd(); err != nil {
		t.Fatalf("SeqValueEnd: %v", err)
	}
	if err := v.SeqEnd(); err != nil {
		t.Fatalf("SeqEnd: %v", err)
	}
}

func TestValidator_RejectsScalarDirectlyInsideSeq(t *testing.T) {
	v := Validate(newDiscard())
	one := 1
	if err := v.SeqBegin(&one); err != nil {
		t.Fatalf("SeqBegin: %v", err)
	}
	// A bare I64 without a seq_value_begin/end wrapper violates
	// invariant 2; the validator must reject it, not forward it.
	if err := v.I64(1); !IsStop(err) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
}

func TestValidator_RejectsMismatchedEnd(t *testing.T) {
	v := Validate(newDiscard())
	one := 1
	if err := v.SeqBegin(&one); err != nil {
		t.Fatalf("SeqBegin: %v", err)
	}
	// MapEnd while a Seq frame is open violates invariant 1 (LIFO).
	if err := v.MapEnd(); !IsStop(err) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
}

func TestValidator_RejectsOrphanMapKey(t *testing.T) {
	v := Validate(newDiscard())
	one := 1
	if err := v.MapBegin(&one); err != nil {
		t.Fatalf("MapBegin: %v", err)
	}
	if err := v.MapKeyBegin(); err != nil {
		t.Fatalf("MapKeyBegin: %v", err)
	}
	if err := v.I64(1); err != nil {
		t.Fatalf("I64: %v", err)
	}
	if err := v.MapKeyEnd(); err != nil {
		t.Fatalf("MapKeyEnd: %v", err)
	}
	// MapEnd with a key that never got a matching value violates
	// invariant 3.
	if err := v.MapEnd(); !IsStop(err) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
}

func TestValidator_RejectsSecondTopLevelValue(t *testing.T) {
	v := Validate(newDiscard())
	if err := v.Null(); err != nil {
		t.Fatalf("Null: %v", err)
	}
	// Invariant 7: exactly one logical value at the top level.
	if err := v.Null(); !IsStop(err) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
}

func TestValidator_RejectsEmptyTaggedBracket(t *testing.T) {
	v := Validate(newDiscard())
	if err := v.TaggedBegin(&NUMBER, nil, nil); err != nil {
		t.Fatalf("TaggedBegin: %v", err)
	}
	// tagged_begin/end must wrap exactly one inner value (invariant 6);
	// closing with nothing inside is ill-formed.
	if err := v.TaggedEnd(&NUMBER, nil, nil); !IsStop(err) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
}

func TestValidator_RejectsTextFragmentOutsideText(t *testing.T) {
	v := Validate(newDiscard())
	if err := v.TextFragmentComputed("x"); !IsStop(err) {
		t.Fatalf("expected ErrStop, got %v", err)
	}
}

func TestValidator_AcceptsWellFormedRecord(t *testing.T) {
	v := Validate(newDiscard())
	one := 1
	label := NewLabel("f")
	if err := v.RecordBegin(nil, nil, nil, &one); err != nil {
		t.Fatalf("RecordBegin: %v", err)
	}
	if err := v.RecordValueBegin(nil, label); err != nil {
		t.Fatalf("RecordValueBegin: %v", err)
	}
	if err := v.I64(1); err != nil {
		t.Fatalf("I64: %v", err)
	}
	if err := v.RecordValueEnd(nil, label); err != nil {
		t.Fatalf("RecordValueEnd: %v", err)
	}
	if err := v.RecordEnd(nil, nil, nil); err != nil {
		t.Fatalf("RecordEnd: %v", err)
	}
}
