package streamval

// Records reduce to a seq of 2-element seqs, each [label-text, value].
// Tuples reduce to a plain seq of values, positional, no labels.
// Record-tuples carry both a label and an index per value; their
// default reduction is the same shape as record's (labels present).

func (d Defaults) RecordBegin(tag *Tag, label *Label, index *Index, numEntries *int) error {
	return d.Self.SeqBegin(numEntries)
}

func (d Defaults) RecordValueBegin(tag *Tag, label Label) error {
	return recordPairValueBegin(d.Self, label.Text())
}

func (d Defaults) RecordValueEnd(tag *Tag, label Label) error {
	return recordPairValueEnd(d.Self)
}

func (d Defaults) RecordEnd(tag *Tag, label *Label, index *Index) error {
	return d.Self.SeqEnd()
}

func (d Defaults) RecordTupleBegin(tag *Tag, label *Label, index *Index, numEntries *int) error {
	return d.Self.SeqBegin(numEntries)
}

func (d Defaults) RecordTupleValueBegin(tag *Tag, label Label, index Index) error {
	return recordPairValueBegin(d.Self, label.Text())
}

func (d Defaults) RecordTupleValueEnd(tag *Tag, label Label, index Index) error {
	return recordPairValueEnd(d.Self)
}

func (d Defaults) RecordTupleEnd(tag *Tag, label *Label, index *Index) error {
	return d.Self.SeqEnd()
}

// recordPairValueBegin opens one [label, value] pair: an outer seq-value
// bracket, an inner 2-element seq, the label emitted as a text value
// filling the first slot, and the second slot left open for the caller's
// subsequent value emission.
func recordPairValueBegin(s Stream, labelText string) error {
	if err := s.SeqValueBegin(); err != nil {
		return err
	}
	two := 2
	if err := s.SeqBegin(&two); err != nil {
		return err
	}
	if err := s.SeqValueBegin(); err != nil {
		return err
	}
	n := len(labelText)
	if err := s.TextBegin(&n); err != nil {
		return err
	}
	if err := s.TextFragmentComputed(labelText); err != nil {
		return err
	}
	if err := s.TextEnd(); err != nil {
		return err
	}
	if err := s.SeqValueEnd(); err != nil {
		return err
	}
	return s.SeqValueBegin()
}

func recordPairValueEnd(s Stream) error {
	if err := s.SeqValueEnd(); err != nil {
		return err
	}
	if err := s.SeqEnd(); err != nil {
		return err
	}
	return s.SeqValueEnd()
}

// Tuples reduce to a plain positional seq: no label is emitted.

func (d Defaults) TupleBegin(tag *Tag, label *Label, index *Index, numEntries *int) error {
	return d.Self.SeqBegin(numEntries)
}

func (d Defaults) TupleValueBegin(tag *Tag, index Index) error {
	return d.Self.SeqValueBegin()
}

func (d Defaults) TupleValueEnd(tag *Tag, index Index) error {
	return d.Self.SeqValueEnd()
}

func (d Defaults) TupleEnd(tag *Tag, label *Label, index *Index) error {
	return d.Self.SeqEnd()
}
