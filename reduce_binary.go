package streamval

// BinaryBegin/BinaryFragmentComputed/BinaryEnd reduce to a seq of u8
// values.

func (d Defaults) BinaryBegin(numBytes *int) error {
	return d.Self.SeqBegin(numBytes)
}

func (d Defaults) BinaryFragmentComputed(fragment []byte) error {
	for _, b := range fragment {
		if err := d.Self.SeqValueBegin(); err != nil {
			return err
		}
		if err := d.Self.U8(b); err != nil {
			return err
		}
		if err := d.Self.SeqValueEnd(); err != nil {
			return err
		}
	}
	return nil
}

func (d Defaults) BinaryEnd() error {
	return d.Self.SeqEnd()
}
