package streamval

// Tag reduces to Null: a bare tag annotation carries no value of its own.
func (d Defaults) Tag(tag *Tag, label *Label, index *Index) error {
	return d.Self.Null()
}

// TaggedBegin/TaggedEnd are structurally transparent: the default
// reduction is a passthrough of whatever inner value emission happens
// between them, so the default implementation issues no base tokens of
// its own.
func (d Defaults) TaggedBegin(tag *Tag, label *Label, index *Index) error {
	return nil
}

func (d Defaults) TaggedEnd(tag *Tag, label *Label, index *Index) error {
	return nil
}

// EnumBegin/EnumEnd are likewise structurally transparent passthroughs:
// an enum wrapper contributes no tokens of its own, only the value it
// wraps.
func (d Defaults) EnumBegin(tag *Tag, label *Label, index *Index) error {
	return nil
}

func (d Defaults) EnumEnd(tag *Tag, label *Label, index *Index) error {
	return nil
}
