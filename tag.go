package streamval

import "unicode/utf8"

// Tag is a user-defined semantic marker attached to a value, a Label, or
// an Index. Tags are compared by structural equality and are meant to
// live as package-level constants for the lifetime of a program; nothing
// in this package ever mutates one after construction.
type Tag struct {
	name string
	id   int64
	has  bool
}

// NewTag creates a tag from a short printable name. The returned Tag has
// no numeric id; use NewTagID for a tag that also carries one.
func NewTag(name string) Tag {
	return Tag{name: name}
}

// NewTagID creates a tag with both a name and a numeric id.
func NewTagID(name string, id int64) Tag {
	return Tag{name: name, id: id, has: true}
}

// Name returns the tag's printable name.
func (t Tag) Name() string { return t.name }

// ID returns the tag's numeric id and whether one was set.
func (t Tag) ID() (int64, bool) { return t.id, t.has }

// Equal reports structural equality between two tags.
func (t Tag) Equal(other Tag) bool {
	return t.name == other.name && t.has == other.has && t.id == other.id
}

// Reserved tag constants a portable JSON consumer should recognize.
var (
	// NUMBER marks an annotated text fragment as a base-10 decimal
	// floating-point literal, with optional sign, fractional part, and
	// e±exp. Encoders may parse and re-emit it in a native numeric form.
	NUMBER = NewTag("streamval.NUMBER")

	// VALUE_IDENT marks a Label's text as matching the grammar of a
	// source-language identifier.
	VALUE_IDENT = NewTag("streamval.VALUE_IDENT")

	// VALUE_OFFSET marks an Index as a zero-based offset.
	VALUE_OFFSET = NewTag("streamval.VALUE_OFFSET")

	// CONSTANT_SIZED_ARRAY marks a sequence with statically known length.
	CONSTANT_SIZED_ARRAY = NewTag("streamval.CONSTANT_SIZED_ARRAY")

	// RUST_OPTION_SOME marks an enum variant as the conventional
	// "present" discriminant.
	RUST_OPTION_SOME = NewTag("streamval.RUST_OPTION_SOME")

	// RUST_OPTION_NONE marks an enum variant as the conventional
	// "absent" discriminant.
	RUST_OPTION_NONE = NewTag("streamval.RUST_OPTION_NONE")
)

// Label is a field or variant name framing one begin/end bracket pair.
// Equality on labels is equality on their text body; an attached Tag, if
// present, classifies the label (for example, "this text is a valid
// source-language identifier").
type Label struct {
	text string
	tag  *Tag
}

// NewLabel creates a label from text. It panics if text is not valid
// UTF-8, mirroring this package's convention of treating a malformed
// label as a programmer error rather than a recoverable failure.
func NewLabel(text string) Label {
	if !utf8.ValidString(text) {
		panic("streamval: label text is not valid UTF-8")
	}
	return Label{text: text}
}

// NewTaggedLabel creates a label with an attached Tag.
func NewTaggedLabel(text string, tag Tag) Label {
	l := NewLabel(text)
	l.tag = &tag
	return l
}

// Text returns the label's text body.
func (l Label) Text() string { return l.text }

// Tag returns the label's attached tag, if any.
func (l Label) Tag() (Tag, bool) {
	if l.tag == nil {
		return Tag{}, false
	}
	return *l.tag, true
}

// Equal reports whether two labels have the same text.
func (l Label) Equal(other Label) bool { return l.text == other.text }

// Index is a positional marker identifying a tuple slot, an enum
// discriminant, or an offset.
type Index struct {
	value uint64
	tag   *Tag
}

// NewIndex creates an index from a non-negative position.
func NewIndex(value uint64) Index { return Index{value: value} }

// NewTaggedIndex creates an index with an attached Tag.
func NewTaggedIndex(value uint64, tag Tag) Index {
	return Index{value: value, tag: &tag}
}

// Value returns the index's positional value.
func (i Index) Value() uint64 { return i.value }

// Tag returns the index's attached tag, if any.
func (i Index) Tag() (Tag, bool) {
	if i.tag == nil {
		return Tag{}, false
	}
	return *i.tag, true
}
