// Package jsonstream renders streamval values as JSON text.
//
// Encoder implements streamval.Stream directly; it needs no intermediate
// tree representation because the token protocol already arrives in
// document order. Only the methods that must say something
// JSON-specific are overridden: object-vs-array bracket choice, comma
// placement, string quoting and escaping, recognizing the NUMBER tag so
// its digits come out unquoted, and the NaN/Infinity rejection strict
// JSON requires that streamval.Defaults' reduction does not enforce on
// its own. Everything else (widening small integers, folding binary data
// into a sequence of bytes, bare tags, unwrapping enums) is
// left to streamval.Defaults, whose tabulated reductions already produce
// exactly the JSON this package wants.
//
// Feed an Encoder through streamval.Validate if the producer is not
// already known to emit well-formed token sequences; Encoder itself does
// no structural validation and will write nonsensical output (or panic
// on a frame-stack underflow) if handed an ill-formed sequence.
package jsonstream
