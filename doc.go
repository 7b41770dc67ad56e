// Package streamval implements a producer/consumer protocol for
// streaming structured values through a flat sequence of tokens, with
// no recursion through the consumer itself.
//
// # Producers and consumers
//
// A Value is a producer: something that knows how to emit itself as a
// totally ordered sequence of calls against a Stream. A Stream is a
// consumer: anything that turns that call sequence into a side effect,
// whether that's bytes written, state mutated, or a native value built
// up. The two sides never see each other's internals; they only agree
// on the call sequence.
//
//	streamval.Emit(someStream, someValue)
//
// # Base and extended data models
//
// Ten Stream methods are required: Null, Bool, I64, TextBegin,
// TextFragmentComputed, TextEnd, SeqBegin, SeqValueBegin, SeqValueEnd,
// SeqEnd. Everything else (fixed-width integers, floats, maps, tags,
// records, tuples, record-tuples, enums, and the binary and
// borrowed-text forms) is extended: each one has a canonical reduction
// to the base ten, implemented once in Defaults and inherited by any
// Stream that embeds it. A Stream overrides an extended method only
// when it wants specialized behavior (the jsonstream encoder overrides F64,
// for instance, to reject NaN and Infinity); everything else
// falls through to the reduction.
//
// # Nesting discipline
//
// Begin/end calls nest like brackets: last opened, first closed. No
// method may be called again on a Stream after any method has returned
// ErrStop. Wrap a Stream in Validate during development to turn a
// violation of the nesting rule into an immediate, diagnosable ErrStop
// instead of undefined behavior. Validate does not record that an
// earlier call returned ErrStop, so calls made after one are checked
// for nesting only.
//
// # Package layout
//
// This package is the core contract: Value, Stream, the base/extended
// reductions, the depth validator, and the scalar types (Tag, Label,
// Index, Int128, Uint128) the extended methods need. A worked-example
// consumer, a JSON encoder built directly against Stream, lives in the
// sibling jsonstream package.
package streamval
