// Package adtjson implements type-directed JSON encoding and decoding rules
// for algebraic data types: optional values, fixed-arity tuples, closed
// unions, and several scalar wrapper types. The rules are expressed as an
// ordered set of converters registered with the json engine
// (github.com/go-json-experiment/json); the engine tries the converters in
// order and the first one whose type predicate accepts a runtime type
// handles that value.
//
// The JSON shapes are:
//
//   - An absent Option encodes as null; a present Option encodes exactly as
//     the wrapped value would on its own.
//   - A tuple encodes as a JSON array whose length equals its arity, one
//     element per slot in order.
//   - A union whose variants all carry zero fields encodes as the variant
//     name as a JSON string. Decoding matches variant names exactly first,
//     then case-insensitively, declaration order deciding ties.
//   - A union with field-bearing variants encodes as a single-key object:
//     the key is the variant name (matched exactly on decode) and the value
//     is an object mapping each declared field name to its encoded value.
//     Decoding requires every declared field to appear exactly once, in any
//     order, with no extras.
//   - uuid.UUID encodes as its dashed lowercase form, with uuid.Nil as the
//     empty string. big.Int encodes as its base-10 form quoted as a string.
//     language.Tag encodes as its BCP 47 tag, with language.Und as the
//     empty string and a nil *language.Tag as null.
//
// Unions are declared with RegisterUnion before first use. All other shapes
// are recognized structurally.
package adtjson

import (
	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/iskandersierra/adtjson/internal/codec"
)

// Options returns the engine options that register the converter set, in
// order: identifier, locale, big integer, optional, tuple, simple union,
// complex union. The result can be combined with further engine options via
// jsonv2.JoinOptions, or passed directly to the engine's entry points.
//
// Duplicate object names are left to the converters: the complex union
// converter reports its own duplicate-field error, so the engine's stricter
// token-level check is disabled.
func Options() jsonv2.Options {
	return jsonv2.JoinOptions(
		jsontext.AllowDuplicateNames(true),
		jsonv2.WithMarshalers(codec.Marshalers()),
		jsonv2.WithUnmarshalers(codec.Unmarshalers()),
	)
}

// Marshal encodes in as JSON with the converter set registered. Additional
// engine options may be supplied and are applied after the converter set.
func Marshal(in any, opts ...jsonv2.Options) ([]byte, error) {
	return jsonv2.Marshal(in, join(opts))
}

// MarshalEncode encodes in to enc with the converter set registered.
func MarshalEncode(enc *jsontext.Encoder, in any, opts ...jsonv2.Options) error {
	return jsonv2.MarshalEncode(enc, in, join(opts))
}

// Unmarshal decodes data into out with the converter set registered. Errors
// from the converters propagate unchanged: token-level mismatches surface as
// a *ParseError, unresolvable variant and field names as a *LookupError, and
// malformed scalar literals as the underlying parser's error.
func Unmarshal(data []byte, out any, opts ...jsonv2.Options) error {
	return jsonv2.Unmarshal(data, out, join(opts))
}

// UnmarshalDecode decodes the next value from dec into out with the
// converter set registered.
func UnmarshalDecode(dec *jsontext.Decoder, out any, opts ...jsonv2.Options) error {
	return jsonv2.UnmarshalDecode(dec, out, join(opts))
}

func join(extra []jsonv2.Options) jsonv2.Options {
	if len(extra) == 0 {
		return Options()
	}
	return jsonv2.JoinOptions(append([]jsonv2.Options{Options()}, extra...)...)
}
