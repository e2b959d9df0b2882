// Package codec implements the converter set: per-type JSON encoding and
// decoding rules for optional values, tuples, closed unions, and a few
// scalar wrapper types, layered on top of the json engine's token reader and
// writer.
package codec

import (
	"reflect"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// converter is one type-directed encoding rule. The engine consults the list
// below in order and the first converter whose canConvert accepts the
// runtime type handles the value.
type converter interface {
	canConvert(t reflect.Type) bool
	marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error
	unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error
}

// converters is the fixed registration order. None of the predicates overlap
// by construction, but more specific converters precede more general ones
// all the same.
var converters = []converter{
	identifierConverter{},
	localeConverter{},
	bigIntConverter{},
	optionConverter{},
	tupleConverter{},
	simpleUnionConverter{},
	complexUnionConverter{},
}

// Marshalers returns the engine marshaler list for the converter set.
func Marshalers() *jsonv2.Marshalers {
	return jsonv2.MarshalFuncV2(func(enc *jsontext.Encoder, val any, opts jsonv2.Options) error {
		// For an interface type parameter the engine passes a pointer to
		// the value being marshaled, not the value itself.
		rv := reflect.ValueOf(val)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return jsonv2.SkipFunc
		}
		rv = rv.Elem()
		if rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return jsonv2.SkipFunc
			}
			// Dispatch on the dynamic type, as for a union field declared
			// with the union's interface type.
			rv = rv.Elem()
		}
		for _, c := range converters {
			if c.canConvert(rv.Type()) {
				return c.marshal(enc, rv, opts)
			}
		}
		return jsonv2.SkipFunc
	})
}

// Unmarshalers returns the engine unmarshaler list for the converter set.
func Unmarshalers() *jsonv2.Unmarshalers {
	return jsonv2.UnmarshalFuncV2(func(dec *jsontext.Decoder, val any, opts jsonv2.Options) error {
		rv := reflect.ValueOf(val)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return jsonv2.SkipFunc
		}
		out := rv.Elem()
		for _, c := range converters {
			if c.canConvert(out.Type()) {
				return c.unmarshal(dec, out, opts)
			}
		}
		return jsonv2.SkipFunc
	})
}
