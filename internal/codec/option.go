package codec

import (
	"fmt"
	"reflect"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Option is a value that may be present or absent. The zero value is the
// absent Option.
//
// An absent Option encodes as JSON null; a present Option encodes exactly as
// the wrapped value would on its own, with no wrapper artifact in the JSON.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

// None returns the absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the wrapped value and whether it is present. When absent, the
// returned value is the zero value of T.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func (Option[T]) isOption() {}

func (Option[T]) optionElem() reflect.Type { return reflect.TypeFor[T]() }

func (o Option[T]) optionGet() (any, bool) { return o.value, o.some }

func (Option[T]) optionWrap(payload any, present bool) any {
	if !present {
		return Option[T]{}
	}
	return Some(payload.(T))
}

// optionConverter encodes an Option as either null or the wrapped value.
type optionConverter struct{}

func (optionConverter) canConvert(t reflect.Type) bool { return isOption(t) }

func (optionConverter) marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error {
	payload, ok := val.Interface().(optionValue).optionGet()
	if !ok {
		return enc.WriteToken(jsontext.Null)
	}
	return jsonv2.MarshalEncode(enc, payload, opts)
}

func (optionConverter) unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error {
	shape := optionShapes.Get(out.Type())
	if dec.PeekKind() == 'n' {
		if _, err := (cursor{dec}).readAny(); err != nil {
			return err
		}
		out.Set(reflect.ValueOf(shape.zero.optionWrap(nil, false)))
		return nil
	}
	payload := reflect.New(shape.elem)
	if err := jsonv2.UnmarshalDecode(dec, payload.Interface(), opts); err != nil {
		return err
	}
	out.Set(reflect.ValueOf(shape.zero.optionWrap(payload.Elem().Interface(), true)))
	return nil
}
