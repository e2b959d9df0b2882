package codec

import (
	"reflect"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Tuple2 is an ordered pair. Tuples encode as JSON arrays whose length
// equals the arity; element i takes the JSON shape of slot i's declared
// type, and element order is preserved.
type Tuple2[T1, T2 any] struct {
	First  T1
	Second T2
}

// Pair returns a Tuple2 of its arguments.
func Pair[T1, T2 any](v1 T1, v2 T2) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{First: v1, Second: v2}
}

// Tuple3 is an ordered triple.
type Tuple3[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

// Triple returns a Tuple3 of its arguments.
func Triple[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{First: v1, Second: v2, Third: v3}
}

// Tuple4 is an ordered quadruple.
type Tuple4[T1, T2, T3, T4 any] struct {
	First  T1
	Second T2
	Third  T3
	Fourth T4
}

// Quad returns a Tuple4 of its arguments.
func Quad[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{First: v1, Second: v2, Third: v3, Fourth: v4}
}

func (Tuple2[T1, T2]) tupleArity() int         { return 2 }
func (Tuple3[T1, T2, T3]) tupleArity() int     { return 3 }
func (Tuple4[T1, T2, T3, T4]) tupleArity() int { return 4 }

// tupleConverter encodes tuples as fixed-length JSON arrays.
type tupleConverter struct{}

func (tupleConverter) canConvert(t reflect.Type) bool { return isTuple(t) }

func (tupleConverter) marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error {
	shape := tupleShapes.Get(val.Type())
	if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
		return err
	}
	for i := range shape.slots {
		if err := jsonv2.MarshalEncode(enc, val.Field(i).Interface(), opts); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.ArrayEnd)
}

// unmarshal reads exactly arity elements and then the closing bracket. An
// array of the wrong length never gets a dedicated arity check: a short
// array fails when an element is expected and the end of the array is found,
// a long one fails when the closing bracket is expected and another element
// is found.
func (tupleConverter) unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error {
	shape := tupleShapes.Get(out.Type())
	cur := cursor{dec}

	if _, err := cur.readExpect('['); err != nil {
		return err
	}
	tup := reflect.New(out.Type()).Elem()
	for i, slot := range shape.slots {
		switch dec.PeekKind() {
		case 'n':
			if _, err := cur.readAny(); err != nil {
				return err
			}
			// The slot keeps its zero value.
		case '"', '0', 't', 'f', '{', '[':
			elem := reflect.New(slot)
			if err := jsonv2.UnmarshalDecode(dec, elem.Interface(), opts); err != nil {
				return err
			}
			tup.Field(i).Set(elem.Elem())
		default:
			return cur.unexpectedValue()
		}
	}
	if _, err := cur.readExpect(']'); err != nil {
		return err
	}
	out.Set(tup)
	return nil
}
