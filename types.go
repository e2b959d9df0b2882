package adtjson

import (
	"reflect"

	"github.com/iskandersierra/adtjson/internal/codec"
	"github.com/iskandersierra/adtjson/internal/uniontab"
)

// Option is a value that may be present or absent. The zero value is the
// absent Option. See the package documentation for its JSON form.
type Option[T any] = codec.Option[T]

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return codec.Some(v) }

// None returns the absent Option.
func None[T any]() Option[T] { return codec.None[T]() }

// Tuple2 is an ordered pair. See the package documentation for its JSON
// form.
type Tuple2[T1, T2 any] = codec.Tuple2[T1, T2]

// Tuple3 is an ordered triple.
type Tuple3[T1, T2, T3 any] = codec.Tuple3[T1, T2, T3]

// Tuple4 is an ordered quadruple.
type Tuple4[T1, T2, T3, T4 any] = codec.Tuple4[T1, T2, T3, T4]

// Pair returns a Tuple2 of its arguments.
func Pair[T1, T2 any](v1 T1, v2 T2) Tuple2[T1, T2] {
	return codec.Pair(v1, v2)
}

// Triple returns a Tuple3 of its arguments.
func Triple[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Tuple3[T1, T2, T3] {
	return codec.Triple(v1, v2, v3)
}

// Quad returns a Tuple4 of its arguments.
func Quad[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Tuple4[T1, T2, T3, T4] {
	return codec.Quad(v1, v2, v3, v4)
}

// RegisterUnion declares the interface type U as a closed union of the given
// variants, in declaration order. Each argument's dynamic type must be a
// named struct implementing U; the struct type name is the variant name on
// the wire, and field names come from json struct tags (falling back to the
// Go field name). RegisterUnion panics on a malformed declaration.
//
// RegisterUnion must be called before values of U are first encoded or
// decoded, typically from an init function:
//
//	type Shape interface{ isShape() }
//
//	type Circle struct {
//		Radius float64 `json:"radius"`
//	}
//
//	type Rect struct {
//		Width  float64 `json:"width"`
//		Height float64 `json:"height"`
//	}
//
//	func (Circle) isShape() {}
//	func (Rect) isShape()   {}
//
//	func init() {
//		adtjson.RegisterUnion[Shape](Circle{}, Rect{})
//	}
func RegisterUnion[U any](variants ...U) {
	types := make([]reflect.Type, len(variants))
	for i, v := range variants {
		types[i] = reflect.TypeOf(v)
	}
	uniontab.Register(reflect.TypeFor[U](), types...)
}
