package codec

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyOption(t *testing.T) {
	require.True(t, isOption(reflect.TypeFor[Option[int]]()))
	require.True(t, isOption(reflect.TypeFor[Option[Option[string]]]()))
	require.False(t, isOption(reflect.TypeFor[int]()))
	require.False(t, isOption(reflect.TypeFor[*Option[int]]()))

	shape := optionShapes.Get(reflect.TypeFor[Option[[]byte]]())
	require.Equal(t, reflect.TypeFor[[]byte](), shape.elem)
}

func TestClassifyTuple(t *testing.T) {
	require.True(t, isTuple(reflect.TypeFor[Tuple2[int, string]]()))
	require.True(t, isTuple(reflect.TypeFor[Tuple3[int, int, int]]()))
	require.True(t, isTuple(reflect.TypeFor[Tuple4[int, int, int, int]]()))
	require.False(t, isTuple(reflect.TypeFor[struct{ A, B int }]()))

	shape := tupleShapes.Get(reflect.TypeFor[Tuple3[int, bool, string]]())
	require.Equal(t, []reflect.Type{
		reflect.TypeFor[int](),
		reflect.TypeFor[bool](),
		reflect.TypeFor[string](),
	}, shape.slots)
}

// The union types are registered in union_test.go.
func TestClassifyUnion(t *testing.T) {
	require.True(t, isSimpleUnion(reflect.TypeFor[color]()))
	require.False(t, isComplexUnion(reflect.TypeFor[color]()))

	require.True(t, isComplexUnion(reflect.TypeFor[opResult]()))
	require.False(t, isSimpleUnion(reflect.TypeFor[opResult]()))

	// Unregistered interfaces are not unions.
	require.False(t, isSimpleUnion(reflect.TypeFor[any]()))
	require.False(t, isComplexUnion(reflect.TypeFor[any]()))
}

// Exactly one converter accepts each supported type, and the shape
// categories never overlap.
func TestConverterExclusivity(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[Option[int]](),
		reflect.TypeFor[Tuple2[int, string]](),
		reflect.TypeFor[color](),
		reflect.TypeFor[opResult](),
	}

	for _, rt := range types {
		matches := 0
		for _, c := range converters {
			if c.canConvert(rt) {
				matches++
			}
		}
		require.Equalf(t, 1, matches, "type %v", rt)
	}
}
