package uniontab_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iskandersierra/adtjson/internal/uniontab"
)

type fruit interface{ isFruit() }

type Apple struct{}
type Banana struct{}

func (Apple) isFruit()  {}
func (Banana) isFruit() {}

type shape interface{ isShape() }

type Circle struct {
	Radius float64 `json:"radius"`

	hidden  int
	Scratch string `json:"-"`
}

type Rect struct {
	Width  float64
	Height float64 `json:"height,omitempty"`
}

type Dot struct{}

func (Circle) isShape() {}
func (Rect) isShape()   {}
func (Dot) isShape()    {}

type empty interface{ isEmpty() }

var (
	fruitDesc = uniontab.Register(reflect.TypeFor[fruit](),
		reflect.TypeFor[Apple](), reflect.TypeFor[Banana]())
	shapeDesc = uniontab.Register(reflect.TypeFor[shape](),
		reflect.TypeFor[Circle](), reflect.TypeFor[Rect](), reflect.TypeFor[Dot]())
	emptyDesc = uniontab.Register(reflect.TypeFor[empty]())
)

func TestClassification(t *testing.T) {
	require.True(t, fruitDesc.Simple())
	require.False(t, fruitDesc.Complex())

	require.False(t, shapeDesc.Simple())
	require.True(t, shapeDesc.Complex())

	// A union with no variants is neither simple nor complex.
	require.False(t, emptyDesc.Simple())
	require.False(t, emptyDesc.Complex())
}

func TestLookup(t *testing.T) {
	require.Same(t, fruitDesc, uniontab.Lookup(reflect.TypeFor[fruit]()))
	require.Nil(t, uniontab.Lookup(reflect.TypeFor[int]()))
	require.Nil(t, uniontab.Lookup(reflect.TypeFor[Apple]()))

	desc, variant := uniontab.LookupVariant(reflect.TypeFor[Banana]())
	require.Same(t, fruitDesc, desc)
	require.Equal(t, "Banana", variant.Name)

	desc, variant = uniontab.LookupVariant(reflect.TypeFor[int]())
	require.Nil(t, desc)
	require.Nil(t, variant)
}

func TestVariantFields(t *testing.T) {
	_, circle := uniontab.LookupVariant(reflect.TypeFor[Circle]())
	require.Len(t, circle.Fields, 1)
	require.Equal(t, "radius", circle.Fields[0].Name)
	require.Equal(t, 0, circle.Fields[0].Index)
	require.Equal(t, reflect.TypeFor[float64](), circle.Fields[0].Type)

	// Untagged fields keep their Go name; tag options after the comma are
	// ignored.
	_, rect := uniontab.LookupVariant(reflect.TypeFor[Rect]())
	require.Len(t, rect.Fields, 2)
	require.Equal(t, "Width", rect.Fields[0].Name)
	require.Equal(t, "height", rect.Fields[1].Name)

	_, dot := uniontab.LookupVariant(reflect.TypeFor[Dot]())
	require.Empty(t, dot.Fields)
}

func TestRegisterPanics(t *testing.T) {
	type notAnInterface struct{}

	require.Panics(t, func() {
		uniontab.Register(reflect.TypeFor[notAnInterface]())
	})
	require.Panics(t, func() {
		// Variants must be structs.
		uniontab.Register(reflect.TypeFor[any](), reflect.TypeFor[int]())
	})
	require.Panics(t, func() {
		// fruit is already registered.
		uniontab.Register(reflect.TypeFor[fruit](), reflect.TypeFor[Apple]())
	})

	type otherFruit interface{ isFruit() }
	require.Panics(t, func() {
		// Apple is already a variant of fruit.
		uniontab.Register(reflect.TypeFor[otherFruit](), reflect.TypeFor[Apple]())
	})
}
