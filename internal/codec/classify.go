package codec

import (
	"reflect"

	"github.com/iskandersierra/adtjson/internal/typecache"
	"github.com/iskandersierra/adtjson/internal/uniontab"
)

// optionValue is implemented by every instantiation of Option[T]. The
// methods are unexported so only this package's Option type qualifies.
type optionValue interface {
	isOption()
	optionElem() reflect.Type
	optionGet() (any, bool)
	optionWrap(payload any, present bool) any
}

// tupleValue is implemented by every TupleN instantiation. The slot fields
// of a tuple are the first tupleArity struct fields, in order.
type tupleValue interface {
	tupleArity() int
}

var (
	optionIface = reflect.TypeFor[optionValue]()
	tupleIface  = reflect.TypeFor[tupleValue]()
)

// optionShape describes an optional-wrapper type; nil means "not optional".
type optionShape struct {
	elem reflect.Type // the wrapped type
	zero optionValue  // zero value, used to rebuild wrappers during decode
}

var optionShapes = typecache.New(func(t reflect.Type) *optionShape {
	if t.Kind() != reflect.Struct || !t.Implements(optionIface) {
		return nil
	}
	zero := reflect.Zero(t).Interface().(optionValue)
	return &optionShape{elem: zero.optionElem(), zero: zero}
})

// tupleShape describes a fixed-arity product type; nil means "not a tuple".
type tupleShape struct {
	slots []reflect.Type // declared slot types, in order
}

var tupleShapes = typecache.New(func(t reflect.Type) *tupleShape {
	if t.Kind() != reflect.Struct || !t.Implements(tupleIface) {
		return nil
	}
	arity := reflect.Zero(t).Interface().(tupleValue).tupleArity()
	slots := make([]reflect.Type, arity)
	for i := range slots {
		slots[i] = t.Field(i).Type
	}
	return &tupleShape{slots: slots}
})

func isOption(t reflect.Type) bool { return optionShapes.Get(t) != nil }

func isTuple(t reflect.Type) bool { return tupleShapes.Get(t) != nil }

// isSimpleUnion reports whether t is a registered union all of whose
// variants carry zero fields. The uniontab registry is the memoization here:
// the classification is computed once, at registration.
func isSimpleUnion(t reflect.Type) bool {
	d := uniontab.Lookup(t)
	return d != nil && d.Simple()
}

// isComplexUnion reports whether t is a registered union with at least one
// field-bearing variant. A union with zero variants is neither simple nor
// complex.
func isComplexUnion(t reflect.Type) bool {
	d := uniontab.Lookup(t)
	return d != nil && d.Complex()
}
