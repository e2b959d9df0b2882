// Package uniontab holds the process-wide table of closed union types: for
// each registered union interface, the ordered set of variant structs and
// their named fields. Descriptors are built once at registration, so
// classifying and resolving a union later is a single map lookup.
package uniontab

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Field describes one named field of a union variant.
type Field struct {
	Name  string // wire name: the json struct tag, or the Go field name
	Index int    // struct field index within the variant type
	Type  reflect.Type
}

// Variant describes one case of a union: a struct type plus its ordered
// field list. A variant with no fields is a plain enumeration case.
type Variant struct {
	Name   string
	Type   reflect.Type
	Fields []Field
}

// Descriptor describes a closed union: an interface type and its variants in
// declaration order.
type Descriptor struct {
	Type     reflect.Type // the union interface type
	Variants []Variant

	hasFieldCase bool
}

// Simple reports whether the union is a closed enumeration of zero-field
// variants. A union with no variants at all is neither simple nor complex.
func (d *Descriptor) Simple() bool {
	return len(d.Variants) > 0 && !d.hasFieldCase
}

// Complex reports whether at least one variant of the union carries fields.
func (d *Descriptor) Complex() bool { return d.hasFieldCase }

type variantEntry struct {
	union   *Descriptor
	variant *Variant
}

var (
	unions   sync.Map // reflect.Type (interface) -> *Descriptor
	variants sync.Map // reflect.Type (struct) -> *variantEntry
)

// Register declares union as a closed set of the given variant types, in
// declaration order. The union type must be an interface, every variant must
// be a named struct type implementing it, and variant names must be unique
// within the union and not claimed by another union. Register panics when
// the declaration is malformed: registration happens during program
// initialization and a bad declaration is a programming error.
//
// Register must be called before the union is first encoded or decoded,
// typically from an init function.
func Register(union reflect.Type, variantTypes ...reflect.Type) *Descriptor {
	if union == nil || union.Kind() != reflect.Interface {
		panic(fmt.Sprintf("uniontab: union type %v is not an interface", union))
	}

	desc := &Descriptor{
		Type:     union,
		Variants: make([]Variant, 0, len(variantTypes)),
	}

	names := make(map[string]struct{}, len(variantTypes))
	for _, vt := range variantTypes {
		if vt == nil || vt.Kind() != reflect.Struct {
			panic(fmt.Sprintf("uniontab: variant %v of union %v is not a struct", vt, union))
		}
		if !vt.Implements(union) {
			panic(fmt.Sprintf("uniontab: variant %v does not implement union %v", vt, union))
		}
		name := vt.Name()
		if name == "" {
			panic(fmt.Sprintf("uniontab: union %v has an unnamed variant type", union))
		}
		if _, dup := names[name]; dup {
			panic(fmt.Sprintf("uniontab: union %v declares variant %q twice", union, name))
		}
		names[name] = struct{}{}

		fields := fieldsOf(vt)
		if len(fields) > 0 {
			desc.hasFieldCase = true
		}
		desc.Variants = append(desc.Variants, Variant{
			Name:   name,
			Type:   vt,
			Fields: fields,
		})
	}

	if _, loaded := unions.LoadOrStore(union, desc); loaded {
		panic(fmt.Sprintf("uniontab: union %v registered twice", union))
	}
	for i := range desc.Variants {
		v := &desc.Variants[i]
		entry := &variantEntry{union: desc, variant: v}
		if prev, loaded := variants.LoadOrStore(v.Type, entry); loaded {
			panic(fmt.Sprintf("uniontab: type %v is already a variant of union %v",
				v.Type, prev.(*variantEntry).union.Type))
		}
	}
	return desc
}

// fieldsOf collects the exported fields of a variant struct in declaration
// order. The wire name comes from the json struct tag when one is present;
// fields tagged json:"-" are excluded.
func fieldsOf(vt reflect.Type) []Field {
	var fields []Field
	for i := 0; i < vt.NumField(); i++ {
		sf := vt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, Field{Name: name, Index: i, Type: sf.Type})
	}
	return fields
}

// Lookup returns the descriptor for the union interface type t, or nil when
// t is not a registered union.
func Lookup(t reflect.Type) *Descriptor {
	if d, ok := unions.Load(t); ok {
		return d.(*Descriptor)
	}
	return nil
}

// LookupVariant resolves a concrete variant type to its union descriptor and
// variant, or (nil, nil) when t is not a registered variant.
func LookupVariant(t reflect.Type) (*Descriptor, *Variant) {
	if e, ok := variants.Load(t); ok {
		entry := e.(*variantEntry)
		return entry.union, entry.variant
	}
	return nil, nil
}
