package codec

import (
	"fmt"
	"reflect"
	"strings"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/iskandersierra/adtjson/internal/uniontab"
)

// descriptorFor resolves t, which is either a union interface type or a
// concrete variant type, to its union descriptor.
func descriptorFor(t reflect.Type) *uniontab.Descriptor {
	if d := uniontab.Lookup(t); d != nil {
		return d
	}
	d, _ := uniontab.LookupVariant(t)
	return d
}

// assign stores a decoded variant value into out, which holds either the
// union interface type or the variant's own struct type.
func assign(out, variant reflect.Value) error {
	if !variant.Type().AssignableTo(out.Type()) {
		return fmt.Errorf("cannot store variant %v into %v", variant.Type(), out.Type())
	}
	out.Set(variant)
	return nil
}

// simpleUnionConverter encodes unions whose variants all carry zero fields.
// The JSON form is the variant name as a string.
type simpleUnionConverter struct{}

func (simpleUnionConverter) canConvert(t reflect.Type) bool {
	if isSimpleUnion(t) {
		return true
	}
	if d, _ := uniontab.LookupVariant(t); d != nil {
		return d.Simple()
	}
	return false
}

func (simpleUnionConverter) marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error {
	_, variant := uniontab.LookupVariant(val.Type())
	if variant == nil {
		return fmt.Errorf("%v is not a registered union variant", val.Type())
	}
	return enc.WriteToken(jsontext.String(variant.Name))
}

func (simpleUnionConverter) unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error {
	desc := descriptorFor(out.Type())

	var name string
	if err := jsonv2.UnmarshalDecode(dec, &name, opts); err != nil {
		return err
	}

	variant := matchVariant(desc, name)
	if variant == nil {
		return &LookupError{Reason: NoSuchVariant, Type: desc.Type, Name: name}
	}
	return assign(out, reflect.New(variant.Type).Elem())
}

// matchVariant resolves name against the union's variants: an exact match
// first, then a case-insensitive match, declaration order deciding ties.
func matchVariant(desc *uniontab.Descriptor, name string) *uniontab.Variant {
	for i := range desc.Variants {
		if desc.Variants[i].Name == name {
			return &desc.Variants[i]
		}
	}
	for i := range desc.Variants {
		if strings.EqualFold(desc.Variants[i].Name, name) {
			return &desc.Variants[i]
		}
	}
	return nil
}

// complexUnionConverter encodes unions with at least one field-bearing
// variant. The JSON form is a single-key object: the key is the variant name
// and the value is an object mapping each declared field name to its encoded
// value, in declared field order.
type complexUnionConverter struct{}

func (complexUnionConverter) canConvert(t reflect.Type) bool {
	if isComplexUnion(t) {
		return true
	}
	if d, _ := uniontab.LookupVariant(t); d != nil {
		return d.Complex()
	}
	return false
}

func (complexUnionConverter) marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error {
	_, variant := uniontab.LookupVariant(val.Type())
	if variant == nil {
		return fmt.Errorf("%v is not a registered union variant", val.Type())
	}

	if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String(variant.Name)); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	for _, f := range variant.Fields {
		if err := enc.WriteToken(jsontext.String(f.Name)); err != nil {
			return err
		}
		if err := jsonv2.MarshalEncode(enc, val.Field(f.Index).Interface(), opts); err != nil {
			return err
		}
	}
	if err := enc.WriteToken(jsontext.ObjectEnd); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.ObjectEnd)
}

// unmarshal reads the single-key object form in one strict pass. Variant
// keys match exactly with no case-insensitive fallback: the field names
// inside must also match exactly, so a sloppily-cased key has no coherent
// reading. Every declared field of the matched variant must appear exactly
// once, in any order.
func (complexUnionConverter) unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error {
	desc := descriptorFor(out.Type())
	cur := cursor{dec}

	if _, err := cur.readExpect('{'); err != nil {
		return err
	}
	nameTok, err := cur.readExpect('"')
	if err != nil {
		return err
	}
	variantName := nameTok.String()
	if _, err := cur.readExpect('{'); err != nil {
		return err
	}

	var variant *uniontab.Variant
	for i := range desc.Variants {
		if desc.Variants[i].Name == variantName {
			variant = &desc.Variants[i]
			break
		}
	}
	if variant == nil {
		return &LookupError{Reason: NoSuchVariant, Type: desc.Type, Name: variantName}
	}

	value := reflect.New(variant.Type).Elem()
	seen := make([]bool, len(variant.Fields))

	// The loop is bounded by the declared field count, not by looking for
	// the object end. An object with fewer properties than declared fails as
	// a token mismatch when the next field name is expected; extra
	// properties fail below when the object end is expected.
	for remaining := len(variant.Fields); remaining > 0; remaining-- {
		keyTok, err := cur.readExpect('"')
		if err != nil {
			return err
		}
		key := keyTok.String()

		idx := -1
		for i := range variant.Fields {
			if variant.Fields[i].Name == key {
				idx = i
				break
			}
		}
		if idx < 0 {
			return &LookupError{Reason: UnknownField, Type: desc.Type, Variant: variant.Name, Name: key}
		}
		if seen[idx] {
			return &LookupError{Reason: DuplicateField, Type: desc.Type, Variant: variant.Name, Name: key}
		}
		seen[idx] = true

		field := variant.Fields[idx]
		switch dec.PeekKind() {
		case 'n':
			if _, err := cur.readAny(); err != nil {
				return err
			}
			// The field keeps its zero value.
		case '"', '0', 't', 'f', '{', '[':
			fv := reflect.New(field.Type)
			if err := jsonv2.UnmarshalDecode(dec, fv.Interface(), opts); err != nil {
				return err
			}
			value.Field(field.Index).Set(fv.Elem())
		default:
			return cur.unexpectedValue()
		}
	}

	if _, err := cur.readExpect('}'); err != nil {
		return err
	}
	if _, err := cur.readExpect('}'); err != nil {
		return err
	}
	return assign(out, value)
}
