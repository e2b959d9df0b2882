package codec

import (
	"fmt"
	"math/big"
	"reflect"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

var (
	uuidType   = reflect.TypeFor[uuid.UUID]()
	bigIntType = reflect.TypeFor[big.Int]()
	bigIntPtr  = reflect.TypeFor[*big.Int]()
	localeType = reflect.TypeFor[language.Tag]()
	localePtr  = reflect.TypeFor[*language.Tag]()
)

// identifierConverter maps uuid.UUID to and from its textual JSON forms. The
// canonical encoding is the dashed lowercase form, with uuid.Nil written as
// the empty string. Decoding accepts null, the empty string, and any of the
// standard textual forms: dashed, braced, urn-prefixed, parenthesized, and
// undashed hex. Non-canonical forms decode but do not round-trip
// byte-for-byte.
type identifierConverter struct{}

func (identifierConverter) canConvert(t reflect.Type) bool { return t == uuidType }

func (identifierConverter) marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error {
	id := val.Interface().(uuid.UUID)
	if id == uuid.Nil {
		return enc.WriteToken(jsontext.String(""))
	}
	return enc.WriteToken(jsontext.String(id.String()))
}

func (identifierConverter) unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error {
	cur := cursor{dec}
	tok, err := cur.readAny()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		out.Set(reflect.ValueOf(uuid.Nil))
		return nil
	case '"':
		s := tok.String()
		if s == "" {
			out.Set(reflect.ValueOf(uuid.Nil))
			return nil
		}
		if len(s) > 1 && s[0] == '(' && s[len(s)-1] == ')' {
			s = s[1 : len(s)-1]
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return err
		}
		out.Set(reflect.ValueOf(id))
		return nil
	default:
		return cur.mismatch(tok.Kind(), '"')
	}
}

// bigIntConverter maps big.Int to and from its quoted base-10 form. The
// value travels as a JSON string so arbitrary magnitudes survive readers
// that parse JSON numbers as float64. A nil *big.Int maps to JSON null.
type bigIntConverter struct{}

func (bigIntConverter) canConvert(t reflect.Type) bool {
	return t == bigIntType || t == bigIntPtr
}

func (bigIntConverter) marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error {
	if val.Type() == bigIntPtr {
		p := val.Interface().(*big.Int)
		if p == nil {
			return enc.WriteToken(jsontext.Null)
		}
		return enc.WriteToken(jsontext.String(p.String()))
	}
	n := val.Interface().(big.Int)
	return enc.WriteToken(jsontext.String(n.String()))
}

func (bigIntConverter) unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error {
	cur := cursor{dec}
	tok, err := cur.readAny()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		if out.Type() == bigIntPtr {
			out.Set(reflect.Zero(bigIntPtr))
			return nil
		}
		return cur.mismatch('n', '"')
	case '"':
		n, ok := new(big.Int).SetString(tok.String(), 10)
		if !ok {
			return fmt.Errorf("cannot parse %q as a base-10 integer", tok.String())
		}
		if out.Type() == bigIntPtr {
			out.Set(reflect.ValueOf(n))
		} else {
			out.Set(reflect.ValueOf(*n))
		}
		return nil
	default:
		return cur.mismatch(tok.Kind(), '"')
	}
}

// localeConverter maps language.Tag to and from BCP 47 strings. The
// undetermined tag language.Und is the distinguished default locale and maps
// to the empty string; a nil *language.Tag maps to JSON null. Decoding null
// into a non-pointer language.Tag yields language.Und, since a Go value type
// cannot represent null.
type localeConverter struct{}

func (localeConverter) canConvert(t reflect.Type) bool {
	return t == localeType || t == localePtr
}

func (localeConverter) marshal(enc *jsontext.Encoder, val reflect.Value, opts jsonv2.Options) error {
	var tag language.Tag
	if val.Type() == localePtr {
		p := val.Interface().(*language.Tag)
		if p == nil {
			return enc.WriteToken(jsontext.Null)
		}
		tag = *p
	} else {
		tag = val.Interface().(language.Tag)
	}
	if tag == language.Und {
		return enc.WriteToken(jsontext.String(""))
	}
	return enc.WriteToken(jsontext.String(tag.String()))
}

func (localeConverter) unmarshal(dec *jsontext.Decoder, out reflect.Value, opts jsonv2.Options) error {
	cur := cursor{dec}
	tok, err := cur.readAny()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		if out.Type() == localePtr {
			out.Set(reflect.Zero(localePtr))
			return nil
		}
		out.Set(reflect.ValueOf(language.Und))
		return nil
	case '"':
		tag := language.Und
		if s := tok.String(); s != "" {
			tag, err = language.Parse(s)
			if err != nil {
				return err
			}
		}
		if out.Type() == localePtr {
			out.Set(reflect.ValueOf(&tag))
			return nil
		}
		out.Set(reflect.ValueOf(tag))
		return nil
	default:
		return cur.mismatch(tok.Kind(), '"')
	}
}
