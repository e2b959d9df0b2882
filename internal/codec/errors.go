package codec

import (
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json/jsontext"
)

// ParseError reports a mismatch between the JSON token stream and the
// structure a converter expects. It carries the decoder position at the time
// of failure so the caller can locate the offending input.
type ParseError struct {
	// Want is the token kind the converter required. Want is zero when any
	// value token would have been accepted.
	Want jsontext.Kind

	// Got is the token kind actually present. Got is zero when the input
	// ended before a token could be read.
	Got jsontext.Kind

	// Pointer is the JSON Pointer (RFC 6901) of the decoder position.
	Pointer string

	// Offset is the byte offset into the input.
	Offset int64

	// Err is the underlying reader error, if any.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	pos := fmt.Sprintf("at %q (byte %d)", e.Pointer, e.Offset)
	switch {
	case e.Got == 0 && e.Want != 0:
		return fmt.Sprintf("unexpected end of input %s: want %v", pos, e.Want)
	case e.Got == 0:
		return fmt.Sprintf("unexpected end of input %s", pos)
	case e.Want == 0:
		return fmt.Sprintf("unexpected %v token %s", e.Got, pos)
	default:
		return fmt.Sprintf("unexpected %v token %s: want %v", e.Got, pos, e.Want)
	}
}

// Unwrap returns the underlying reader error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// LookupReason classifies a LookupError.
type LookupReason int

// Supported lookup failures.
const (
	// NoSuchVariant: the input named a variant the union does not declare.
	NoSuchVariant LookupReason = iota + 1
	// UnknownField: the input named a field the matched variant does not
	// declare.
	UnknownField
	// DuplicateField: the input supplied the same field more than once.
	DuplicateField
)

// LookupError reports an identifier in the input that does not resolve
// against the declared shape of the target union type.
type LookupError struct {
	Reason LookupReason

	// Type is the union type being decoded.
	Type reflect.Type

	// Variant is the name of the matched variant. It is empty for
	// NoSuchVariant, where no variant matched at all.
	Variant string

	// Name is the offending variant or field name from the input.
	Name string
}

// Error implements error.
func (e *LookupError) Error() string {
	switch e.Reason {
	case NoSuchVariant:
		return fmt.Sprintf("union %v has no variant named %q", e.Type, e.Name)
	case UnknownField:
		return fmt.Sprintf("variant %q of union %v has no field named %q", e.Variant, e.Type, e.Name)
	case DuplicateField:
		return fmt.Sprintf("duplicate field %q for variant %q of union %v", e.Name, e.Variant, e.Type)
	}
	return fmt.Sprintf("cannot resolve %q against %v", e.Name, e.Type)
}
