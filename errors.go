package adtjson

import "github.com/iskandersierra/adtjson/internal/codec"

// ParseError reports a mismatch between the JSON token stream and the
// structure a converter expects. Match it with errors.As.
type ParseError = codec.ParseError

// LookupError reports a variant or field name in the input that does not
// resolve against the declared shape of the target union type.
type LookupError = codec.LookupError

// LookupReason classifies a LookupError.
type LookupReason = codec.LookupReason

// Supported lookup failures.
const (
	NoSuchVariant  = codec.NoSuchVariant
	UnknownField   = codec.UnknownField
	DuplicateField = codec.DuplicateField
)
