package codec

import (
	"errors"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// cursor is a thin helper over a jsontext.Decoder that turns token-level
// mismatches into ParseErrors carrying the decoder position. Every failure
// is fatal to the current decode call; the cursor never recovers or retries.
type cursor struct {
	dec *jsontext.Decoder
}

// expectCurrent fails unless the next token in the stream has kind want. The
// token is not consumed.
func (c cursor) expectCurrent(want jsontext.Kind) error {
	got := c.dec.PeekKind()
	if got == want {
		return nil
	}
	if got == 0 {
		// No token can be peeked: read to surface the underlying error.
		if _, err := c.dec.ReadToken(); err != nil {
			return c.readFailed(err, want)
		}
	}
	return c.mismatch(got, want)
}

// readExpect consumes the next token and fails unless it has kind want,
// distinguishing end of input from a wrong token kind.
func (c cursor) readExpect(want jsontext.Kind) (jsontext.Token, error) {
	tok, err := c.dec.ReadToken()
	if err != nil {
		return jsontext.Token{}, c.readFailed(err, want)
	}
	if got := tok.Kind(); got != want {
		return jsontext.Token{}, c.mismatch(got, want)
	}
	return tok, nil
}

// readAny consumes the next token of any kind, failing only when no token
// can be read.
func (c cursor) readAny() (jsontext.Token, error) {
	tok, err := c.dec.ReadToken()
	if err != nil {
		return jsontext.Token{}, c.readFailed(err, 0)
	}
	return tok, nil
}

// unexpectedValue reports the next token as unexpected in a position where a
// value was required. When no token can be read, the underlying reader error
// is surfaced instead.
func (c cursor) unexpectedValue() error {
	got := c.dec.PeekKind()
	if got == 0 {
		if _, err := c.dec.ReadToken(); err != nil {
			return c.readFailed(err, 0)
		}
	}
	return c.mismatch(got, 0)
}

func (c cursor) mismatch(got, want jsontext.Kind) error {
	return &ParseError{
		Want:    want,
		Got:     got,
		Pointer: string(c.dec.StackPointer()),
		Offset:  c.dec.InputOffset(),
	}
}

func (c cursor) readFailed(err error, want jsontext.Kind) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{
			Want:    want,
			Pointer: string(c.dec.StackPointer()),
			Offset:  c.dec.InputOffset(),
			Err:     err,
		}
	}
	// Malformed input: the engine's own syntactic error already carries the
	// position, so it propagates unchanged.
	return err
}
