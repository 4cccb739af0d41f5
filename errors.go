package textenc

import (
	"errors"
	"fmt"
)

// Sentinel errors for encoding operations.
// Use errors.Is() to check for these errors as they may be wrapped.
var (
	// ErrUnknownEncoding is returned when a name resolves to no
	// built-in or platform encoding.
	ErrUnknownEncoding = errors.New("textenc: unknown encoding")

	// ErrInvalidSequence is returned when input cannot be converted
	// and the codec's failure mode is FailureError.
	ErrInvalidSequence = errors.New("textenc: invalid sequence")

	// ErrTruncatedInput is returned when the final input chunk ends
	// inside a multi-unit sequence. This is a hard failure in every
	// failure mode.
	ErrTruncatedInput = errors.New("textenc: truncated input")
)

// UnknownEncodingError reports a name that resolved to nothing. Name is
// the literal string the caller passed, unmodified, so it can be shown
// or logged as-is.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("textenc: encoding %q does not exist", e.Name)
}

func (e *UnknownEncodingError) Unwrap() error {
	return ErrUnknownEncoding
}

// IsUnknownEncoding checks if an error indicates an unresolvable name.
func IsUnknownEncoding(err error) bool {
	return errors.Is(err, ErrUnknownEncoding)
}

// InvalidSequenceError provides details about the unit that could not
// be converted. For a decode failure Bytes holds the shortest invalid
// input prefix; for an encode failure Rune holds the unrepresentable
// character.
type InvalidSequenceError struct {
	Encoding string
	Bytes    []byte
	Rune     rune
}

func (e *InvalidSequenceError) Error() string {
	if len(e.Bytes) > 0 {
		return fmt.Sprintf("textenc: %s: invalid byte sequence % X", e.Encoding, e.Bytes)
	}
	return fmt.Sprintf("textenc: %s: cannot encode %q (U+%04X)", e.Encoding, e.Rune, e.Rune)
}

func (e *InvalidSequenceError) Unwrap() error {
	return ErrInvalidSequence
}

// IsInvalidSequence checks if an error indicates unconvertible input
// under the error failure mode.
func IsInvalidSequence(err error) bool {
	return errors.Is(err, ErrInvalidSequence)
}

// TruncatedInputError reports an incomplete multi-unit sequence left
// pending when the stream ended. Pending holds the buffered bytes.
type TruncatedInputError struct {
	Encoding string
	Pending  []byte
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("textenc: %s: stream ends inside a sequence (pending % X)", e.Encoding, e.Pending)
}

func (e *TruncatedInputError) Unwrap() error {
	return ErrTruncatedInput
}

// IsTruncatedInput checks if an error indicates an incomplete sequence
// at end of stream.
func IsTruncatedInput(err error) bool {
	return errors.Is(err, ErrTruncatedInput)
}
