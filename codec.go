// Package textenc names Unicode and legacy text encodings, resolves an
// encoding name (with an optional failure-mode suffix such as
// "UTF-8//IGNORE") to a concrete codec, and runs incremental,
// restartable conversion between byte buffers and rune buffers under a
// caller-selected failure policy.
//
// The per-encoding bit-level work is small; the point of the package is
// the layer above it: one codec step contract, one failure-mode
// protocol applied identically by every encoding, and one name grammar.
package textenc

import (
	"github.com/rbaliyan/textenc/buffer"
)

// ByteBuffer is the encoded (byte) side of a conversion.
type ByteBuffer = buffer.Buffer[byte]

// RuneBuffer is the character (rune) side of a conversion.
type RuneBuffer = buffer.Buffer[rune]

// Status classifies the outcome of one codec step.
type Status int

const (
	// InputUnderflow means the source is exhausted and the codec is
	// ready for more input.
	InputUnderflow Status = iota

	// OutputOverflow means the destination filled while the source
	// still holds data; drain the destination and call again.
	OutputOverflow

	// InvalidSequence accompanies a hard failure: unconvertible input
	// under FailureError, or a truncated final chunk in any mode. The
	// returned error distinguishes the two.
	InvalidSequence
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case InputUnderflow:
		return "input underflow"
	case OutputOverflow:
		return "output overflow"
	case InvalidSequence:
		return "invalid sequence"
	default:
		return "unknown"
	}
}

// Decoder converts bytes to runes incrementally. A step consumes as
// much of src as fits in dst, advancing both cursors. atEOF marks src
// as the final chunk: with it set, a trailing partial sequence is a
// TruncatedInputError instead of being buffered for the next call.
//
// A Decoder is a single-owner state machine: calls must be sequenced
// by one goroutine at a time. Distinct decoders are independent.
type Decoder interface {
	Decode(src *ByteBuffer, dst *RuneBuffer, atEOF bool) (Status, error)

	// Reset returns the decoder to its initial state, ready for a new
	// independent stream.
	Reset()
}

// Encoder converts runes to bytes incrementally, with the same step,
// ownership, and Reset contract as Decoder. Rune input has no partial
// sequences, so atEOF only matters for symmetry with Decoder.
type Encoder interface {
	Encode(src *RuneBuffer, dst *ByteBuffer, atEOF bool) (Status, error)
	Reset()
}

// charStatus is the outcome of a single per-character primitive call.
type charStatus int

const (
	// charOK: one character converted.
	charOK charStatus = iota

	// charInvalid: the input begins with a shortest invalid prefix
	// (decode) or the rune is unrepresentable (encode).
	charInvalid

	// charShort: more input bytes are needed to convert the next
	// character.
	charShort

	// charState: bytes were consumed that carry only codec state (a
	// byte-order mark); no character was produced.
	charState
)

// maxCharBytes bounds the bytes one charDecoder call may consume and
// one charEncoder call may produce. Covers a 4-byte UTF-8 sequence, a
// UTF-16 surrogate pair, a UTF-32 unit, and every BOM.
const maxCharBytes = 4

// charDecoder is the per-encoding decode primitive: convert at most
// one character from the front of p. size is the bytes consumed (for
// charInvalid, the length of the shortest invalid prefix). atEOF tells
// a BOM-probing decoder it will get no more bytes than p.
//
// Implementations may be stateful (endianness chosen from a BOM); the
// shared decode driver owns buffering of partial sequences.
type charDecoder interface {
	decodeChar(p []byte, atEOF bool) (r rune, size int, st charStatus)
	reset()
}

// charEncoder is the per-encoding encode primitive: encode r into p,
// which always has room for maxCharBytes.
type charEncoder interface {
	encodeChar(p []byte, r rune) (size int, st charStatus)
}

// decoder drives a charDecoder through the Decoder contract: partial
// sequences split across calls are buffered in pending, and the active
// failure mode is applied here, identically for every encoding.
type decoder struct {
	name     string
	mode     FailureMode
	dec      charDecoder
	pending  [maxCharBytes]byte
	npending int
}

func newDecoder(name string, dec charDecoder, mode FailureMode) *decoder {
	return &decoder{name: name, mode: mode, dec: dec}
}

func (d *decoder) Reset() {
	d.npending = 0
	d.dec.reset()
}

func (d *decoder) Decode(src *ByteBuffer, dst *RuneBuffer, atEOF bool) (Status, error) {
	for {
		// Complete any sequence left pending by an earlier call before
		// touching the source window directly.
		for d.npending > 0 {
			for d.npending < maxCharBytes && src.Len() > 0 {
				d.pending[d.npending] = src.Unread()[0]
				src.Discard(1)
				d.npending++
			}
			st, err := d.step(src, d.pending[:d.npending], dst, atEOF && src.Len() == 0, true)
			if st != statusContinue {
				return st, err
			}
		}

		if src.Len() == 0 {
			return InputUnderflow, nil
		}
		st, err := d.step(src, src.Unread(), dst, atEOF, false)
		if st != statusContinue {
			return st, err
		}
	}
}

// statusContinue is an internal pseudo-status: the step converted or
// skipped something and the driver loop should go around again.
const statusContinue Status = -1

// step converts at most one character from window, which is either the
// pending prefix (fromPending) or the source's unread window. final is
// true when no bytes exist beyond window.
func (d *decoder) step(src *ByteBuffer, window []byte, dst *RuneBuffer, final bool, fromPending bool) (Status, error) {
	if dst.Free() == 0 {
		return OutputOverflow, nil
	}

	r, size, st := d.dec.decodeChar(window, final)
	switch st {
	case charOK:
		dst.Push(r)
		d.consume(src, size, fromPending)
		return statusContinue, nil

	case charState:
		d.consume(src, size, fromPending)
		return statusContinue, nil

	case charShort:
		if final {
			pend := make([]byte, len(window))
			copy(pend, window)
			return InvalidSequence, &TruncatedInputError{Encoding: d.name, Pending: pend}
		}
		if !fromPending {
			// Park the short tail; it is completed on the next call.
			d.npending = copy(d.pending[:], window)
			src.Discard(d.npending)
		}
		return InputUnderflow, nil

	case charInvalid:
		switch d.mode {
		case FailureError:
			bad := make([]byte, size)
			copy(bad, window[:size])
			return InvalidSequence, &InvalidSequenceError{Encoding: d.name, Bytes: bad}
		case FailureIgnore:
			d.consume(src, size, fromPending)
		case FailureTransliterate:
			dst.Push(replacementRune)
			d.consume(src, size, fromPending)
		case FailureSurrogateEscape:
			dst.Push(escapeByte(window[0]))
			d.consume(src, 1, fromPending)
		}
		return statusContinue, nil
	}
	return statusContinue, nil
}

// consume advances past n converted bytes, either by shifting the
// pending prefix or by discarding from the source buffer the direct
// window aliases.
func (d *decoder) consume(src *ByteBuffer, n int, fromPending bool) {
	if fromPending {
		copy(d.pending[:], d.pending[n:d.npending])
		d.npending -= n
		return
	}
	src.Discard(n)
}

// encoder drives a charEncoder through the Encoder contract. header
// holds bytes that must precede the stream (a BOM); bytes that did not
// fit the destination wait in pend until the next call.
type encoder struct {
	name   string
	mode   FailureMode
	enc    charEncoder
	header []byte
	pend   []byte
}

func newEncoder(name string, enc charEncoder, header []byte, mode FailureMode) *encoder {
	e := &encoder{name: name, mode: mode, enc: enc, header: header}
	e.Reset()
	return e
}

func (e *encoder) Reset() {
	e.pend = append(e.pend[:0], e.header...)
}

func (e *encoder) Encode(src *RuneBuffer, dst *ByteBuffer, atEOF bool) (Status, error) {
	if st := e.flush(dst, src.Len() > 0); st != statusContinue {
		return st, nil
	}

	var scratch [maxCharBytes]byte
	for src.Len() > 0 {
		r := src.Unread()[0]
		size, st := e.enc.encodeChar(scratch[:], r)
		if st == charInvalid {
			switch e.mode {
			case FailureError:
				return InvalidSequence, &InvalidSequenceError{Encoding: e.name, Rune: r}
			case FailureIgnore:
				src.Discard(1)
				continue
			case FailureTransliterate:
				size, _ = e.enc.encodeChar(scratch[:], substituteRune)
			case FailureSurrogateEscape:
				b, ok := unescapeRune(r)
				if !ok {
					return InvalidSequence, &InvalidSequenceError{Encoding: e.name, Rune: r}
				}
				scratch[0] = b
				size = 1
			}
		}
		src.Discard(1)
		n := dst.Write(scratch[:size])
		if n < size {
			e.pend = append(e.pend, scratch[n:size]...)
			return OutputOverflow, nil
		}
	}
	return InputUnderflow, nil
}

// flush drains pending output into dst. Returns OutputOverflow when dst
// fills first, InputUnderflow when the pending bytes are gone and the
// source has nothing left, statusContinue otherwise.
func (e *encoder) flush(dst *ByteBuffer, haveInput bool) Status {
	if len(e.pend) > 0 {
		n := dst.Write(e.pend)
		e.pend = e.pend[n:]
		if len(e.pend) > 0 {
			return OutputOverflow
		}
	}
	if !haveInput {
		return InputUnderflow
	}
	return statusContinue
}
