package textenc

// FailureMode selects what happens when a byte sequence cannot be
// decoded or a character cannot be encoded. The mode is fixed when a
// codec is built and applies for the codec's whole lifetime.
type FailureMode int

const (
	// FailureError treats unconvertible input as a hard failure.
	FailureError FailureMode = iota

	// FailureIgnore silently drops the offending unit(s).
	FailureIgnore

	// FailureTransliterate replaces the offending unit(s) with a
	// substitute: U+FFFD when decoding, '?' when encoding.
	FailureTransliterate

	// FailureSurrogateEscape round-trips undecodable bytes losslessly:
	// each invalid byte b decodes to the rune escapeBase+b, and any
	// rune in the escape range encodes back to its low byte.
	FailureSurrogateEscape
)

// String returns the resolver suffix spelling of the mode.
func (m FailureMode) String() string {
	switch m {
	case FailureError:
		return "error"
	case FailureIgnore:
		return "ignore"
	case FailureTransliterate:
		return "translit"
	case FailureSurrogateEscape:
		return "surrogate"
	default:
		return "unknown"
	}
}

const (
	// replacementRune is emitted on the decode side under
	// FailureTransliterate.
	replacementRune = '�'

	// substituteRune is encoded on the encode side under
	// FailureTransliterate. Every supported encoding can represent it.
	substituteRune = '?'

	// escapeBase anchors the reserved code-point range used by
	// FailureSurrogateEscape. Byte b maps to escapeBase+b; the full
	// range [escapeBase, escapeBase+0xFF] maps back byte-exactly.
	escapeBase rune = 0xDC00
)

// escapeByte maps an undecodable byte into the reserved range.
func escapeByte(b byte) rune { return escapeBase + rune(b) }

// unescapeRune recovers the original byte from an escape rune.
// ok is false when r is outside the reserved range.
func unescapeRune(r rune) (byte, bool) {
	if r < escapeBase || r > escapeBase+0xFF {
		return 0, false
	}
	return byte(r - escapeBase), true
}
