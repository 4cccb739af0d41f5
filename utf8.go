package textenc

import (
	"unicode/utf8"
)

// utf8BOM is the marker utf8BOMEncoding writes at stream start and
// strips from stream start on decode.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type utf8CharDecoder struct{}

func (utf8CharDecoder) reset() {}

func (utf8CharDecoder) decodeChar(p []byte, atEOF bool) (rune, int, charStatus) {
	if !utf8.FullRune(p) {
		// An invalid first byte counts as a full (error) rune, so a
		// short report here always means a truncated valid prefix.
		return 0, 0, charShort
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size == 1 {
		return 0, 1, charInvalid
	}
	return r, size, charOK
}

type utf8CharEncoder struct{}

func (utf8CharEncoder) encodeChar(p []byte, r rune) (int, charStatus) {
	if !utf8.ValidRune(r) {
		return 0, charInvalid
	}
	return utf8.EncodeRune(p, r), charOK
}

// utf8BOMCharDecoder strips one leading byte-order mark if present and
// otherwise decodes exactly as UTF-8.
type utf8BOMCharDecoder struct {
	started bool
}

func (d *utf8BOMCharDecoder) reset() { d.started = false }

func (d *utf8BOMCharDecoder) decodeChar(p []byte, atEOF bool) (rune, int, charStatus) {
	if !d.started {
		switch {
		case len(p) >= len(utf8BOM):
			d.started = true
			if isPrefix(p, utf8BOM) {
				return 0, len(utf8BOM), charState
			}
		case isPrefix(utf8BOM, p) && !atEOF:
			// Could still become a BOM; wait for more bytes.
			return 0, 0, charShort
		default:
			// Too short and not a BOM prefix, or the stream ends here:
			// the bytes are data.
			d.started = true
		}
	}
	return utf8CharDecoder{}.decodeChar(p, atEOF)
}

// isPrefix reports whether p begins with prefix.
func isPrefix(p, prefix []byte) bool {
	if len(p) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if p[i] != b {
			return false
		}
	}
	return true
}
