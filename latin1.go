package textenc

// latin1CharDecoder maps every byte straight to the code point of the
// same value; there is no invalid input on the decode side.
type latin1CharDecoder struct{}

func (latin1CharDecoder) reset() {}

func (latin1CharDecoder) decodeChar(p []byte, atEOF bool) (rune, int, charStatus) {
	if len(p) == 0 {
		return 0, 0, charShort
	}
	return rune(p[0]), 1, charOK
}

type latin1CharEncoder struct{}

func (latin1CharEncoder) encodeChar(p []byte, r rune) (int, charStatus) {
	if r < 0 || r > 0xFF {
		return 0, charInvalid
	}
	p[0] = byte(r)
	return 1, charOK
}
