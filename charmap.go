package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// charmapCharDecoder adapts a single-byte x/text charmap table to the
// per-char primitive. Bytes the table leaves undefined decode to the
// replacement rune, which is how the table reports "no mapping".
type charmapCharDecoder struct {
	cm *charmap.Charmap
}

func (charmapCharDecoder) reset() {}

func (d charmapCharDecoder) decodeChar(p []byte, atEOF bool) (rune, int, charStatus) {
	if len(p) == 0 {
		return 0, 0, charShort
	}
	r := d.cm.DecodeByte(p[0])
	if r == utf8.RuneError {
		return 0, 1, charInvalid
	}
	return r, 1, charOK
}

type charmapCharEncoder struct {
	cm *charmap.Charmap
}

func (e charmapCharEncoder) encodeChar(p []byte, r rune) (int, charStatus) {
	b, ok := e.cm.EncodeRune(r)
	if !ok {
		return 0, charInvalid
	}
	p[0] = b
	return 1, charOK
}

// charmapEncoding wraps an x/text single-byte table as an Encoding
// running under the uniform failure layer. name should be the table's
// canonical (IANA or code-page) name.
func charmapEncoding(name string, cm *charmap.Charmap, mode FailureMode) *Encoding {
	return NewEncoding(name,
		func() Encoder { return newEncoder(name, charmapCharEncoder{cm}, nil, mode) },
		func() Decoder { return newDecoder(name, charmapCharDecoder{cm}, mode) },
	)
}
