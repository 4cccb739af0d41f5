package textenc

import (
	"encoding/binary"
	"unicode/utf16"
)

// endianness of a UTF-16/UTF-32 stream. The unmarked encodings start
// as endianUnknown on decode and pick a byte order from a leading BOM,
// defaulting to big-endian when none is present.
type endianness int

const (
	endianUnknown endianness = iota
	endianBig
	endianLittle
)

func (e endianness) byteOrder() binary.ByteOrder {
	if e == endianLittle {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

const (
	surrMin = 0xD800
	surrMax = 0xDFFF
	surrLow = 0xDC00
)

func isSurrogate(r rune) bool { return r >= surrMin && r <= surrMax }

// utf16CharDecoder decodes 2-byte units, combining surrogate pairs.
// initial is the endianness the codec starts a stream with; endian is
// the current stream's resolved order. When bom is set, the first unit
// is probed for a byte-order mark.
type utf16CharDecoder struct {
	initial endianness
	bom     bool
	endian  endianness
	started bool
}

func newUTF16CharDecoder(initial endianness, bom bool) *utf16CharDecoder {
	d := &utf16CharDecoder{initial: initial, bom: bom}
	d.reset()
	return d
}

func (d *utf16CharDecoder) reset() {
	d.endian = d.initial
	d.started = false
}

func (d *utf16CharDecoder) decodeChar(p []byte, atEOF bool) (rune, int, charStatus) {
	if !d.started {
		if d.bom && len(p) < 2 && !atEOF {
			// Not enough bytes to probe for a byte-order mark yet.
			return 0, 0, charShort
		}
		d.started = true
		if d.endian == endianUnknown {
			d.endian = endianBig
		}
		if d.bom && len(p) >= 2 {
			switch {
			case p[0] == 0xFE && p[1] == 0xFF:
				d.endian = endianBig
				return 0, 2, charState
			case p[0] == 0xFF && p[1] == 0xFE:
				d.endian = endianLittle
				return 0, 2, charState
			}
		}
	}
	if len(p) < 2 {
		return 0, 0, charShort
	}
	bo := d.endian.byteOrder()
	u := rune(bo.Uint16(p))
	if !isSurrogate(u) {
		return u, 2, charOK
	}
	if u >= surrLow {
		// Unpaired low surrogate.
		return 0, 2, charInvalid
	}
	if len(p) < 4 {
		return 0, 0, charShort
	}
	u2 := rune(bo.Uint16(p[2:]))
	if u2 < surrLow || u2 > surrMax {
		// High surrogate without a following low surrogate; the high
		// unit alone is the invalid prefix.
		return 0, 2, charInvalid
	}
	return utf16.DecodeRune(u, u2), 4, charOK
}

// utf16CharEncoder encodes runes as 2-byte units in a fixed byte
// order, splitting astral runes into surrogate pairs.
type utf16CharEncoder struct {
	endian endianness
}

func (e utf16CharEncoder) encodeChar(p []byte, r rune) (int, charStatus) {
	if isSurrogate(r) || r > 0x10FFFF {
		return 0, charInvalid
	}
	bo := e.endian.byteOrder()
	if r < 0x10000 {
		bo.PutUint16(p, uint16(r))
		return 2, charOK
	}
	hi, lo := utf16.EncodeRune(r)
	bo.PutUint16(p, uint16(hi))
	bo.PutUint16(p[2:], uint16(lo))
	return 4, charOK
}

// utf16BOMHeader returns the byte-order mark the unmarked UTF-16
// encoding writes at stream start.
func utf16BOMHeader(endian endianness) []byte {
	if endian == endianLittle {
		return []byte{0xFF, 0xFE}
	}
	return []byte{0xFE, 0xFF}
}
