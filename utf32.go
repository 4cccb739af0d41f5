package textenc

import "encoding/binary"

// utf32CharDecoder decodes 4-byte code units. The unmarked encoding
// probes the first unit for a byte-order mark and defaults to
// big-endian when none is present.
type utf32CharDecoder struct {
	initial endianness
	bom     bool
	endian  endianness
	started bool
}

func newUTF32CharDecoder(initial endianness, bom bool) *utf32CharDecoder {
	d := &utf32CharDecoder{initial: initial, bom: bom}
	d.reset()
	return d
}

func (d *utf32CharDecoder) reset() {
	d.endian = d.initial
	d.started = false
}

func (d *utf32CharDecoder) decodeChar(p []byte, atEOF bool) (rune, int, charStatus) {
	if !d.started {
		if d.bom && len(p) < 4 && !atEOF {
			return 0, 0, charShort
		}
		d.started = true
		if d.endian == endianUnknown {
			d.endian = endianBig
		}
		if d.bom && len(p) >= 4 {
			switch {
			case p[0] == 0x00 && p[1] == 0x00 && p[2] == 0xFE && p[3] == 0xFF:
				d.endian = endianBig
				return 0, 4, charState
			case p[0] == 0xFF && p[1] == 0xFE && p[2] == 0x00 && p[3] == 0x00:
				d.endian = endianLittle
				return 0, 4, charState
			}
		}
	}
	if len(p) < 4 {
		return 0, 0, charShort
	}
	var v uint32
	if d.endian == endianLittle {
		v = binary.LittleEndian.Uint32(p)
	} else {
		v = binary.BigEndian.Uint32(p)
	}
	r := rune(v)
	if v > 0x10FFFF || isSurrogate(r) {
		return 0, 4, charInvalid
	}
	return r, 4, charOK
}

// utf32CharEncoder encodes runes as 4-byte units in a fixed byte order.
type utf32CharEncoder struct {
	endian endianness
}

func (e utf32CharEncoder) encodeChar(p []byte, r rune) (int, charStatus) {
	if isSurrogate(r) || r > 0x10FFFF || r < 0 {
		return 0, charInvalid
	}
	if e.endian == endianLittle {
		binary.LittleEndian.PutUint32(p, uint32(r))
	} else {
		binary.BigEndian.PutUint32(p, uint32(r))
	}
	return 4, charOK
}

// utf32BOMHeader returns the byte-order mark the unmarked UTF-32
// encoding writes at stream start.
func utf32BOMHeader(endian endianness) []byte {
	if endian == endianLittle {
		return []byte{0xFF, 0xFE, 0x00, 0x00}
	}
	return []byte{0x00, 0x00, 0xFE, 0xFF}
}
