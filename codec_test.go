package textenc_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rbaliyan/textenc"
	"github.com/rbaliyan/textenc/buffer"
)

func allBuiltins() []*textenc.Encoding {
	return []*textenc.Encoding{
		textenc.Latin1(),
		textenc.UTF8(),
		textenc.UTF8BOM(),
		textenc.UTF16(),
		textenc.UTF16LE(),
		textenc.UTF16BE(),
		textenc.UTF32(),
		textenc.UTF32LE(),
		textenc.UTF32BE(),
	}
}

func TestRoundTrip(t *testing.T) {
	// Representable in every builtin, Latin-1 included.
	latin := "café à l'île"
	// Includes an astral rune; skipped for Latin-1.
	full := "héllo wörld \U0001F600 ₿"

	for _, enc := range allBuiltins() {
		s := full
		if enc.Name() == "ISO-8859-1" {
			s = latin
		}
		t.Run(enc.Name(), func(t *testing.T) {
			data, err := enc.EncodeString(s)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := enc.DecodeBytes(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got != s {
				t.Fatalf("round trip: got %q want %q", got, s)
			}
		})
	}
}

// TestChunkedDecodeMatchesWhole splits the encoded bytes at every
// position, including inside multi-byte sequences, and checks the
// decoded result is identical to a single-call decode.
func TestChunkedDecodeMatchesWhole(t *testing.T) {
	for _, enc := range []*textenc.Encoding{
		textenc.UTF8(), textenc.UTF8BOM(), textenc.UTF16(), textenc.UTF16BE(), textenc.UTF32LE(),
	} {
		t.Run(enc.Name(), func(t *testing.T) {
			s := "aé€\U0001F600z"
			data, err := enc.EncodeString(s)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			for split := 0; split <= len(data); split++ {
				dec := enc.NewDecoder()
				dst := buffer.New[rune](32)
				var out []rune

				for i, chunk := range [][]byte{data[:split], data[split:]} {
					src := buffer.From(chunk)
					atEOF := i == 1
					for {
						st, err := dec.Decode(src, dst, atEOF)
						if err != nil {
							t.Fatalf("split %d: decode: %v", split, err)
						}
						out = append(out, dst.Drain()...)
						if st == textenc.InputUnderflow {
							break
						}
					}
				}
				if string(out) != s {
					t.Fatalf("split %d: got %q want %q", split, string(out), s)
				}
			}
		})
	}
}

// TestTinyDestination drives a decode through a one-rune destination
// buffer and an encode through a one-byte destination buffer, checking
// OutputOverflow restartability byte for byte.
func TestTinyDestination(t *testing.T) {
	s := "h€\U0001F600"
	enc := textenc.UTF8()

	codec := enc.NewEncoder()
	src := buffer.From([]rune(s))
	dst := buffer.New[byte](1)
	var data []byte
	for {
		st, err := codec.Encode(src, dst, true)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		data = append(data, dst.Drain()...)
		if st == textenc.InputUnderflow {
			break
		}
	}
	if string(data) != s {
		t.Fatalf("one-byte-at-a-time encode produced %q", data)
	}

	dec := enc.NewDecoder()
	bsrc := buffer.From(data)
	rdst := buffer.New[rune](1)
	var out []rune
	for {
		st, err := dec.Decode(bsrc, rdst, true)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		out = append(out, rdst.Drain()...)
		if st == textenc.InputUnderflow {
			break
		}
	}
	if string(out) != s {
		t.Fatalf("one-rune-at-a-time decode produced %q", string(out))
	}
}

func TestFailureModeDivergence(t *testing.T) {
	// "ab" + invalid byte + "cd" in UTF-8.
	input := []byte{'a', 'b', 0xFF, 'c', 'd'}

	errEnc, err := textenc.Resolve("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := errEnc.DecodeBytes(input); !textenc.IsInvalidSequence(err) {
		t.Fatalf("error mode: got %v, want invalid sequence", err)
	}

	ignore, err := textenc.Resolve("UTF-8//IGNORE")
	if err != nil {
		t.Fatal(err)
	}
	if got, err := ignore.DecodeBytes(input); err != nil || got != "abcd" {
		t.Fatalf("ignore mode: got %q, %v", got, err)
	}

	translit, err := textenc.Resolve("UTF-8//TRANSLIT")
	if err != nil {
		t.Fatal(err)
	}
	if got, err := translit.DecodeBytes(input); err != nil || got != "ab�cd" {
		t.Fatalf("translit mode: got %q, %v", got, err)
	}
}

func TestEncodeFailureModes(t *testing.T) {
	// '€' is not representable in Latin-1 flavored charmaps; use the
	// resolver's ISO-8859-1 via the platform backend for non-error
	// modes, and the table's Latin1 for the hard-failure case.
	if _, err := textenc.Latin1().EncodeString("a€b"); !textenc.IsInvalidSequence(err) {
		t.Fatalf("latin1 encode: got %v, want invalid sequence", err)
	}

	tests := []struct {
		spec string
		want string
	}{
		{"ISO-8859-1//IGNORE", "ab"},
		{"ISO-8859-1//TRANSLIT", "a?b"},
	}
	for _, tt := range tests {
		enc, err := textenc.Resolve(tt.spec)
		if err != nil {
			t.Fatalf("%s: %v", tt.spec, err)
		}
		data, err := enc.EncodeString("a€b")
		if err != nil {
			t.Fatalf("%s: %v", tt.spec, err)
		}
		if string(data) != tt.want {
			t.Fatalf("%s: got %q want %q", tt.spec, data, tt.want)
		}
	}
}

func TestSurrogateEscapeRoundTrip(t *testing.T) {
	enc, err := textenc.Resolve("UTF-8//SURROGATE")
	if err != nil {
		t.Fatal(err)
	}
	input := []byte{'p', 'a', 0xFF, 't', 'h'}

	s, err := enc.DecodeBytes(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if []rune(s)[2] != 0xDC00+0xFF {
		t.Fatalf("escape rune = U+%04X", []rune(s)[2])
	}

	out, err := enc.EncodeString(s)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("round trip: got % X want % X", out, input)
	}
}

func TestSurrogateEscapeEncodeRejectsForeignRunes(t *testing.T) {
	enc, err := textenc.Resolve("UTF-8//SURROGATE")
	if err != nil {
		t.Fatal(err)
	}
	// A lone surrogate outside the escape range behaves as a hard
	// failure even in escape mode.
	if _, err := enc.EncodeString(string([]rune{0xD800})); !textenc.IsInvalidSequence(err) {
		t.Fatalf("got %v, want invalid sequence", err)
	}
}

func TestTruncatedInput(t *testing.T) {
	tests := []struct {
		name string
		enc  *textenc.Encoding
		data []byte
	}{
		{"utf8 two of three bytes", textenc.UTF8(), []byte{0xE2, 0x82}},
		{"utf16 odd byte", textenc.UTF16BE(), []byte{0x00, 0x41, 0x00}},
		{"utf16 lone high surrogate", textenc.UTF16BE(), []byte{0xD8, 0x3D}},
		{"utf32 partial unit", textenc.UTF32BE(), []byte{0x00, 0x00, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.enc.DecodeBytes(tt.data); !textenc.IsTruncatedInput(err) {
				t.Fatalf("got %v, want truncated input", err)
			}
		})
	}
}

// Truncation is a hard failure in every mode; the lenient modes only
// cover invalid units, not a stream that ends early.
func TestTruncatedInputIgnoredByNoMode(t *testing.T) {
	for _, spec := range []string{"UTF-8//IGNORE", "UTF-8//TRANSLIT", "UTF-8//SURROGATE"} {
		enc, err := textenc.Resolve(spec)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := enc.DecodeBytes([]byte{0xE2, 0x82}); !textenc.IsTruncatedInput(err) {
			t.Fatalf("%s: got %v, want truncated input", spec, err)
		}
	}
}

func TestDecoderResetClearsState(t *testing.T) {
	dec := textenc.UTF8().NewDecoder()

	// Feed half of a three-byte sequence, then reset.
	src := buffer.From([]byte{0xE2, 0x82})
	dst := buffer.New[rune](8)
	if st, err := dec.Decode(src, dst, false); err != nil || st != textenc.InputUnderflow {
		t.Fatalf("partial decode: %v %v", st, err)
	}
	dec.Reset()

	// A fresh stream must decode cleanly with no leftover bytes.
	src = buffer.From([]byte("ok"))
	if _, err := dec.Decode(src, dst, true); err != nil {
		t.Fatalf("decode after reset: %v", err)
	}
	if got := string(dst.Drain()); got != "ok" {
		t.Fatalf("after reset: got %q", got)
	}
}

func TestEncoderResetRestoresHeader(t *testing.T) {
	enc := textenc.UTF8BOM().NewEncoder()

	run := func() []byte {
		src := buffer.From([]rune("hi"))
		dst := buffer.New[byte](16)
		if _, err := enc.Encode(src, dst, true); err != nil {
			t.Fatalf("encode: %v", err)
		}
		return dst.Drain()
	}

	first := run()
	enc.Reset()
	second := run()
	want := append([]byte{0xEF, 0xBB, 0xBF}, "hi"...)
	if !bytes.Equal(first, want) || !bytes.Equal(second, want) {
		t.Fatalf("BOM header not restored: first % X second % X", first, second)
	}
}

func TestConcurrentCodecsAreIndependent(t *testing.T) {
	enc := textenc.UTF16()
	s := "independent \U0001F600 streams"

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				data, err := enc.EncodeString(s)
				if err != nil {
					t.Errorf("encode: %v", err)
					return
				}
				got, err := enc.DecodeBytes(data)
				if err != nil || got != s {
					t.Errorf("decode: %q %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestStatusStrings(t *testing.T) {
	if textenc.InputUnderflow.String() != "input underflow" ||
		textenc.OutputOverflow.String() != "output overflow" ||
		textenc.InvalidSequence.String() != "invalid sequence" {
		t.Fatal("unexpected Status strings")
	}
}
