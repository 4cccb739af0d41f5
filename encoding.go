package textenc

import "github.com/rbaliyan/textenc/buffer"

// Encoding is a named pair of codec factories. Values are immutable;
// each NewEncoder/NewDecoder call builds a fresh stateful codec owned
// by the caller. Two Encodings denote the same encoding exactly when
// their names are equal.
type Encoding struct {
	name       string
	newEncoder func() Encoder
	newDecoder func() Decoder
}

// NewEncoding builds an Encoding from a name and two codec factories.
// Concrete encoding implementations use this to plug into the table
// and resolver layer.
func NewEncoding(name string, newEncoder func() Encoder, newDecoder func() Decoder) *Encoding {
	if name == "" {
		panic("textenc: NewEncoding name is empty")
	}
	if newEncoder == nil || newDecoder == nil {
		panic("textenc: NewEncoding factory is nil")
	}
	return &Encoding{name: name, newEncoder: newEncoder, newDecoder: newDecoder}
}

// Name returns the encoding's canonical name.
func (e *Encoding) Name() string { return e.name }

// NewEncoder returns a fresh rune-to-byte codec.
func (e *Encoding) NewEncoder() Encoder { return e.newEncoder() }

// NewDecoder returns a fresh byte-to-rune codec.
func (e *Encoding) NewDecoder() Decoder { return e.newDecoder() }

// Equal reports whether both encodings carry the same name. Name
// equality is the only identity this package defines.
func (e *Encoding) Equal(other *Encoding) bool {
	return e != nil && other != nil && e.name == other.name
}

// String implements fmt.Stringer.
func (e *Encoding) String() string { return e.name }

// encodeChunk is the destination size EncodeString and DecodeBytes
// work in. Deliberately small so the restartable step contract is
// exercised on ordinary inputs.
const encodeChunk = 64

// EncodeString converts s to bytes in this encoding, driving a fresh
// encoder to completion and draining the destination on every
// OutputOverflow.
func (e *Encoding) EncodeString(s string) ([]byte, error) {
	enc := e.NewEncoder()
	src := buffer.From([]rune(s))
	dst := buffer.New[byte](encodeChunk)

	var out []byte
	for {
		st, err := enc.Encode(src, dst, true)
		if err != nil {
			return nil, err
		}
		out = append(out, dst.Drain()...)
		if st == InputUnderflow {
			return out, nil
		}
	}
}

// DecodeBytes converts p from this encoding to a string, draining the
// destination on every OutputOverflow.
func (e *Encoding) DecodeBytes(p []byte) (string, error) {
	dec := e.NewDecoder()
	src := buffer.From(p)
	dst := buffer.New[rune](encodeChunk)

	var out []rune
	for {
		st, err := dec.Decode(src, dst, true)
		if err != nil {
			return "", err
		}
		out = append(out, dst.Drain()...)
		if st == InputUnderflow {
			return string(out), nil
		}
	}
}
