package otel

import (
	"context"
	"testing"

	"github.com/rbaliyan/textenc"
	"github.com/rbaliyan/textenc/buffer"
)

func TestWrapEncodingDefaults(t *testing.T) {
	ie, err := WrapEncoding(textenc.UTF8())
	if err != nil {
		t.Fatalf("WrapEncoding: %v", err)
	}
	if ie.Name() != "UTF-8" {
		t.Fatalf("Name = %q", ie.Name())
	}
	if ie.Unwrap() != textenc.UTF8() {
		t.Fatal("Unwrap must return the wrapped encoding")
	}

	out, err := ie.EncodeString(context.Background(), "hëllo")
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	got, err := ie.DecodeBytes(context.Background(), out)
	if err != nil || got != "hëllo" {
		t.Fatalf("DecodeBytes: %q %v", got, err)
	}
}

func TestInstrumentedCodecsBehaveLikePlain(t *testing.T) {
	// The global providers default to no-ops, so enabling both paths
	// exercises the recording code without an SDK.
	ie, err := WrapEncoding(textenc.UTF16(),
		WithTracesEnabled(true),
		WithMetricsEnabled(true),
	)
	if err != nil {
		t.Fatalf("WrapEncoding: %v", err)
	}

	enc := ie.NewEncoder()
	src := buffer.From([]rune("ok"))
	dst := buffer.New[byte](16)
	if _, err := enc.Encode(src, dst, true); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := ie.NewDecoder()
	bsrc := buffer.From(dst.Drain())
	rdst := buffer.New[rune](16)
	if _, err := dec.Decode(bsrc, rdst, true); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := string(rdst.Drain()); got != "ok" {
		t.Fatalf("round trip through instrumented codecs: %q", got)
	}

	enc.Reset()
	dec.Reset()
}

func TestInstrumentedFailureRecording(t *testing.T) {
	ie, err := WrapEncoding(textenc.UTF8(), WithMetricsEnabled(true))
	if err != nil {
		t.Fatalf("WrapEncoding: %v", err)
	}
	dec := ie.NewDecoder()
	src := buffer.From([]byte{0xFF})
	dst := buffer.New[rune](4)
	st, err := dec.Decode(src, dst, true)
	if st != textenc.InvalidSequence || !textenc.IsInvalidSequence(err) {
		t.Fatalf("got %v, %v", st, err)
	}
}

func TestErrorKind(t *testing.T) {
	if errorKind(&textenc.InvalidSequenceError{Encoding: "UTF-8"}) != "invalid_sequence" {
		t.Fatal("invalid sequence kind")
	}
	if errorKind(&textenc.TruncatedInputError{Encoding: "UTF-8"}) != "truncated_input" {
		t.Fatal("truncated input kind")
	}
	if errorKind(&textenc.UnknownEncodingError{Name: "X"}) != "unknown_encoding" {
		t.Fatal("unknown encoding kind")
	}
	if errorKind(context.Canceled) != "other" {
		t.Fatal("other kind")
	}
}
