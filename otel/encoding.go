// Package otel provides OpenTelemetry instrumentation for textenc
// encodings: per-step metrics around the codec interface and spans
// around whole-value conversions.
package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rbaliyan/textenc"
)

// InstrumentedEncoding wraps an Encoding so every codec it produces
// records metrics, and whole-value conversions run under a span.
type InstrumentedEncoding struct {
	enc     *textenc.Encoding
	tracer  trace.Tracer
	meter   metric.Meter
	metrics *Metrics
	opts    options
}

// WrapEncoding wraps an Encoding with OpenTelemetry instrumentation.
// By default both tracing and metrics are disabled. Use
// WithTracesEnabled(true) and/or WithMetricsEnabled(true) to enable
// them.
func WrapEncoding(enc *textenc.Encoding, opts ...Option) (*InstrumentedEncoding, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ie := &InstrumentedEncoding{
		enc:  enc,
		opts: o,
	}

	if o.enableTraces {
		if o.tracer != nil {
			ie.tracer = o.tracer
		} else {
			ie.tracer = otel.Tracer(o.tracerName)
		}
	}

	if o.enableMetrics {
		var meter metric.Meter
		if o.meter != nil {
			meter = o.meter
		} else {
			meter = otel.Meter(o.meterName)
		}
		ie.meter = meter

		metrics, err := initMetrics(meter)
		if err != nil {
			return nil, err
		}
		ie.metrics = metrics
	}

	return ie, nil
}

// Unwrap returns the underlying encoding.
func (e *InstrumentedEncoding) Unwrap() *textenc.Encoding {
	return e.enc
}

// Name returns the underlying encoding's canonical name.
func (e *InstrumentedEncoding) Name() string {
	return e.enc.Name()
}

// NewEncoder returns a fresh encoder whose steps are recorded.
func (e *InstrumentedEncoding) NewEncoder() textenc.Encoder {
	return &instrumentedEncoder{inner: e.enc.NewEncoder(), parent: e}
}

// NewDecoder returns a fresh decoder whose steps are recorded.
func (e *InstrumentedEncoding) NewDecoder() textenc.Decoder {
	return &instrumentedDecoder{inner: e.enc.NewDecoder(), parent: e}
}

// EncodeString converts s under a span (when tracing is enabled) using
// the underlying encoding's whole-value driver.
func (e *InstrumentedEncoding) EncodeString(ctx context.Context, s string) ([]byte, error) {
	if !e.opts.enableTraces {
		return e.enc.EncodeString(s)
	}
	_, span := e.tracer.Start(ctx, "textenc.Encode",
		trace.WithAttributes(e.commonAttributes()...))
	defer span.End()

	out, err := e.enc.EncodeString(s)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return out, err
}

// DecodeBytes converts p under a span (when tracing is enabled) using
// the underlying encoding's whole-value driver.
func (e *InstrumentedEncoding) DecodeBytes(ctx context.Context, p []byte) (string, error) {
	if !e.opts.enableTraces {
		return e.enc.DecodeBytes(p)
	}
	_, span := e.tracer.Start(ctx, "textenc.Decode",
		trace.WithAttributes(e.commonAttributes()...))
	defer span.End()

	out, err := e.enc.DecodeBytes(p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return out, err
}

func (e *InstrumentedEncoding) commonAttributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("textenc.encoding", e.enc.Name()),
	}
}

// recordStep records one codec step. units is the number of characters
// the step converted.
func (e *InstrumentedEncoding) recordStep(direction string, st textenc.Status, units int, err error) {
	if e.metrics == nil {
		return
	}
	ctx := context.Background()
	attrs := append(e.commonAttributes(),
		attribute.String("textenc.direction", direction),
		attribute.String("textenc.status", st.String()),
	)
	e.metrics.Steps.Add(ctx, 1, metric.WithAttributes(attrs...))
	if units > 0 {
		e.metrics.Units.Add(ctx, int64(units), metric.WithAttributes(attrs...))
	}
	if err != nil {
		e.metrics.Failures.Add(ctx, 1, metric.WithAttributes(append(attrs,
			attribute.String("textenc.error", errorKind(err)))...))
	}
}

func errorKind(err error) string {
	switch {
	case textenc.IsInvalidSequence(err):
		return "invalid_sequence"
	case textenc.IsTruncatedInput(err):
		return "truncated_input"
	case textenc.IsUnknownEncoding(err):
		return "unknown_encoding"
	default:
		return "other"
	}
}

// Compile-time interface checks
var (
	_ textenc.Encoder = (*instrumentedEncoder)(nil)
	_ textenc.Decoder = (*instrumentedDecoder)(nil)
)

type instrumentedEncoder struct {
	inner  textenc.Encoder
	parent *InstrumentedEncoding
}

func (e *instrumentedEncoder) Encode(src *textenc.RuneBuffer, dst *textenc.ByteBuffer, atEOF bool) (textenc.Status, error) {
	before := src.Len()
	st, err := e.inner.Encode(src, dst, atEOF)
	e.parent.recordStep("encode", st, before-src.Len(), err)
	return st, err
}

func (e *instrumentedEncoder) Reset() { e.inner.Reset() }

type instrumentedDecoder struct {
	inner  textenc.Decoder
	parent *InstrumentedEncoding
}

func (d *instrumentedDecoder) Decode(src *textenc.ByteBuffer, dst *textenc.RuneBuffer, atEOF bool) (textenc.Status, error) {
	before := dst.Len()
	st, err := d.inner.Decode(src, dst, atEOF)
	d.parent.recordStep("decode", st, dst.Len()-before, err)
	return st, err
}

func (d *instrumentedDecoder) Reset() { d.inner.Reset() }
