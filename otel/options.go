package otel

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTracerName = "github.com/rbaliyan/textenc"
	defaultMeterName  = "github.com/rbaliyan/textenc"
)

// options holds configuration for the instrumented encoding.
type options struct {
	enableTraces  bool
	enableMetrics bool
	tracer        trace.Tracer
	meter         metric.Meter
	tracerName    string
	meterName     string
}

func defaultOptions() options {
	return options{
		tracerName: defaultTracerName,
		meterName:  defaultMeterName,
	}
}

// Option configures instrumentation.
type Option func(*options)

// WithTracesEnabled enables or disables tracing. Disabled by default.
func WithTracesEnabled(enabled bool) Option {
	return func(o *options) {
		o.enableTraces = enabled
	}
}

// WithMetricsEnabled enables or disables metrics. Disabled by default.
func WithMetricsEnabled(enabled bool) Option {
	return func(o *options) {
		o.enableMetrics = enabled
	}
}

// WithTracer sets a custom tracer. Default is the global tracer
// provider's tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithMeter sets a custom meter. Default is the global meter
// provider's meter.
func WithMeter(meter metric.Meter) Option {
	return func(o *options) {
		o.meter = meter
	}
}

// WithTracerName sets the tracer instrumentation name.
func WithTracerName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.tracerName = name
		}
	}
}

// WithMeterName sets the meter instrumentation name.
func WithMeterName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.meterName = name
		}
	}
}
