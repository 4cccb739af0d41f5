package otel

import (
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by an instrumented encoding.
type Metrics struct {
	// Steps counts individual codec steps by direction and status.
	Steps metric.Int64Counter

	// Units counts elements converted: runes consumed when encoding,
	// runes produced when decoding.
	Units metric.Int64Counter

	// Failures counts hard coding failures by direction and error kind.
	Failures metric.Int64Counter
}

func initMetrics(meter metric.Meter) (*Metrics, error) {
	steps, err := meter.Int64Counter(
		"textenc.codec.steps",
		metric.WithDescription("Number of codec steps executed"),
	)
	if err != nil {
		return nil, err
	}

	units, err := meter.Int64Counter(
		"textenc.codec.units",
		metric.WithDescription("Number of characters converted"),
		metric.WithUnit("{character}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		"textenc.codec.failures",
		metric.WithDescription("Number of hard coding failures"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{Steps: steps, Units: units, Failures: failures}, nil
}
