// collector.go: OpenTelemetry implementation of flyweight.MetricsCollector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package otel

import (
	"context"

	"github.com/agilira/flyweight"
	"go.opentelemetry.io/otel/metric"
)

// DefaultMeterName is the meter name used when WithMeterName is not given.
const DefaultMeterName = "github.com/agilira/flyweight"

// OTelMetricsCollector implements flyweight.MetricsCollector using OpenTelemetry.
//
// Thread-safety: Safe for concurrent use by multiple goroutines.
// The underlying OTEL instruments are thread-safe.
type OTelMetricsCollector struct {
	lookupLatency metric.Int64Histogram
	reuses        metric.Int64Counter
	creates       metric.Int64Counter
	seeded        metric.Int64Counter
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: DefaultMeterName
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name.
// Useful to tell several factories apart.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// Returns FLYWEIGHT_NIL_METER_PROVIDER if provider is nil, or the error
// from OTEL instrument creation.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	options := Options{
		MeterName: DefaultMeterName,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if provider == nil {
		return nil, flyweight.NewErrNilMeterProvider(options.MeterName)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.lookupLatency, err = meter.Int64Histogram(
		"flyweight_lookup_latency_ns",
		metric.WithDescription("Latency of GetFlyweight operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.reuses, err = meter.Int64Counter(
		"flyweight_reuses_total",
		metric.WithDescription("Total number of GetFlyweight calls served by an existing flyweight"),
	)
	if err != nil {
		return nil, err
	}

	collector.creates, err = meter.Int64Counter(
		"flyweight_creates_total",
		metric.WithDescription("Total number of flyweights created by GetFlyweight"),
	)
	if err != nil {
		return nil, err
	}

	collector.seeded, err = meter.Int64Counter(
		"flyweight_seeded_total",
		metric.WithDescription("Total number of flyweights inserted by seeding"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordLookup records a GetFlyweight call: its latency, and a reuse when
// an existing flyweight was returned.
func (c *OTelMetricsCollector) RecordLookup(latencyNs int64, reused bool) {
	ctx := context.Background()
	c.lookupLatency.Record(ctx, latencyNs)
	if reused {
		c.reuses.Add(ctx, 1)
	}
}

// RecordCreate records a flyweight created by GetFlyweight.
func (c *OTelMetricsCollector) RecordCreate() {
	c.creates.Add(context.Background(), 1)
}

// RecordSeed records n seeded flyweights.
func (c *OTelMetricsCollector) RecordSeed(n int) {
	if n <= 0 {
		return
	}
	c.seeded.Add(context.Background(), int64(n))
}

// Compile-time interface check
var _ flyweight.MetricsCollector = (*OTelMetricsCollector)(nil)
