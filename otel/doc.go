// Package otel provides OpenTelemetry integration for flyweight factory metrics.
//
// # Overview
//
// This package implements the flyweight.MetricsCollector interface using OpenTelemetry,
// so factory lookups, creations and seeds can be exported to any OTEL backend.
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/flyweight"
//	    flyotel "github.com/agilira/flyweight/otel"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	reader := metric.NewManualReader()
//	provider := metric.NewMeterProvider(metric.WithReader(reader))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := flyotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	factory := flyweight.NewFactory(flyweight.Config{
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
// Histograms:
//   - flyweight_lookup_latency_ns: GetFlyweight() latency in nanoseconds
//
// Counters:
//   - flyweight_reuses_total: GetFlyweight() calls served by an existing flyweight
//   - flyweight_creates_total: flyweights created by GetFlyweight()
//   - flyweight_seeded_total: flyweights inserted by NewFactory() or Seed()
//
// Reuse ratio in Prometheus:
//
//	rate(flyweight_reuses_total[5m]) /
//	(rate(flyweight_reuses_total[5m]) + rate(flyweight_creates_total[5m]))
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
