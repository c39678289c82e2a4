// main.go: package main - hull registry demo built on the flyweight factory
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/agilira/flyweight"
	flyotel "github.com/agilira/flyweight/otel"
	"github.com/agilira/flyweight/zaplog"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func main() {
	logger := zaplog.NewConsole(os.Stderr, zap.InfoLevel)
	defer func() { _ = logger.Sync() }()

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Warn("meter provider shutdown", "error", err)
		}
	}()

	collector, err := flyotel.NewOTelMetricsCollector(provider, flyotel.WithMeterName("hullyard"))
	if err != nil {
		// Metrics are optional for the demo.
		logger.Warn("metrics disabled", "error", err)
	}

	cfg := flyweight.Config{
		Output: os.Stdout,
		Logger: logger,
	}
	if collector != nil {
		cfg.MetricsCollector = collector
	}

	run(cfg, flyweight.DemoRepetitions)

	logTotals(logger, reader)
}

// run plays the hull registry scenario, narrating to cfg.Output.
func run(cfg flyweight.Config, repetitions int) *flyweight.Factory {
	factory := flyweight.NewFactory(cfg,
		flyweight.NewSharedState("Ice Breaker", "30cm", "Hardened Steel"),
		flyweight.NewSharedState("Pontoon", "1cm", "Reinforced Nylon"),
	)
	defer func() { _ = factory.Close() }()
	out := factory.Output()

	fmt.Fprintln(out, "First list of flyweights: ")
	factory.ListFlyweights()
	fmt.Fprintln(out)

	flyweight.AddHullToDatabase(factory, "May 15th", "Santiago", "Ice Breaker", "30cm", "Hardened Steel")
	flyweight.AddHullToDatabase(factory, "June 7th", "Puerto Oro", "Galleon", "16cm", "Black Oak")
	for i := 0; i < repetitions; i++ {
		flyweight.AddHullToDatabase(factory, strconv.Itoa(i), "Santiago", "Ice Breaker", "30cm", "Hardened Steel")
	}

	fmt.Fprintln(out, "Second list of flyweights: ")
	factory.ListFlyweights()
	fmt.Fprintln(out)

	return factory
}

// logTotals reports the counters collected during the run.
func logTotals(logger flyweight.Logger, reader *metric.ManualReader) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		logger.Warn("metrics collection failed", "error", err)
		return
	}

	keyvals := make([]interface{}, 0, 8)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			keyvals = append(keyvals, m.Name, total)
		}
	}
	logger.Info("hullyard finished", keyvals...)
}
