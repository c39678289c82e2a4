// main_test.go: tests for the hullyard demo
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agilira/flyweight"
	flyotel "github.com/agilira/flyweight/otel"
	"github.com/agilira/flyweight/zaplog"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_Scenario(t *testing.T) {
	var buf bytes.Buffer
	factory := run(flyweight.Config{Output: &buf}, 3)

	if factory.Len() != 3 {
		t.Errorf("Expected 3 flyweights, got %d", factory.Len())
	}

	stats := factory.Stats()
	if stats.Seeded != 2 {
		t.Errorf("Expected 2 seeded, got %d", stats.Seeded)
	}
	if stats.Created != 1 {
		t.Errorf("Expected 1 created, got %d", stats.Created)
	}
	if stats.Reused != 4 {
		t.Errorf("Expected 4 reused, got %d", stats.Reused)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "First list of flyweights: \n") {
		t.Errorf("output should open with the first header, got %q", out[:min(len(out), 40)])
	}
	first := strings.Index(out, "First list of flyweights")
	second := strings.Index(out, "Second list of flyweights")
	galleonAdd := strings.Index(out, "[ Galleon , 16cm , Black Oak ]")
	if second < first || galleonAdd > second {
		t.Errorf("headers out of order with narration (first=%d, galleon=%d, second=%d)", first, galleonAdd, second)
	}
	if !strings.Contains(out, "FlyweightFactory: I have 2 flyweights:") {
		t.Error("first listing should report 2 flyweights")
	}
	if !strings.Contains(out, "FlyweightFactory: I have 3 flyweights:") {
		t.Error("second listing should report 3 flyweights")
	}
	if !strings.Contains(out, "Galleon_16cm_Black Oak") {
		t.Error("second listing should contain the galleon key")
	}
	if n := strings.Count(out, "Can't find a flyweight"); n != 1 {
		t.Errorf("Expected 1 creation message, got %d", n)
	}
	if n := strings.Count(out, "Reusing existing flyweight"); n != 4 {
		t.Errorf("Expected 4 reuse messages, got %d", n)
	}

	// Creation is announced before the galleon is displayed.
	create := strings.Index(out, "Can't find a flyweight")
	galleon := strings.Index(out, "Flyweight: Displaying shared ([ Galleon , 16cm , Black Oak ])")
	if create < 0 || galleon < 0 || create > galleon {
		t.Errorf("creation message must precede the galleon operation (create=%d, galleon=%d)", create, galleon)
	}
}

func TestRun_Repetitions(t *testing.T) {
	var buf bytes.Buffer
	factory := run(flyweight.Config{Output: &buf}, 0)
	if factory.Len() != 3 {
		t.Errorf("Expected 3 flyweights, got %d", factory.Len())
	}
	if strings.Contains(buf.String(), "[ Santiago , 0 ]") {
		t.Error("no repeated hulls expected with zero repetitions")
	}
}

func TestLogTotals(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	collector, err := flyotel.NewOTelMetricsCollector(provider)
	if err != nil {
		t.Fatalf("NewOTelMetricsCollector failed: %v", err)
	}

	var buf bytes.Buffer
	run(flyweight.Config{Output: &buf, MetricsCollector: collector}, 2)

	core, logs := observer.New(zap.InfoLevel)
	logTotals(zaplog.New(zap.New(core)), reader)

	entries := logs.FilterMessage("hullyard finished").All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 summary entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["flyweight_reuses_total"]; got != int64(3) {
		t.Errorf("Expected 3 reuses, got %v", got)
	}
	if got := fields["flyweight_creates_total"]; got != int64(1) {
		t.Errorf("Expected 1 create, got %v", got)
	}
}
