// zaplog_test.go: tests for the zap adapter
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package zaplog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agilira/flyweight"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := New(zap.New(core))

	logger.Debug("debug message", "key", "Ice Breaker_30cm_Hardened Steel")
	logger.Info("info message", "flyweights", 2)
	logger.Warn("warn message")
	logger.Error("error message", "error", flyweight.NewErrFactoryClosed("Seed"))

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	wantLevels := []zapcore.Level{zap.DebugLevel, zap.InfoLevel, zap.WarnLevel, zap.ErrorLevel}
	for i, want := range wantLevels {
		if entries[i].Level != want {
			t.Errorf("entry %d: expected level %s, got %s", i, want, entries[i].Level)
		}
	}

	if got := entries[0].ContextMap()["key"]; got != "Ice Breaker_30cm_Hardened Steel" {
		t.Errorf("expected key field, got %v", got)
	}
	if got := entries[1].ContextMap()["flyweights"]; got != int64(2) {
		t.Errorf("expected flyweights=2, got %v (%T)", got, got)
	}
}

func TestNew_NilLogger(t *testing.T) {
	logger := New(nil)
	logger.Info("dropped")
	if err := logger.Sync(); err != nil {
		t.Errorf("Sync on nop logger: %v", err)
	}
}

func TestNewConsole_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, zap.InfoLevel)

	logger.Debug("hidden")
	logger.Info("flyweight factory created", "seeds", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(out, "flyweight factory created") {
		t.Errorf("expected info entry in output, got %q", out)
	}
}

// TestLogger_WithFactory checks the factory's structured logs come through zap.
func TestLogger_WithFactory(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	factory := flyweight.NewFactory(flyweight.Config{Logger: New(zap.New(core))},
		flyweight.NewSharedState("Pontoon", "1cm", "Reinforced Nylon"),
		flyweight.NewSharedState("Pontoon", "1cm", "Reinforced Nylon"),
	)
	defer factory.Close()

	factory.GetFlyweight(flyweight.NewSharedState("Galleon", "16cm", "Black Oak"))

	if n := logs.FilterMessage("duplicate seed dropped").Len(); n != 1 {
		t.Errorf("expected 1 duplicate seed entry, got %d", n)
	}
	if n := logs.FilterMessage("flyweight created").Len(); n != 1 {
		t.Errorf("expected 1 created entry, got %d", n)
	}
}
