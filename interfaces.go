// interfaces.go: public interfaces for flyweight
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

// FactoryStats provides statistics about factory usage.
type FactoryStats struct {
	// Created is the number of flyweights created by GetFlyweight misses
	Created uint64

	// Reused is the number of GetFlyweight calls served by an existing flyweight
	Reused uint64

	// Seeded is the number of flyweights inserted by NewFactory or Seed
	Seeded uint64

	// Size is the current number of distinct flyweights
	Size int
}

// ReuseRatio returns the share of GetFlyweight calls that reused an
// existing flyweight, as a percentage (0-100).
// Returns 0.0 if GetFlyweight was never called.
func (s FactoryStats) ReuseRatio() float64 {
	total := s.Created + s.Reused
	if total == 0 {
		return 0
	}
	return float64(s.Reused) / float64(total) * 100
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	Now() int64
}

// MetricsCollector receives factory operation metrics.
// All methods must be safe for concurrent use.
type MetricsCollector interface {
	// RecordLookup records a GetFlyweight call.
	// reused is true when an existing flyweight was returned.
	RecordLookup(latencyNs int64, reused bool)

	// RecordCreate records a flyweight created by a GetFlyweight miss.
	RecordCreate()

	// RecordSeed records n flyweights inserted by NewFactory or Seed.
	RecordSeed(n int)
}

// NoOpMetricsCollector is a metrics collector that does nothing.
type NoOpMetricsCollector struct{}

// RecordLookup does nothing.
func (NoOpMetricsCollector) RecordLookup(latencyNs int64, reused bool) {}

// RecordCreate does nothing.
func (NoOpMetricsCollector) RecordCreate() {}

// RecordSeed does nothing.
func (NoOpMetricsCollector) RecordSeed(n int) {}
