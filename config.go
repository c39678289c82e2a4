// config.go: configuration for flyweight
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

import (
	"io"

	"github.com/agilira/go-timecache"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration parameters for a Factory.
type Config struct {
	// Output receives the human-readable narration: create/reuse messages,
	// flyweight operations and listings. The factory serializes its writes,
	// so a writer that is not safe for concurrent use is fine.
	// If nil, narration is discarded. Default: io.Discard.
	Output io.Writer

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider stamps flyweight creation times.
	// If nil, a go-timecache backed clock is used.
	TimeProvider TimeProvider

	// MetricsCollector receives lookup and creation metrics.
	// If nil, NoOpMetricsCollector is used.
	MetricsCollector MetricsCollector

	// OnCreate is called after GetFlyweight stores a new flyweight.
	// It runs with the factory lock released and must be fast.
	OnCreate func(key Key)
}

// Validate applies defaults to unset fields. It never fails.
//
// Default values applied:
//   - Output: io.Discard if nil
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Output == nil {
		c.Output = io.Discard
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}
}

// DefaultConfig returns a configuration with defaults applied.
func DefaultConfig() Config {
	return Config{
		Output:           io.Discard,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// lockOutput serializes writes to w so that lines written by concurrent
// callers never tear or race.
func lockOutput(w io.Writer) io.Writer {
	if w == io.Discard {
		return w
	}
	return zapcore.Lock(zapcore.AddSync(w))
}

// systemTimeProvider is the default time provider using go-timecache.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
