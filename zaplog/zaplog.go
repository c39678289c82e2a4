// zaplog.go: zap adapter for the flyweight Logger interface
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

// Package zaplog adapts go.uber.org/zap to flyweight.Logger.
package zaplog

import (
	"io"

	"github.com/agilira/flyweight"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements flyweight.Logger on top of a zap sugared logger.
// Key-value pairs are passed through as zap fields.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps l. A nil l yields a logger that drops everything.
func New(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{sugar: l.Sugar()}
}

// NewConsole builds a development console logger writing to w at level.
func NewConsole(w io.Writer, level zapcore.Level) *Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return New(zap.New(core))
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.sugar.Debugw(msg, keyvals...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.sugar.Infow(msg, keyvals...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.sugar.Warnw(msg, keyvals...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.sugar.Errorw(msg, keyvals...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

var _ flyweight.Logger = (*Logger)(nil)
