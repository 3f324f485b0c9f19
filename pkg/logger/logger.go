// Package logger provides the structured logging facade used across beanbox.
// It is a thin interface over zap so that library consumers can plug in their
// own backend without importing zap themselves.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface consumed by the container. All container
// events (registrations, singleton creation, destruction) go through it.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger with the given fields attached to every entry.
	With(fields ...Field) Logger
}

// zapLogger implements Logger on top of a zap.Logger.
type zapLogger struct {
	l *zap.Logger
}

// NewLogger creates a production-configured logger writing JSON to stderr.
func NewLogger() Logger {
	l, err := zap.NewProduction()
	if err != nil {
		// Production config only fails on invalid output paths; fall back
		// to a no-op rather than panicking inside a library.
		return NewNoopLogger()
	}
	return &zapLogger{l: l}
}

// NewDevelopmentLogger creates a human-readable console logger at debug level.
func NewDevelopmentLogger() Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return NewNoopLogger()
	}
	return &zapLogger{l: l}
}

// NewZapLogger wraps an existing zap.Logger.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

// NewNoopLogger returns a logger that discards everything. This is the
// default when no logger is configured.
func NewNoopLogger() Logger {
	return &zapLogger{l: zap.NewNop()}
}

func (z *zapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, fields...) }

func (z *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{l: z.l.With(fields...)}
}

// Level aliases so callers can build their own zap configs without a second
// zapcore import.
type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)
