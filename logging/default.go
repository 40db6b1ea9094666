package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogger is the zap-backed logger implementation.
// Debug/Info -> stdout, Warn and above -> stderr.
type DefaultLogger struct {
	zl     *zap.Logger
	level  zap.AtomicLevel
	fields Fields
}

// NewDefaultLogger creates a new zap-backed logger at Info level
func NewDefaultLogger() *DefaultLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	stdout := zapcore.Lock(os.Stdout)
	stderr := zapcore.Lock(os.Stderr)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, stdout, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return level.Enabled(l) && l < zapcore.WarnLevel
		})),
		zapcore.NewCore(encoder, stderr, zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return level.Enabled(l) && l >= zapcore.WarnLevel
		})),
	)

	return &DefaultLogger{
		zl:     zap.New(core),
		level:  level,
		fields: make(Fields),
	}
}

func (d *DefaultLogger) zapFields(err error, fields []Fields) []zap.Field {
	merged := mergeFields(d.fields, fields)

	zf := make([]zap.Field, 0, len(merged)+1)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	for key, value := range merged {
		zf = append(zf, zap.Any(key, value))
	}
	return zf
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.zl.Debug(msg, d.zapFields(nil, fields)...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.zl.Info(msg, d.zapFields(nil, fields)...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.zl.Warn(msg, d.zapFields(nil, fields)...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.zl.Error(msg, d.zapFields(err, fields)...)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.zl.Fatal(msg, d.zapFields(err, fields)...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	return &DefaultLogger{
		zl:     d.zl,
		level:  d.level,
		fields: mergeFields(d.fields, []Fields{fields}),
	}
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	// Extract fields from context if any
	if fields, ok := ctx.Value(contextFieldsKey{}).(Fields); ok {
		return d.WithFields(fields)
	}
	return d
}

func (d *DefaultLogger) SetLevel(level Level) {
	switch level {
	case DebugLevel:
		d.level.SetLevel(zapcore.DebugLevel)
	case InfoLevel:
		d.level.SetLevel(zapcore.InfoLevel)
	case WarnLevel:
		d.level.SetLevel(zapcore.WarnLevel)
	case ErrorLevel:
		d.level.SetLevel(zapcore.ErrorLevel)
	case FatalLevel:
		d.level.SetLevel(zapcore.FatalLevel)
	}
}

// contextFieldsKey keys logger fields stored in a context
type contextFieldsKey struct{}

// ContextWithFields attaches logger fields to a context for later
// extraction by WithContext
func ContextWithFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, contextFieldsKey{}, fields)
}

// NoOpLogger is a logger that does nothing - useful for testing or when logging is disabled
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) WithContext(ctx context.Context) Logger        { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
