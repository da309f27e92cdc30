// Package log defines the logging contract of meigit. Library code never
// configures a logging backend: callers put a Logger into the context and every
// store, rewriter and session operation picks it up from there.
package log

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ../mocks/logger.go . Logger

// Logger is a minimal structured logging interface.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
}

type loggerCtxKey struct{}

// ToContext returns a copy of ctx carrying logger.
func ToContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerCtxKey{}).(Logger); ok && logger != nil {
		return logger
	}
	return noopLogger{}
}

// HasLogger reports whether ctx carries a logger.
func HasLogger(ctx context.Context) bool {
	logger, ok := ctx.Value(loggerCtxKey{}).(Logger)
	return ok && logger != nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
