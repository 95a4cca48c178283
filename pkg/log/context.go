package log

import (
	"context"
)

type contextKey struct{}

var loggerContextKey = contextKey{}

// SetContextLogger attaches the provided logger to the context.
// If logger is nil, a NoopLogger is used.
func SetContextLogger(ctx context.Context, lg Logger) context.Context {
	if lg == nil {
		lg = NewNoopLogger()
	}
	return context.WithValue(ctx, loggerContextKey, lg)
}

// FromContext retrieves the logger stored in the context.
// If no logger is found in the context, it returns a NoopLogger as a safe default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return l
	}
	return NewNoopLogger()
}

// EnterSpan opens a span on the context's logger and returns a context
// carrying the derived logger. Span state stays scoped to this context:
// concurrent contexts each carry their own chain.
func EnterSpan(ctx context.Context, name string, keysAndValues ...any) context.Context {
	return SetContextLogger(ctx, FromContext(ctx).WithSpan(name, keysAndValues...))
}
