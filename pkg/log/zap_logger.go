package log

import (
	"go.uber.org/zap"
)

var _ Logger = (*ZapLogger)(nil)

// spanEmission selects how a logger's span chain reaches the output, which
// depends on the installed mode: the custom event formatter renders the
// chain itself, the pretty pipeline shows it as a regular field, and the
// compact pipelines drop it.
type spanEmission int

const (
	spanEmitNone spanEmission = iota
	spanEmitField
	spanEmitFormatter
)

// ZapLogger is a logger implementation backed by Uber's zap logger.
// It carries the chain of open spans alongside the usual persistent
// key-value pairs; each derived logger shares the underlying zap core.
type ZapLogger struct {
	lg            *zap.SugaredLogger
	keysAndValues []any
	spans         spanChain
	emitSpans     spanEmission
}

func newZapLogger(lg *zap.SugaredLogger, emit spanEmission) *ZapLogger {
	return &ZapLogger{lg: lg, emitSpans: emit}
}

// Trace logs a message at trace level.
func (l *ZapLogger) Trace(msg string, keysAndValues ...any) {
	l.log(LevelTrace, msg, keysAndValues...)
}

// Debug logs a message at debug level.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs a message at info level.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Warn logs a message at warn level.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

// Error logs a message at error level.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// Fatal logs a message at fatal level.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(LevelFatal, msg, keysAndValues...)
}

func (l *ZapLogger) log(level Level, msg string, keysAndValues ...any) {
	kvs := keysAndValues
	if len(l.spans) > 0 {
		switch l.emitSpans {
		case spanEmitFormatter:
			kvs = append(kvs[:len(kvs):len(kvs)], spanChainField(l.spans))
		case spanEmitField:
			kvs = append(kvs[:len(kvs):len(kvs)], "spans", l.spans.String())
		}
	}
	l.lg.Logw(toZapLogLevel(level), msg, kvs...)
}

// WithKV returns a new ZapLogger with the key-value pair added to all future log messages.
func (l *ZapLogger) WithKV(key string, value any) Logger {
	return &ZapLogger{
		lg:            l.lg.With(key, value),
		keysAndValues: append(l.keysAndValues, key, value),
		spans:         l.spans,
		emitSpans:     l.emitSpans,
	}
}

// GetAllKV returns all key-value pairs that have been added to this logger instance.
func (l *ZapLogger) GetAllKV() []any {
	return l.keysAndValues
}

// WithName returns a new ZapLogger with the given name.
// The name is added to the logger hierarchy separated by dots.
func (l *ZapLogger) WithName(name string) Logger {
	return &ZapLogger{
		lg:            l.lg.Named(name),
		keysAndValues: l.keysAndValues,
		spans:         l.spans,
		emitSpans:     l.emitSpans,
	}
}

// Name returns the current name of the logger.
func (l *ZapLogger) Name() string {
	return l.lg.Desugar().Name()
}

// WithSpan returns a new ZapLogger with a span opened on top of the current
// chain. The span's fields are formatted here, once, and cached for the
// span's lifetime.
func (l *ZapLogger) WithSpan(name string, keysAndValues ...any) Logger {
	chain := make(spanChain, len(l.spans), len(l.spans)+1)
	copy(chain, l.spans)
	chain = append(chain, newSpan(name, keysAndValues...))

	return &ZapLogger{
		lg:            l.lg,
		keysAndValues: l.keysAndValues,
		spans:         chain,
		emitSpans:     l.emitSpans,
	}
}

// Spans returns the chain of open spans, root first.
func (l *ZapLogger) Spans() []Span {
	return l.spans
}

// AddCallerSkip returns a new ZapLogger that skips additional stack frames when determining the caller.
func (l *ZapLogger) AddCallerSkip(skip int) Logger {
	return &ZapLogger{
		lg:            l.lg.WithOptions(zap.AddCallerSkip(skip)),
		keysAndValues: l.keysAndValues,
		spans:         l.spans,
		emitSpans:     l.emitSpans,
	}
}
