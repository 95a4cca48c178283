package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Logger is a logger interface.
type Logger interface {
	// Trace logs a message at the most verbose level.
	// Use for very fine-grained diagnostics, e.g. per-message dumps.
	// keysAndValues lets you add structured context (e.g., "seq", n).
	Trace(msg string, keysAndValues ...any)
	// Debug logs a message for low-level debugging.
	// Use for detailed information useful during development.
	// keysAndValues lets you add structured context (e.g., "user", id).
	Debug(msg string, keysAndValues ...any)
	// Info logs general information about application progress.
	// Use for routine events or state changes.
	// keysAndValues lets you add structured context (e.g., "module", name).
	Info(msg string, keysAndValues ...any)
	// Warn logs a message for unexpected situations that aren't errors.
	// Use when something might be wrong but the app can continue.
	// keysAndValues lets you add structured context (e.g., "attempt", n).
	Warn(msg string, keysAndValues ...any)
	// Error logs an error that prevents normal operation.
	// Use for failures or problems that need attention.
	// keysAndValues lets you add structured context (e.g., "error", err).
	Error(msg string, keysAndValues ...any)
	// Fatal logs a critical error and may terminate the program.
	// Use for unrecoverable failures.
	// keysAndValues lets you add structured context (e.g., "reason", reason).
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger with an extra key-value pair for all future logs.
	// Use to add persistent context (e.g., component, request ID).
	WithKV(key string, value any) Logger
	// GetAllKV returns all persistent key-value pairs for this logger.
	// Use to inspect logger context.
	GetAllKV() []any
	// WithName returns a logger with a specific name, the "target" of its
	// events (e.g., module or component). Use to identify the source of logs.
	WithName(name string) Logger
	// Name returns the logger's name.
	Name() string
	// WithSpan returns a logger with a named span opened on top of the
	// current span chain. The span's key-value pairs are formatted once,
	// here, and reused for every event emitted inside the span.
	WithSpan(name string, keysAndValues ...any) Logger
	// AddCallerSkip returns a logger that skips extra stack frames when reporting log source.
	// Use when wrapping the logger in helpers; returns itself if unsupported.
	AddCallerSkip(skip int) Logger
}

// Level represents the severity level of a log message.
// It can be used to filter log output based on importance.
type Level string

const (
	// LevelTrace is the most verbose level, below debug.
	LevelTrace Level = "trace"
	// LevelDebug is used for debugging purposes.
	LevelDebug Level = "debug"
	// LevelInfo is used for informational messages.
	LevelInfo Level = "info"
	// LevelWarn is used for warning messages that indicate potential issues.
	LevelWarn Level = "warn"
	// LevelError is used for error messages that indicate something went wrong.
	LevelError Level = "error"
	// LevelFatal is used for fatal errors that typically cause the program to exit.
	LevelFatal Level = "fatal"
)

// levelRank orders levels from most to least verbose.
var levelRank = map[Level]int{
	LevelTrace: 0,
	LevelDebug: 1,
	LevelInfo:  2,
	LevelWarn:  3,
	LevelError: 4,
	LevelFatal: 5,
}

// Enables reports whether a message at level other passes a threshold of l.
func (l Level) Enables(other Level) bool {
	return levelRank[other] >= levelRank[l]
}

// ShortName returns the canonical upper-case name of the level, e.g. "INFO".
func (l Level) ShortName() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if _, ok := levelRank[l]; !ok {
		return "", fmt.Errorf("log: unknown level %q", s)
	}
	return l, nil
}

// traceZapLevel is the zap level Trace maps to. Zap has no trace level of
// its own, so Trace sits one step below Debug.
const traceZapLevel = zapcore.DebugLevel - 1

func toZapLogLevel(logLevel Level) zapcore.Level {
	var zapLevel zapcore.Level
	switch logLevel {
	case LevelTrace:
		zapLevel = traceZapLevel
	case LevelDebug:
		zapLevel = zapcore.DebugLevel
	case LevelInfo:
		zapLevel = zapcore.InfoLevel
	case LevelWarn:
		zapLevel = zapcore.WarnLevel
	case LevelError:
		zapLevel = zapcore.ErrorLevel
	case LevelFatal:
		zapLevel = zapcore.FatalLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	return zapLevel
}

func fromZapLogLevel(zapLevel zapcore.Level) Level {
	switch zapLevel {
	case traceZapLevel:
		return LevelTrace
	case zapcore.DebugLevel:
		return LevelDebug
	case zapcore.InfoLevel:
		return LevelInfo
	case zapcore.WarnLevel:
		return LevelWarn
	case zapcore.ErrorLevel:
		return LevelError
	case zapcore.DPanicLevel:
		return LevelError
	case zapcore.PanicLevel, zapcore.FatalLevel:
		return LevelFatal
	}
	if zapLevel > zapcore.FatalLevel {
		return LevelFatal
	}
	return LevelTrace
}
