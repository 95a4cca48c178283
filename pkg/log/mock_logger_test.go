package log_test

import "github.com/myutil/diag/pkg/log"

var _ log.Logger = &MockLogger{}

// MockLogger is a test double implementation of the Logger interface.
// It captures log entries and tracks logger state for verification in tests.
type MockLogger struct {
	lastEntry MockLogEntry

	name          string
	keysAndValues []any
	spanNames     []string
	callerSkip    int
}

// NewMockLogger creates a new mock logger with default values.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		name:          "mock",
		keysAndValues: []any{},
	}
}

// MockLogEntry represents a captured log entry with all its metadata.
type MockLogEntry struct {
	Level         log.Level
	Message       string
	KeysAndValues []any
}

// Trace captures a trace level log entry.
func (ml *MockLogger) Trace(msg string, keysAndValues ...any) {
	ml.updateLastEntry(log.LevelTrace, msg, keysAndValues...)
}

// Debug captures a debug level log entry.
func (ml *MockLogger) Debug(msg string, keysAndValues ...any) {
	ml.updateLastEntry(log.LevelDebug, msg, keysAndValues...)
}

// Info captures an info level log entry.
func (ml *MockLogger) Info(msg string, keysAndValues ...any) {
	ml.updateLastEntry(log.LevelInfo, msg, keysAndValues...)
}

// Warn captures a warning level log entry.
func (ml *MockLogger) Warn(msg string, keysAndValues ...any) {
	ml.updateLastEntry(log.LevelWarn, msg, keysAndValues...)
}

// Error captures an error level log entry.
func (ml *MockLogger) Error(msg string, keysAndValues ...any) {
	ml.updateLastEntry(log.LevelError, msg, keysAndValues...)
}

// Fatal captures a fatal level log entry.
func (ml *MockLogger) Fatal(msg string, keysAndValues ...any) {
	ml.updateLastEntry(log.LevelFatal, msg, keysAndValues...)
}

// WithKV adds a key-value pair to the logger's context.
func (ml *MockLogger) WithKV(key string, value any) log.Logger {
	ml.keysAndValues = append(ml.keysAndValues, key, value)
	return ml
}

// GetAllKV returns all key-value pairs that have been added to this logger.
func (ml *MockLogger) GetAllKV() []any { return ml.keysAndValues }

// WithName sets the logger's name.
func (ml *MockLogger) WithName(name string) log.Logger {
	ml.name = name
	return ml
}

// Name returns the logger's name.
func (ml *MockLogger) Name() string { return ml.name }

// WithSpan records the span name; fields are ignored by the mock.
func (ml *MockLogger) WithSpan(name string, keysAndValues ...any) log.Logger {
	ml.spanNames = append(ml.spanNames, name)
	return ml
}

// AddCallerSkip records the requested extra skip.
func (ml *MockLogger) AddCallerSkip(skip int) log.Logger {
	ml.callerSkip += skip
	return ml
}

func (ml *MockLogger) updateLastEntry(level log.Level, msg string, keysAndValues ...any) {
	ml.lastEntry = MockLogEntry{
		Level:         level,
		Message:       msg,
		KeysAndValues: keysAndValues,
	}
}
