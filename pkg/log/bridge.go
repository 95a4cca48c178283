package log

import (
	stdlog "log"
	"strings"
)

// armStdLogBridge routes the standard library's unstructured log output
// into the installed pipeline. Records carrying a recognizable level token
// ("TRACE"/"DEBUG"/"INFO"/"WARN"/"ERROR", optionally bracketed or followed
// by a colon) are re-emitted at the equivalent level; everything else goes
// out at info. Called once, from Install.
func armStdLogBridge(lg Logger) {
	stdlog.SetFlags(0)
	stdlog.SetPrefix("")
	// Skip bridgeWriter.Write, log.Output and the log.Print* wrapper so the
	// caller reported for a bridged record is the legacy call site.
	stdlog.SetOutput(&bridgeWriter{lg: lg.AddCallerSkip(3)})
}

type bridgeWriter struct {
	lg Logger
}

func (w *bridgeWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	level, msg := splitLevelToken(msg)

	switch level {
	case LevelTrace:
		w.lg.Trace(msg)
	case LevelDebug:
		w.lg.Debug(msg)
	case LevelWarn:
		w.lg.Warn(msg)
	case LevelError:
		w.lg.Error(msg)
	default:
		w.lg.Info(msg)
	}
	return len(p), nil
}

// splitLevelToken peels a leading level marker off a legacy record.
// Fatal markers map to error: exiting the process on behalf of a legacy
// record is not this bridge's call.
func splitLevelToken(msg string) (Level, string) {
	token, rest, found := strings.Cut(msg, " ")
	if !found {
		token, rest = msg, ""
	}

	trimmed := strings.TrimRight(strings.Trim(token, "[]"), ":")
	switch strings.ToLower(trimmed) {
	case "trace":
		return LevelTrace, rest
	case "debug":
		return LevelDebug, rest
	case "info":
		return LevelInfo, rest
	case "warn", "warning":
		return LevelWarn, rest
	case "error", "fatal":
		return LevelError, rest
	}
	return LevelInfo, msg
}
