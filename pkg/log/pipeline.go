package log

import (
	"os"
	"path/filepath"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options collects install-time overrides.
type options struct {
	writers []zapcore.WriteSyncer
	cfg     *Config
}

// Option customizes pipeline construction.
type Option func(*options)

// WithWriter adds a writer alongside the configured output. Pass it more
// than once to write to several destinations; tests use it to capture the
// rendered lines.
func WithWriter(ws zapcore.WriteSyncer) Option {
	return func(o *options) { o.writers = append(o.writers, ws) }
}

// WithConfig bypasses environment reading and uses the given Config as-is.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = &cfg }
}

// New builds a logging pipeline for the given mode and threshold without
// touching the process-wide slot. Install is New plus the one-time global
// registration; New alone is the entry point for tests and embedded use.
func New(mode Mode, level Level, opts ...Option) (Logger, error) {
	if _, ok := modeRank[mode]; !ok {
		return nil, &ConfigError{Reason: "unknown mode " + string(mode)}
	}
	if _, ok := levelRank[level]; !ok {
		return nil, &ConfigError{Reason: "unknown level " + string(level)}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var cfg Config
	switch {
	case o.cfg != nil:
		cfg = *o.cfg
		if cfg.Format == "" {
			cfg.Format = "console"
		}
		if err := validate.Struct(cfg); err != nil {
			return nil, &ConfigError{Reason: "invalid config: " + err.Error()}
		}
	case mode == ModeOriginal:
		// Original ignores the environment entirely: fixed threshold,
		// default format and writer.
		cfg = Config{Format: "console", Output: "stdout"}
	default:
		var err error
		if cfg, err = loadConfig(); err != nil {
			return nil, err
		}
	}

	enab := newEnabler(level)
	if mode != ModeOriginal {
		enab.withDirectives(cfg.Directives)
	}

	ws := resolveWriter(cfg.Output, o.writers)

	var (
		core    zapcore.Core
		zapOpts []zap.Option
		emit    spanEmission
	)
	switch mode {
	case ModeOriginal, ModeSimple:
		core = directiveCore{
			Core: zapcore.NewCore(builtinEncoder(cfg.Format, false), ws, zap.LevelEnablerFunc(enab.levelEnabled)),
			enab: enab,
		}
	case ModeGeneral:
		core = directiveCore{
			Core: zapcore.NewCore(builtinEncoder(cfg.Format, true), ws, zap.LevelEnablerFunc(enab.levelEnabled)),
			enab: enab,
		}
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(2))
	case ModeFull:
		core = directiveCore{
			Core: zapcore.NewCore(prettyEncoder(), ws, zap.LevelEnablerFunc(enab.levelEnabled)),
			enab: enab,
		}
		zapOpts = append(zapOpts,
			zap.AddCaller(),
			zap.AddCallerSkip(2),
			zap.AddStacktrace(zapcore.ErrorLevel),
			zap.Fields(zap.Int("pid", os.Getpid())),
		)
		emit = spanEmitField
	case ModeCustom:
		core = newEventCore(enab, ws)
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(2))
		emit = spanEmitFormatter
	}

	return newZapLogger(zap.New(core, zapOpts...).Sugar(), emit), nil
}

// builtinEncoder builds the compact built-in encoder: console by default,
// logfmt or json per LOG_FORMAT.
func builtinEncoder(format string, withCaller bool) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}
	encCfg.EncodeLevel = traceAwareLevelEncoder
	if !withCaller {
		encCfg.CallerKey = zapcore.OmitKey
	}

	switch format {
	case "logfmt":
		return zaplogfmt.NewEncoder(encCfg)
	case "json":
		return zapcore.NewJSONEncoder(encCfg)
	default:
		return zapcore.NewConsoleEncoder(encCfg)
	}
}

// prettyEncoder builds the development-style encoder used by the full mode.
func prettyEncoder() zapcore.Encoder {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}
	encCfg.EncodeLevel = traceAwareLevelEncoder
	return zapcore.NewConsoleEncoder(encCfg)
}

// traceAwareLevelEncoder renders the synthetic trace level by name; every
// other level goes through the stock capital encoder.
func traceAwareLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == traceZapLevel {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(l, enc)
}

// resolveWriter builds the output destination: stdout, stderr, or a file
// path (created if needed, falling back to stdout on error), combined with
// any extra writers added through WithWriter.
func resolveWriter(output string, extra []zapcore.WriteSyncer) zapcore.WriteSyncer {
	var ws zapcore.WriteSyncer
	switch output {
	case "", "stdout":
		ws = zapcore.Lock(os.Stdout)
	case "stderr":
		ws = zapcore.Lock(os.Stderr)
	default:
		dir := filepath.Dir(output)
		err1 := os.MkdirAll(dir, 0755)
		file, err2 := os.OpenFile(output, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err1 != nil || err2 != nil {
			ws = zapcore.Lock(os.Stdout)
		} else {
			ws = zapcore.AddSync(file)
		}
	}

	if len(extra) == 0 {
		return ws
	}
	return zapcore.NewMultiWriteSyncer(append([]zapcore.WriteSyncer{ws}, extra...)...)
}
