// Package log provides the structured logging half of the process
// observability layer: five fixed pipeline presets, a custom single-line
// event formatter, nested span context, and a one-time global install.
//
// # Modes
//
// A process picks exactly one of five modes at startup:
//
//   - ModeOriginal: compact output, explicit threshold only.
//   - ModeSimple:   compact output, threshold plus environment directives.
//   - ModeGeneral:  ModeSimple with caller file and line.
//   - ModeFull:     pretty output with process info, span context and
//     stack traces on errors.
//   - ModeCustom:   the custom event formatter, one annotated line per
//     event including the active span chain.
//
// # Installation
//
// Install claims the process-wide logger slot and may succeed at most once:
//
//	log.MustInstall(log.ModeCustom, log.LevelInfo)
//	log.L().WithName("server").Info("listening", "addr", addr)
//
// A second Install fails with ErrAlreadyInstalled and leaves the first
// pipeline untouched. Pipelines can also be built without the global slot
// via New, which is what tests do.
//
// Installing also bridges the standard library's log package into the same
// pipeline; a leading "DEBUG"/"[WARN]"/"error:" style token in a legacy
// record selects the equivalent level.
//
// # Spans
//
// WithSpan opens a named scope whose fields are formatted once, at entry:
//
//	lg := log.L().WithSpan("request", "id", reqID)
//	lg.Info("handled", "status", 200)
//
// In ModeCustom the chain renders inline, root to innermost:
//
//	INFO server: filename=handler.go:42 -> request{id=7}: handled status=200
//
// EnterSpan performs the same operation on a context-carried logger, so
// concurrent requests each keep their own chain.
//
// # Environment Configuration
//
// The non-Original modes read the environment once at install (a .env file
// is honored when present):
//
//   - LOG_FORMAT: built-in encoder (console, logfmt, json).
//   - LOG_OUTPUT: output destination (stdout, stderr, or a file path).
//   - LOG_DIRECTIVES: per-target level directives, e.g.
//     "myapp.db=trace,myapp=debug,warn". An event is emitted only if its
//     level passes both the explicit threshold and the directive matching
//     its target.
//
// # Testing
//
// For unit tests, use NewNoopLogger to avoid log output, or build a
// pipeline with New and WithWriter to capture rendered lines.
package log
