package log

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrAlreadyInstalled is returned when Install is called after the global
// pipeline slot has been claimed. The first pipeline stays active and
// unchanged.
var ErrAlreadyInstalled = errors.New("log: global pipeline already installed")

var (
	installMu    sync.Mutex
	installed    atomic.Bool
	activeLogger atomic.Value // Logger
)

// Install builds the pipeline for the given mode and threshold and claims
// the process-wide logger slot. It may succeed at most once per process;
// any later call fails with ErrAlreadyInstalled without touching the active
// pipeline. On success the standard library's log output is bridged into
// the same pipeline.
//
// Installation errors are configuration errors: callers that cannot proceed
// without logging should use MustInstall and fail fast.
func Install(mode Mode, level Level, opts ...Option) error {
	installMu.Lock()
	defer installMu.Unlock()

	if installed.Load() {
		return ErrAlreadyInstalled
	}

	lg, err := New(mode, level, opts...)
	if err != nil {
		return err
	}

	activeLogger.Store(lg)
	armStdLogBridge(lg)
	installed.Store(true)
	return nil
}

// MustInstall is Install that panics on error. Inconsistent global logging
// state makes every later diagnostic untrustworthy, so a failed install is
// not worth surviving.
func MustInstall(mode Mode, level Level, opts ...Option) {
	if err := Install(mode, level, opts...); err != nil {
		panic(err)
	}
}

// L returns the installed process-wide logger, or a NoopLogger before
// Install has run.
func L() Logger {
	if v := activeLogger.Load(); v != nil {
		return v.(Logger)
	}
	return NewNoopLogger()
}

// Installed reports whether the global pipeline slot has been claimed.
func Installed() bool {
	return installed.Load()
}
