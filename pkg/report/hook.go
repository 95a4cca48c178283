package report

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadyInstalled is returned when Install is called after the global
// hook slot has been claimed. The first hook stays active and unchanged.
var ErrAlreadyInstalled = errors.New("report: error hook already installed")

// hook holds the installed rendering configuration: the origin-package
// prefix frames are filtered against, and the optional report sections.
type hook struct {
	prefix       string
	showLocation bool
	showEnv      bool
}

// HookOption customizes hook installation.
type HookOption func(*hook)

// WithLocationSection includes the "Location" section (the source location
// of report construction) in verbose renderings. Off by default.
func WithLocationSection() HookOption {
	return func(h *hook) { h.showLocation = true }
}

// WithEnvSection includes the "Environment" section (the process
// environment) in verbose renderings. Off by default, since environment
// dumps leak easily into shipped logs.
func WithEnvSection() HookOption {
	return func(h *hook) { h.showEnv = true }
}

var installedHook atomic.Pointer[hook]

// Install claims the process-wide error hook slot with the given frame
// filter prefix: verbose renderings keep a frame only if its symbol name
// starts with prefix, or if it has no symbol name at all. An empty prefix
// disables filtering. Install may succeed at most once per process; later
// calls fail with ErrAlreadyInstalled without touching the active hook.
func Install(prefix string, opts ...HookOption) error {
	h := &hook{prefix: prefix}
	for _, opt := range opts {
		opt(h)
	}

	if !installedHook.CompareAndSwap(nil, h) {
		return ErrAlreadyInstalled
	}
	return nil
}

// MustInstall is Install that panics on error, for callers that treat a
// half-configured observability layer as unrecoverable.
func MustInstall(prefix string, opts ...HookOption) {
	if err := Install(prefix, opts...); err != nil {
		panic(err)
	}
}

// Installed reports whether the global hook slot has been claimed.
func Installed() bool {
	return installedHook.Load() != nil
}

// activeHook returns the installed hook, or a zero hook (no filtering,
// no optional sections) before Install has run.
func activeHook() *hook {
	if h := installedHook.Load(); h != nil {
		return h
	}
	return &hook{}
}
