package report

import (
	"runtime"
	"strings"
)

// Frame is one entry of a captured call stack. Function may be empty when
// symbols are unavailable (stripped binaries, foreign frames); such frames
// are always kept by the filter since hiding them could hide the true
// fault location.
type Frame struct {
	Function string
	File     string
	Line     int
}

// captureDepth bounds how many frames a report records.
const captureDepth = 32

// captureFrames materializes the call stack of the caller's caller, skip
// levels up.
func captureFrames(skip int) []Frame {
	var pcs [captureDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return nil
	}

	frames := make([]Frame, 0, n)
	iter := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := iter.Next()
		frames = append(frames, Frame{
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return frames
}

// KeepFrame is the frame-filter predicate: a frame passes if it has no
// symbol name, or its symbol name starts with prefix. The empty prefix
// keeps every frame.
func KeepFrame(prefix string, f Frame) bool {
	if prefix == "" || f.Function == "" {
		return true
	}
	return strings.HasPrefix(f.Function, prefix)
}

// FilterFrames applies KeepFrame over a frame list, preserving order.
func FilterFrames(prefix string, frames []Frame) []Frame {
	if prefix == "" {
		return frames
	}

	kept := make([]Frame, 0, len(frames))
	for _, f := range frames {
		if KeepFrame(prefix, f) {
			kept = append(kept, f)
		}
	}
	return kept
}
