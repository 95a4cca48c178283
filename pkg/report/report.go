package report

import (
	"errors"
	"fmt"
	"io"
)

// Report is an error value carrying a message, an optional cause, and the
// call stack captured when the innermost report was constructed. Reports
// form a cause chain through ordinary error wrapping; rendering walks the
// chain outermost first.
type Report struct {
	msg    string
	cause  error
	frames []Frame
}

var (
	_ error         = (*Report)(nil)
	_ fmt.Formatter = (*Report)(nil)
)

// New returns a report with the given message and a stack captured here.
func New(msg string) error {
	return &Report{msg: msg, frames: captureFrames(1)}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(format string, args ...any) error {
	return &Report{msg: fmt.Sprintf(format, args...), frames: captureFrames(1)}
}

// Wrap adds a context message on top of err. Wrapping an existing report
// does not recapture the stack: frames always belong to the innermost
// point of capture. Wrap returns nil when err is nil.
func Wrap(err error, msg string) error {
	return wrap(err, msg)
}

// Wrapf is Wrap with fmt.Sprintf formatting.
func Wrapf(err error, format string, args ...any) error {
	return wrap(err, fmt.Sprintf(format, args...))
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	r := &Report{msg: msg, cause: err}
	var inner *Report
	if !errors.As(err, &inner) {
		r.frames = captureFrames(2)
	}
	return r
}

// Error returns the report's own message, the compact rendering.
// The full cause chain stays reachable through Unwrap and the verbose and
// alternate renderings.
func (r *Report) Error() string {
	return r.msg
}

// Unwrap returns the wrapped cause, if any.
func (r *Report) Unwrap() error {
	return r.cause
}

// Frames returns the frames of the innermost capture in the chain.
func (r *Report) Frames() []Frame {
	return chainFrames(r)
}

// Format renders the report in one of the four contract forms, selected by
// the fmt flag pair: %v compact, %+v verbose, %#v compact-alternate,
// %+#v verbose-alternate.
func (r *Report) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		io.WriteString(f, Render(r, f.Flag('+'), f.Flag('#')))
	case 's':
		io.WriteString(f, r.msg)
	case 'q':
		fmt.Fprintf(f, "%q", r.msg)
	}
}

// chainMessages collects the message of every link in the cause chain,
// outermost first. Non-report links contribute their Error string and end
// the walk.
func chainMessages(err error) []string {
	var msgs []string
	for err != nil {
		r, ok := err.(*Report)
		if !ok {
			msgs = append(msgs, err.Error())
			break
		}
		msgs = append(msgs, r.msg)
		err = r.cause
	}
	return msgs
}

// chainFrames returns the frames of the deepest report in the chain that
// recorded any, i.e. the original point of capture. Foreign links that
// wrap a report, such as fmt.Errorf with %w, are walked through, the same
// way wrap decides whether to recapture.
func chainFrames(err error) []Frame {
	var frames []Frame
	for err != nil {
		if r, ok := err.(*Report); ok && len(r.frames) > 0 {
			frames = r.frames
		}
		err = errors.Unwrap(err)
	}
	return frames
}
