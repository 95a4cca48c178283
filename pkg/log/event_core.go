package log

import (
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
)

// maxFilenameLen is the hard cut applied to the caller's file name in the
// custom event format. No ellipsis marker is added.
const maxFilenameLen = 20

var _ zapcore.Core = (*eventCore)(nil)

// eventCore is the custom event formatter: a zapcore.Core that renders one
// line per event in the form
//
//	LEVEL TARGET: filename=<name>:<line> -> span1{k=v}: span2: msg k=v
//
// where the span section lists the event's open span chain from root to
// innermost and the trailing fields go through the shared field formatter.
type eventCore struct {
	enab *enabler
	out  zapcore.WriteSyncer
	ctx  []zapcore.Field
}

func newEventCore(enab *enabler, out zapcore.WriteSyncer) *eventCore {
	return &eventCore{enab: enab, out: out}
}

func (c *eventCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.ctx = make([]zapcore.Field, 0, len(c.ctx)+len(fields))
	clone.ctx = append(clone.ctx, c.ctx...)
	clone.ctx = append(clone.ctx, fields...)
	return &clone
}

func (c *eventCore) Enabled(lvl zapcore.Level) bool {
	return c.enab.levelEnabled(lvl)
}

func (c *eventCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.enab.allows(fromZapLogLevel(ent.Level), ent.LoggerName) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the event into a pooled buffer and writes it as a single
// line. Write failures are returned to the caller, never retried.
func (c *eventCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf := bufPool.Get()
	defer buf.Free()

	buf.AppendString(fromZapLogLevel(ent.Level).ShortName())
	buf.AppendByte(' ')
	buf.AppendString(ent.LoggerName)
	buf.AppendString(": ")

	name := "unknown"
	line := 0
	if ent.Caller.Defined {
		name = filepath.Base(ent.Caller.File)
		line = ent.Caller.Line
	}
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	buf.AppendString("filename=")
	buf.AppendString(name)
	buf.AppendByte(':')
	buf.AppendString(strconv.Itoa(line))
	buf.AppendString(" -> ")

	all := fields
	if len(c.ctx) > 0 {
		all = make([]zapcore.Field, 0, len(c.ctx)+len(fields))
		all = append(all, c.ctx...)
		all = append(all, fields...)
	}

	if chain := extractSpanChain(all); len(chain) > 0 {
		chain.appendTo(buf)
	}

	if ent.Message != "" {
		buf.AppendString(ent.Message)
		if countRenderable(all) > 0 {
			buf.AppendByte(' ')
		}
	}
	appendKeyValues(buf, all)

	buf.AppendByte('\n')

	_, err := c.out.Write(buf.Bytes())
	return err
}

func (c *eventCore) Sync() error {
	return c.out.Sync()
}

// extractSpanChain pulls the skip-typed span chain out of an event's fields.
func extractSpanChain(fields []zapcore.Field) spanChain {
	for _, f := range fields {
		if f.Type != zapcore.SkipType || f.Key != spanFieldKey {
			continue
		}
		if chain, ok := f.Interface.(spanChain); ok {
			return chain
		}
	}
	return nil
}
