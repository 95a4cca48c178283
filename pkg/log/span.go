package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Used when a value is missing for a key in key-value pairs.
const missingFieldValue = "MISSING"

// spanFieldKey carries the active span chain through zap as a skip-typed
// field: the built-in encoders ignore it, the event formatter picks it up.
const spanFieldKey = "@spans"

var bufPool = buffer.NewPool()

// Span is a named scope that was active when an event was emitted.
// Its key-value pairs are formatted exactly once, when the span is opened,
// and the resulting string is reused for every event inside the span.
type Span struct {
	name   string
	fields string
}

// Name returns the span's name.
func (s Span) Name() string { return s.name }

// Fields returns the span's formatted key-value pairs; empty when the span
// was opened without fields.
func (s Span) Fields() string { return s.fields }

func newSpan(name string, keysAndValues ...any) Span {
	buf := bufPool.Get()
	defer buf.Free()

	appendKeyValues(buf, sweetenFields(keysAndValues))
	return Span{name: name, fields: buf.String()}
}

// spanChain is the ordered list of open spans, root first.
type spanChain []Span

// String renders the chain the way the event formatter does:
// every span is followed by ": ", and non-empty fields appear in braces.
func (sc spanChain) String() string {
	buf := bufPool.Get()
	defer buf.Free()

	sc.appendTo(buf)
	return buf.String()
}

func (sc spanChain) appendTo(buf *buffer.Buffer) {
	for _, sp := range sc {
		buf.AppendString(sp.name)
		if sp.fields != "" {
			buf.AppendByte('{')
			buf.AppendString(sp.fields)
			buf.AppendByte('}')
		}
		buf.AppendString(": ")
	}
}

// spanChainField wraps the chain so it rides along with an event's fields
// without being rendered by the built-in encoders.
func spanChainField(sc spanChain) zapcore.Field {
	return zapcore.Field{Key: spanFieldKey, Type: zapcore.SkipType, Interface: sc}
}

// sweetenFields turns loosely-typed key-value pairs into zap fields.
// A dangling key gets the MISSING placeholder; non-string keys are
// stringified rather than dropped.
func sweetenFields(keysAndValues []any) []zapcore.Field {
	if len(keysAndValues) == 0 {
		return nil
	}
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues, missingFieldValue)
	}

	fields := make([]zapcore.Field, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}

	return fields
}

// appendKeyValues is the shared field-formatting routine: it renders fields
// as space-separated key=value pairs, in order. Both span fields (at span
// entry) and event fields (at emission) go through it.
func appendKeyValues(buf *buffer.Buffer, fields []zapcore.Field) {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		if f.Type == zapcore.SkipType {
			continue
		}
		f.AddTo(enc)
	}

	first := true
	for _, f := range fields {
		if f.Type == zapcore.SkipType {
			continue
		}
		if !first {
			buf.AppendByte(' ')
		}
		first = false
		fmt.Fprintf(buf, "%s=%v", f.Key, enc.Fields[f.Key])
	}
}

func countRenderable(fields []zapcore.Field) int {
	n := 0
	for _, f := range fields {
		if f.Type != zapcore.SkipType {
			n++
		}
	}
	return n
}
