package log

import (
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// directive is one `target=level` entry from the environment.
type directive struct {
	target string
	level  Level
}

// enabler decides whether an event is emitted: its level must pass the
// explicit threshold AND the environment directive matching its target.
// Both the threshold and the directive set are fixed at install time.
type enabler struct {
	threshold  Level
	directives []directive
	def        *Level // bare level entry, applies to unmatched targets
}

func newEnabler(threshold Level) *enabler {
	return &enabler{threshold: threshold}
}

// parseDirectives reads a comma-separated directive list such as
// "myapp.db=trace,myapp=debug,warn". Entries with an unknown level are
// ignored rather than failing install: the explicit threshold remains the
// fallback when directives are absent or malformed.
func parseDirectives(s string) (dirs []directive, def *Level) {
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		target, levelStr, found := strings.Cut(entry, "=")
		if !found {
			if lvl, err := ParseLevel(entry); err == nil {
				def = &lvl
			}
			continue
		}
		lvl, err := ParseLevel(strings.TrimSpace(levelStr))
		if err != nil {
			continue
		}
		dirs = append(dirs, directive{target: strings.TrimSpace(target), level: lvl})
	}

	// Longest target first, so the most specific directive wins.
	sort.SliceStable(dirs, func(i, j int) bool {
		return len(dirs[i].target) > len(dirs[j].target)
	})

	return dirs, def
}

func (e *enabler) withDirectives(s string) *enabler {
	e.directives, e.def = parseDirectives(s)
	return e
}

// levelEnabled checks the threshold only; target-aware checks happen in allows.
func (e *enabler) levelEnabled(zl zapcore.Level) bool {
	return e.threshold.Enables(fromZapLogLevel(zl))
}

// allows reports whether an event at lvl from target passes both the
// threshold and the directive set.
func (e *enabler) allows(lvl Level, target string) bool {
	if !e.threshold.Enables(lvl) {
		return false
	}

	for _, d := range e.directives {
		if matchesTarget(d.target, target) {
			return d.level.Enables(lvl)
		}
	}
	if e.def != nil {
		return e.def.Enables(lvl)
	}
	return true
}

// matchesTarget reports whether a directive for dir applies to target:
// exact match or a dotted-path prefix ("myapp" covers "myapp.db").
func matchesTarget(dir, target string) bool {
	if dir == target {
		return true
	}
	return strings.HasPrefix(target, dir+".")
}

// directiveCore applies an enabler's target-aware filtering in front of one
// of the built-in encoder cores.
type directiveCore struct {
	zapcore.Core
	enab *enabler
}

func (c directiveCore) With(fields []zapcore.Field) zapcore.Core {
	return directiveCore{Core: c.Core.With(fields), enab: c.enab}
}

func (c directiveCore) Enabled(lvl zapcore.Level) bool {
	return c.enab.levelEnabled(lvl)
}

func (c directiveCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.enab.allows(fromZapLogLevel(ent.Level), ent.LoggerName) {
		return ce.AddCore(ent, c)
	}
	return ce
}
