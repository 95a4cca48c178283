package report

import (
	"fmt"
	"os"
	"strings"
)

// Render produces one of the four textual forms of an error, selected by
// the (verbose, alternate) flag pair:
//
//   - compact (false, false): topmost message only.
//   - compact-alternate (false, true): the full cause chain on one line,
//     outermost first, colon-joined.
//   - verbose (true, false): topmost message, the cause list, and the
//     frames of the original capture filtered through the installed hook.
//   - verbose-alternate (true, true): the verbose content in an indented,
//     numbered layout.
//
// Verbose forms honor the installed hook's Location and Environment
// section toggles. Render accepts any error; non-report errors have a
// single-message chain and no frames.
func Render(err error, verbose, alternate bool) string {
	return activeHook().render(err, verbose, alternate)
}

func (h *hook) render(err error, verbose, alternate bool) string {
	if err == nil {
		return ""
	}

	msgs := chainMessages(err)
	if !verbose {
		if alternate {
			return strings.Join(msgs, ": ")
		}
		return msgs[0]
	}

	var b strings.Builder
	b.WriteString(msgs[0])

	if len(msgs) > 1 {
		b.WriteString("\n\nCaused by:")
		for i, m := range msgs[1:] {
			if alternate {
				fmt.Fprintf(&b, "\n%4d: %s", i, m)
			} else {
				b.WriteString("\n    " + m)
			}
		}
	}

	if frames := FilterFrames(h.prefix, chainFrames(err)); len(frames) > 0 {
		b.WriteString("\n\nStack trace:")
		for i, fr := range frames {
			name := fr.Function
			if name == "" {
				name = "<unknown>"
			}
			if alternate {
				fmt.Fprintf(&b, "\n%4d: %s", i, name)
				if fr.File != "" {
					fmt.Fprintf(&b, "\n      at %s:%d", fr.File, fr.Line)
				}
			} else {
				b.WriteString("\n    " + name)
				if fr.File != "" {
					fmt.Fprintf(&b, "\n        %s:%d", fr.File, fr.Line)
				}
			}
		}
	}

	if h.showLocation {
		if all := chainFrames(err); len(all) > 0 && all[0].File != "" {
			fmt.Fprintf(&b, "\n\nLocation:\n    %s:%d", all[0].File, all[0].Line)
		}
	}

	if h.showEnv {
		b.WriteString("\n\nEnvironment:")
		for _, kv := range os.Environ() {
			b.WriteString("\n    " + kv)
		}
	}

	return b.String()
}
