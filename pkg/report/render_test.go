package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainReport builds a three-link chain with a fixed fabricated stack,
// bypassing runtime capture so renderings are fully deterministic.
func chainReport() *Report {
	inner := &Report{
		msg: "my error 1",
		frames: []Frame{
			{Function: "myutil::a", File: "/src/a.go", Line: 10},
			{Function: "std::b", File: "/usr/lib/b.go", Line: 20},
			{Function: "myutil::c", File: "/src/c.go", Line: 30},
		},
	}
	mid := &Report{msg: "my error 2", cause: inner}
	return &Report{msg: "my error 3", cause: mid}
}

func TestCompactForm(t *testing.T) {
	h := &hook{}
	assert.Equal(t, "my error 3", h.render(chainReport(), false, false))
}

func TestCompactAlternateForm(t *testing.T) {
	h := &hook{}
	assert.Equal(t, "my error 3: my error 2: my error 1", h.render(chainReport(), false, true))
}

func TestVerboseForm(t *testing.T) {
	h := &hook{prefix: "myutil"}
	out := h.render(chainReport(), true, false)

	// The verbose form's message prefix equals the compact form's content.
	assert.True(t, strings.HasPrefix(out, h.render(chainReport(), false, false)))

	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "my error 2")
	assert.Contains(t, out, "my error 1")

	// Filtered frames in original relative order, foreign frame gone.
	assert.Contains(t, out, "myutil::a")
	assert.Contains(t, out, "myutil::c")
	assert.NotContains(t, out, "std::b")
	assert.Less(t, strings.Index(out, "myutil::a"), strings.Index(out, "myutil::c"))

	// Optional sections are off by default.
	assert.NotContains(t, out, "Location:")
	assert.NotContains(t, out, "Environment:")
}

func TestVerboseAlternateForm(t *testing.T) {
	h := &hook{prefix: "myutil"}
	out := h.render(chainReport(), true, true)

	assert.True(t, strings.HasPrefix(out, "my error 3"))
	assert.Contains(t, out, "0: my error 2")
	assert.Contains(t, out, "1: my error 1")
	assert.Contains(t, out, "0: myutil::a")
	assert.Contains(t, out, "at /src/a.go:10")
	assert.NotContains(t, out, "std::b")
}

func TestVerboseKeepsUnnamedFrames(t *testing.T) {
	r := &Report{
		msg: "boom",
		frames: []Frame{
			{File: "/x/asm.s", Line: 5},
			{Function: "other.pkg.fn"},
		},
	}
	h := &hook{prefix: "myutil"}
	out := h.render(r, true, false)

	assert.Contains(t, out, "<unknown>")
	assert.Contains(t, out, "/x/asm.s:5")
	assert.NotContains(t, out, "other.pkg.fn")
}

func TestLocationSection(t *testing.T) {
	h := &hook{showLocation: true}
	out := h.render(chainReport(), true, false)

	assert.Contains(t, out, "Location:\n    /src/a.go:10")
}

func TestEnvSection(t *testing.T) {
	t.Setenv("DIAG_RENDER_TEST_MARKER", "present")

	h := &hook{showEnv: true}
	out := h.render(chainReport(), true, false)

	assert.Contains(t, out, "Environment:")
	assert.Contains(t, out, "DIAG_RENDER_TEST_MARKER=present")
}

func TestRenderNonReportError(t *testing.T) {
	h := &hook{}
	err := assert.AnError

	assert.Equal(t, err.Error(), h.render(err, false, false))
	assert.Equal(t, err.Error(), h.render(err, false, true))
	assert.Equal(t, err.Error(), h.render(err, true, false))
}

func TestRenderNil(t *testing.T) {
	h := &hook{}
	assert.Empty(t, h.render(nil, true, true))
}

func TestWrapPreservesInnermostFrames(t *testing.T) {
	inner := New("root cause")
	outer := Wrap(Wrap(inner, "mid"), "outer")

	r, ok := outer.(*Report)
	require.True(t, ok)
	require.NotEmpty(t, r.Frames())
	assert.Equal(t, inner.(*Report).frames, r.Frames())
}
