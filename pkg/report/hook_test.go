package report_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myutil/diag/pkg/report"
)

// TestHookInstall exercises the whole global-hook lifecycle in one test:
// the slot is claimed exactly once per process, so the install,
// double-install and filtering assertions have to share it.
func TestHookInstall(t *testing.T) {
	assert.False(t, report.Installed())

	require.NoError(t, report.Install("github.com/myutil"))
	assert.True(t, report.Installed())

	err := report.Install("")
	require.ErrorIs(t, err, report.ErrAlreadyInstalled)

	// The installed prefix now drives verbose renderings: frames from this
	// module stay, the testing package's frames disappear.
	verbose := fmt.Sprintf("%+v", report.New("filtered"))
	assert.Contains(t, verbose, "TestHookInstall")
	assert.NotContains(t, verbose, "testing.tRunner")

	// The optional sections stay off: the first install had no toggles and
	// the rejected second install must not have altered it.
	assert.NotContains(t, verbose, "Location:")
	assert.NotContains(t, verbose, "Environment:")

	assert.Panics(t, func() { report.MustInstall("other") })
}

func TestVerbosePrefixProperty(t *testing.T) {
	err := report.Wrap(report.New("inner"), "outer")

	compact := report.Render(err, false, false)
	for _, form := range []string{
		report.Render(err, true, false),
		report.Render(err, false, true),
		report.Render(err, true, true),
	} {
		assert.True(t, strings.HasPrefix(form, compact))
	}
}
