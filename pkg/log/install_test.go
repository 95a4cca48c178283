package log_test

import (
	stdlog "log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myutil/diag/pkg/log"
)

// TestInstall exercises the whole global-slot lifecycle in one test: the
// slot is claimed exactly once per process, so the install, double-install
// and bridge assertions have to share it.
func TestInstall(t *testing.T) {
	assert.False(t, log.Installed())

	// Before install, the global logger is a harmless noop.
	_, isNoop := log.L().(log.NoopLogger)
	assert.True(t, isNoop)

	tws := &testWriteSyncer{}
	require.NoError(t, log.Install(log.ModeCustom, log.LevelInfo,
		log.WithConfig(log.Config{Format: "console"}), log.WithWriter(tws)))
	assert.True(t, log.Installed())

	log.L().WithName("boot").Info("installed")
	assert.Contains(t, tws.buf.String(), "INFO boot: ")
	assert.Contains(t, tws.buf.String(), "installed")

	// The second install is rejected...
	err := log.Install(log.ModeFull, log.LevelTrace)
	require.ErrorIs(t, err, log.ErrAlreadyInstalled)

	// ...and the first pipeline keeps its configuration: still custom
	// format, still info threshold.
	tws.buf.Reset()
	log.L().WithName("boot").Debug("still filtered")
	assert.Empty(t, tws.buf.String())

	log.L().WithName("boot").Info("still active")
	assert.Contains(t, tws.buf.String(), "INFO boot: ")

	// Legacy records flow through the same pipeline at the equivalent level.
	tws.buf.Reset()
	stdlog.Print("[WARN] legacy record")
	assert.Contains(t, tws.buf.String(), "WARN")
	assert.Contains(t, tws.buf.String(), "legacy record")

	tws.buf.Reset()
	stdlog.Print("no level token")
	assert.Contains(t, tws.buf.String(), "INFO")
	assert.Contains(t, tws.buf.String(), "no level token")

	// Below-threshold legacy records are filtered like native events.
	tws.buf.Reset()
	stdlog.Print("DEBUG: legacy noise")
	assert.Empty(t, tws.buf.String())
}

func TestMustInstallPanicsOnSecondInstall(t *testing.T) {
	// Runs after TestInstall in file order; guard anyway.
	if !log.Installed() {
		require.NoError(t, log.Install(log.ModeOriginal, log.LevelInfo, log.WithWriter(&testWriteSyncer{})))
	}
	assert.Panics(t, func() {
		log.MustInstall(log.ModeOriginal, log.LevelInfo)
	})
}
