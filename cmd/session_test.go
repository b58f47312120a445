package cmd

import (
	"testing"
	"time"

	"github.com/etnz/valutatrade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig replaces the global configuration for the duration of the test.
func withConfig(t *testing.T, c Config) {
	t.Helper()
	saved := config
	config = c
	t.Cleanup(func() { config = saved })
}

func TestSessionFile(t *testing.T) {
	withConfig(t, Config{DataDir: t.TempDir(), LogFormat: "logfmt", Plain: true})

	_, err := loadSession()
	assert.ErrorIs(t, err, valutatrade.ErrNotLoggedIn)

	want := &valutatrade.Session{
		Token:     "5e1f4c1a-0000-4000-8000-000000000000",
		AccountID: 7,
		Username:  "alice",
		Started:   time.Date(2025, time.October, 9, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, saveSession(want))

	got, err := loadSession()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, removeSession())
	_, err = loadSession()
	assert.ErrorIs(t, err, valutatrade.ErrNotLoggedIn)
	assert.NoError(t, removeSession(), "removing a missing session is fine")
}

func TestGetEnv(t *testing.T) {
	t.Setenv(EnvDataDir, "/var/lib/vt")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvPlain, "not-a-bool")

	assert.Equal(t, "/var/lib/vt", getEnv(EnvDataDir, DefaultDataDir))
	assert.Equal(t, "logfmt", getEnv(EnvLogFormat, "logfmt"))
	assert.True(t, getEnvAsBool(EnvVerbose, false))
	assert.False(t, getEnvAsBool(EnvPlain, false), "unparsable values fall back to the default")
}
