package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range []string{"RCUT_LOG_LEVEL", "RCUT_LOG_FORMAT", "RCUT_MAX_RECORD"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	env, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", env.LogLevel)
	assert.Equal(t, LogFormatConsole, env.LogFormat)
	assert.Equal(t, 0, env.MaxRecord)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RCUT_LOG_LEVEL", "DEBUG")
	t.Setenv("RCUT_LOG_FORMAT", " JSON")
	t.Setenv("RCUT_MAX_RECORD", "1024")

	env, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, LogFormatJSON, env.LogFormat)
	assert.Equal(t, 1024, env.MaxRecord)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "rcut.env")
	require.NoError(t, os.WriteFile(file, []byte("RCUT_LOG_LEVEL=error\nRCUT_MAX_RECORD=77\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("RCUT_LOG_LEVEL")
		os.Unsetenv("RCUT_MAX_RECORD")
	})

	t.Run("file values", func(t *testing.T) {
		env, err := Load(file)
		require.NoError(t, err)
		assert.Equal(t, "error", env.LogLevel)
		assert.Equal(t, 77, env.MaxRecord)
	})
	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("RCUT_LOG_LEVEL", "info")
		env, err := Load(file)
		require.NoError(t, err)
		assert.Equal(t, "info", env.LogLevel)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		clearEnvVars(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("bad format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RCUT_LOG_FORMAT", "yaml")
		_, err := Load("")
		assert.ErrorContains(t, err, "RCUT_LOG_FORMAT")
	})
	t.Run("negative max record", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RCUT_MAX_RECORD", "-1")
		_, err := Load("")
		assert.ErrorContains(t, err, "RCUT_MAX_RECORD")
	})
	t.Run("max record not a number", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("RCUT_MAX_RECORD", "lots")
		_, err := Load("")
		assert.Error(t, err)
	})
}
