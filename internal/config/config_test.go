package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/patterns/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests mutate the process environment, so none of them run in parallel.

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvFormat, config.EnvLogLevel, config.EnvSingletonWorkers} {
		t.Setenv(k, "")
	}
}

//
// -----------------------------------------------------------------------------
// LoadFromEnv
// -----------------------------------------------------------------------------

// TestLoadFromEnv_Defaults verifies an empty environment yields Default().
func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoadFromEnv_Overrides verifies every PATTERNS_* variable is honoured.
func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvFormat, "JSON")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvSingletonWorkers, "3")

	cfg, err := config.LoadFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 3, cfg.SingletonWorkers)
}

// TestLoadFromEnv_Invalid verifies bad values are rejected with the variable name in the error.
func TestLoadFromEnv_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"format":           {config.EnvFormat, "xml"},
		"level":            {config.EnvLogLevel, "loud"},
		"workers nan":      {config.EnvSingletonWorkers, "many"},
		"workers zero":     {config.EnvSingletonWorkers, "0"},
		"workers negative": {config.EnvSingletonWorkers, "-2"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := config.LoadFromEnv("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), kv[0])
		})
	}
}

//
// -----------------------------------------------------------------------------
// .env files
// -----------------------------------------------------------------------------

// TestLoadFromEnv_EnvFile verifies values are read from the given .env file.
func TestLoadFromEnv_EnvFile(t *testing.T) {
	clearEnv(t)
	// Setenv registers cleanup; unset so godotenv sees the keys as absent.
	for _, k := range []string{config.EnvFormat, config.EnvSingletonWorkers} {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PATTERNS_FORMAT=yaml\nPATTERNS_SINGLETON_WORKERS=5\n"), 0o600))

	cfg, err := config.LoadFromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 5, cfg.SingletonWorkers)
}

// TestLoadFromEnv_MissingEnvFile verifies a missing .env file is not an error.
func TestLoadFromEnv_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := config.LoadFromEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
