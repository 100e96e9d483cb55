package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HBNB_ADDR", ":9090")
	t.Setenv("HBNB_METRICS_ENABLED", "false")
	t.Setenv("HBNB_SEED_FILE", "fixtures.yaml")
	t.Setenv("HBNB_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "fixtures.yaml", cfg.SeedFile)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "hbnb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: debug\n"), 0o600))
	t.Setenv("HBNB_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFailsOnUnreadableConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Run("missing", func(t *testing.T) {
		t.Setenv("HBNB_CONFIG_FILE", filepath.Join(dir, "nope.yaml"))

		_, err := Load()
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed\n"), 0o600))
		t.Setenv("HBNB_CONFIG_FILE", path)

		_, err := Load()
		assert.ErrorContains(t, err, "read config file")
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
