package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs and
// clears the environment overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Chdir(t.TempDir())
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewer:\n  step: 2\nssh:\n  idle_timeout: 5m\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(2), cfg.Viewer.Step)
	assert.Equal(t, 5*time.Minute, cfg.SSH.IdleTimeout)
	// Unset keys keep defaults
	assert.Equal(t, Default().Viewer.Scale, cfg.Viewer.Scale)
	assert.Equal(t, Default().Storage.DBPath, cfg.Storage.DBPath)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("viewer: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "notsure.yaml"), []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	// User config wins over the local directory
	userPath := UserPath("config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0o755))
	require.NoError(t, os.WriteFile(userPath, []byte("log:\n  level: warn\n"), 0o644))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	isolate(t)

	userPath := UserPath("config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0o755))
	require.NoError(t, os.WriteFile(userPath, []byte("viewer: [unclosed"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDBPath, "/tmp/runs.db")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runs.db", cfg.Storage.DBPath)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero scale", func(c *Config) { c.Viewer.Scale = 0 }},
		{"negative step", func(c *Config) { c.Viewer.Step = -1 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"negative idle timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
