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
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, ".", cfg.Export.OutputDir)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout.Std())
	assert.False(t, cfg.LogJSON)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen_addr: ":9090"
  shutdown_timeout: 30s
export:
  output_dir: /tmp/exports
log_json: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Std())
	assert.Equal(t, "/tmp/exports", cfg.Export.OutputDir)
	assert.True(t, cfg.LogJSON)
	// Unset keys keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout.Std())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  listen_adr: \":9090\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OFFERS_LISTEN_ADDR", ":7070")
	t.Setenv("OFFERS_EXPORT_DIR", "/srv/out")
	t.Setenv("OFFERS_LOG_JSON", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.ListenAddr)
	assert.Equal(t, "/srv/out", cfg.Export.OutputDir)
	assert.True(t, cfg.LogJSON)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  listen_addr: \":9090\"\n"), 0o644))
	t.Setenv("OFFERS_LISTEN_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.ListenAddr)
}
