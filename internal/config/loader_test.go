package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
server:
  host: "127.0.0.1"
  port: 8090
  mode: "debug"
dataset:
  path: "testdata/canvas.csv"
  watch: true
dashboard:
  title: "Quarterly Canvas"
log:
  level: "debug"
  format: "console"
metrics:
  enabled: true
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, validConfigYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "testdata/canvas.csv", cfg.Dataset.Path)
	assert.True(t, cfg.Dataset.Watch)
	assert.Equal(t, "Quarterly Canvas", cfg.Dashboard.Title)

	// Unset fields got defaults.
	assert.Equal(t, DefaultWatchDebounce, cfg.Dataset.WatchDebounce)
	assert.Equal(t, DefaultDashboardTheme, cfg.Dashboard.Theme)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidConfig(t *testing.T) {
	path := writeTempConfig(t, `
server:
  mode: "staging"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CANVAS_DATASET_PATH", "/srv/canvas/data.csv")
	t.Setenv("CANVAS_SERVER_PORT", "9001")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/srv/canvas/data.csv", cfg.Dataset.Path)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, DefaultServerMode, cfg.Server.Mode)
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}
