package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rentsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input:
  source: sqlite
  path: ./data/rentals.db
output:
  path: out/report.json
  stdout: false
log:
  format: json
metrics:
  textfile: rentsplit.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourceSQLite, cfg.Input.Source)
	assert.Equal(t, "./data/rentals.db", cfg.Input.Path)
	assert.Equal(t, "out/report.json", cfg.Output.Path)
	assert.False(t, cfg.Output.Stdout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "rentsplit.prom", cfg.Metrics.Textfile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RENTSPLIT_INPUT_PATH", "other.json")
	t.Setenv("RENTSPLIT_OUTPUT_STDOUT", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, "input:\n  path: data.json\n"))
	require.NoError(t, err)

	assert.Equal(t, "other.json", cfg.Input.Path)
	assert.False(t, cfg.Output.Stdout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "input: [\n"))
		assert.Error(t, err)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := Load(writeConfig(t, "input:\n  source: csv\n"))
		assert.ErrorContains(t, err, "unknown input source")
	})

	t.Run("bad stdout env", func(t *testing.T) {
		t.Setenv("RENTSPLIT_OUTPUT_STDOUT", "sometimes")
		_, err := Load("")
		assert.Error(t, err)
	})
}
