package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchtrace/strategy"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, strategy.AStar, cfg.AlgorithmValue())
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, 15, cfg.Grid.Rows)
	assert.Equal(t, 15, cfg.Grid.Cols)
	assert.Equal(t, 0.3, cfg.Grid.DiagonalProbability)
	assert.Zero(t, cfg.MaxExpansions)
}

func TestLoad_Overlay(t *testing.T) {
	path := writeFile(t, `
algorithm = "Dijkstra"
max_expansions = 100

[grid]
rows = 8
seed = 7
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, strategy.Dijkstra, cfg.AlgorithmValue())
	assert.Equal(t, 100, cfg.MaxExpansions)
	assert.Equal(t, 8, cfg.Grid.Rows)
	assert.Equal(t, DefaultGridSize, cfg.Grid.Cols, "missing keys keep defaults")
	assert.Equal(t, int64(7), cfg.Grid.Seed)
	assert.Equal(t, OutputText, cfg.Output)
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultPathPresent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appName, fileName), []byte(`output = "json"`), 0o600))

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "searchtrace", "config.toml"), p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist, "explicit path must exist")

	_, err = Load(writeFile(t, "algorithm = \"bfs\"\ncolour = \"red\"\n[grid]\nsize = 3\n"))
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "colour, grid.size")

	_, err = Load(writeFile(t, "algorithm = [\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, `algorithm = "bogo"`))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, strategy.ErrUnknownAlgorithm)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"output", func(c *Config) { c.Output = "xml" }},
		{"max_expansions", func(c *Config) { c.MaxExpansions = -1 }},
		{"rows", func(c *Config) { c.Grid.Rows = 0 }},
		{"cols", func(c *Config) { c.Grid.Cols = -2 }},
		{"probability", func(c *Config) { c.Grid.DiagonalProbability = 1.5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
