package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no user config visible.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	return dir
}

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"LogLevel", func(c *Config) { c.LogLevel = "trace" }},
		{"LogFormat", func(c *Config) { c.LogFormat = "xml" }},
		{"Output", func(c *Config) { c.Output.Format = "csv" }},
		{"Orient", func(c *Config) { c.Tiles.Orient = "ccw" }},
		{"EmptyFrom", func(c *Config) { c.Paths.From = " " }},
		{"ShortSequence", func(c *Config) { c.Paths.Sequence = []string{"svr"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	l := NewLoader(nil)
	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, l.ConfigFileUsed())
}

func TestLoad_SearchedFile(t *testing.T) {
	dir := isolate(t)
	yaml := "log_level: debug\noutput:\n  format: yaml\npaths:\n  sequence: [svr, dac, out]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puzzlegraph.yaml"), []byte(yaml), 0o600))

	cfg, err := NewLoader(nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, []string{"svr", "dac", "out"}, cfg.Paths.Sequence)
	assert.Equal(t, "you", cfg.Paths.From, "unset keys keep defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("tiles:\n  orient: auto\n"), 0o600))

	l := NewLoader(nil)
	cfg, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, OrientAuto, cfg.Tiles.Orient)
	assert.Equal(t, path, l.ConfigFileUsed())

	_, err = NewLoader(nil).Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("PUZZLEGRAPH_OUTPUT_FORMAT", "json")
	t.Setenv("PUZZLEGRAPH_PATHS_ANY_ORDER", "true")

	cfg, err := NewLoader(nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Paths.AnyOrder)
}

func TestLoad_Invalid(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puzzlegraph.yaml"), []byte("log_level: loud\n"), 0o600))

	_, err := NewLoader(nil).Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, []string{".", filepath.Join("/xdg", "puzzlegraph")}, SearchPaths())
}
