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
	// Run from a temp dir so a stray tessella.toml cannot leak in.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "elements.toml", cfg.CatalogPath)
	assert.Equal(t, "images", cfg.ImagesDir)
	assert.Equal(t, "normal", cfg.DefaultTable)
	assert.Equal(t, []string{"gender"}, cfg.HiddenTables)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 2.0, cfg.Fetch.RatePerSecond)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tessella.toml")
	body := `
catalog_path = "data/periodic.toml"
hidden_tables = ["gender", "wip"]

[window]
width = 1920
height = 1080

[fetch]
timeout = "5s"

[fetch.sources]
normal = "https://example.org/post/1"

[logging]
level = "debug"
file = "tessella.log"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/periodic.toml", cfg.CatalogPath)
	assert.Equal(t, []string{"gender", "wip"}, cfg.HiddenTables)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, map[string]string{"normal": "https://example.org/post/1"}, cfg.Fetch.Sources)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "tessella.log", cfg.Logging.File)

	// Values the file does not mention keep their defaults.
	assert.Equal(t, "images", cfg.ImagesDir)
	assert.Equal(t, 4, cfg.Fetch.Concurrency)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TESSELLA_CATALOG_PATH", "/srv/catalog.toml")
	t.Setenv("TESSELLA_WINDOW_WIDTH", "640")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/catalog.toml", cfg.CatalogPath)
	assert.Equal(t, 640, cfg.Window.Width)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	valid, err := Load("")
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty catalog path", func(c *Config) { c.CatalogPath = "" }, "catalog_path"},
		{"empty images dir", func(c *Config) { c.ImagesDir = "" }, "images_dir"},
		{"zero window", func(c *Config) { c.Window.Height = 0 }, "window size"},
		{"bad concurrency", func(c *Config) { c.Fetch.Concurrency = 0 }, "fetch.concurrency"},
		{"bad rate", func(c *Config) { c.Fetch.RatePerSecond = -1 }, "fetch.rate_per_second"},
		{"bad timeout", func(c *Config) { c.Fetch.Timeout = 0 }, "fetch.timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	assert.NoError(t, valid.Validate())
}
