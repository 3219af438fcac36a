// Package config loads the editor configuration from file, environment and
// defaults, in that order of increasing precedence for env over file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tessella-works/tessella/internal/logging"
)

// Config is the full tessella configuration.
type Config struct {
	// CatalogPath is the TOML file holding every table and element.
	CatalogPath string `mapstructure:"catalog_path"`
	// ImagesDir holds one composite image per table, named <table>.png.
	ImagesDir string `mapstructure:"images_dir"`
	// ExportDir receives sliced per-element icons.
	ExportDir string `mapstructure:"export_dir"`

	// DefaultTable opens first. When absent the first catalog table opens.
	DefaultTable string `mapstructure:"default_table"`
	// HiddenTables lists substrings; tables whose name contains one are
	// kept in the catalog but left out of the toolbar.
	HiddenTables []string `mapstructure:"hidden_tables"`

	Window  Window         `mapstructure:"window"`
	Fetch   Fetch          `mapstructure:"fetch"`
	Logging logging.Config `mapstructure:"logging"`
}

// Window sets the initial editor window size in dp.
type Window struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Fetch tunes the canvas downloader. Sources maps a table name to the
// post page its canvas is scraped from.
type Fetch struct {
	UserAgent     string            `mapstructure:"user_agent"`
	Timeout       time.Duration     `mapstructure:"timeout"`
	RatePerSecond float64           `mapstructure:"rate_per_second"`
	Concurrency   int               `mapstructure:"concurrency"`
	Sources       map[string]string `mapstructure:"sources"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog_path", "elements.toml")
	v.SetDefault("images_dir", "images")
	v.SetDefault("export_dir", "export")
	v.SetDefault("default_table", "normal")
	v.SetDefault("hidden_tables", []string{"gender"})

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)

	v.SetDefault("fetch.user_agent", "tessella/1.0")
	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("fetch.rate_per_second", 2.0)
	v.SetDefault("fetch.concurrency", 4)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 20)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 14)
	v.SetDefault("logging.compress", false)
}

// Load reads the configuration. path names an explicit config file and must
// exist when given; with path empty, tessella.toml is searched for in the
// working directory and $HOME/.config/tessella, and missing files are fine.
// TESSELLA_* environment variables override file values, with dots mapped
// to underscores (TESSELLA_WINDOW_WIDTH).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TESSELLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("tessella")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tessella")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks for values the editor cannot start with.
func (c *Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path must not be empty")
	}
	if c.ImagesDir == "" {
		return fmt.Errorf("images_dir must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Fetch.Concurrency <= 0 {
		return fmt.Errorf("fetch.concurrency must be a positive integer")
	}
	if c.Fetch.RatePerSecond <= 0 {
		return fmt.Errorf("fetch.rate_per_second must be positive")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	return nil
}
