// Package config loads seam carver settings from an optional TOML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/disintegration/imaging"
)

// DefaultFile is the config file looked up in the working directory when no
// path is given.
const DefaultFile = "seamcarve.toml"

// Environment variables that override file settings.
const (
	EnvLogLevel = "SEAMCARVE_LOG_LEVEL"
	EnvWorkers  = "SEAMCARVE_WORKERS"
)

// Config holds all tunable settings.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Energy EnergyConfig `toml:"energy"`
	Export ExportConfig `toml:"export"`
}

type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn or error
}

type EnergyConfig struct {
	// Workers is the number of goroutines used for the energy pass.
	// 1 runs sequentially.
	Workers int `toml:"workers"`
}

type ExportConfig struct {
	Format        string  `toml:"format"`         // Encoding used for previews
	PreviewPrefix string  `toml:"preview_prefix"` // Preview files are <prefix><n>.<format>
	Output        string  `toml:"output"`         // Final image written on quit
	PreviewScale  float64 `toml:"preview_scale"`  // Default scale for MCP previews
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Energy: EnergyConfig{Workers: 1},
		Export: ExportConfig{
			Format:        "png",
			PreviewPrefix: "preview",
			Output:        "newImg.png",
			PreviewScale:  1.0,
		},
	}
}

// Load reads the file at path on top of the defaults, then applies the
// environment. An empty path tries DefaultFile and tolerates its absence; an
// explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Energy.Workers = n
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Energy.Workers < 1 {
		return fmt.Errorf("energy workers must be at least 1, got %d", c.Energy.Workers)
	}
	if _, err := imaging.FormatFromExtension(c.Export.Format); err != nil {
		return fmt.Errorf("export format %q: %w", c.Export.Format, err)
	}
	if c.Export.Output == "" {
		return errors.New("export output must not be empty")
	}
	if _, err := imaging.FormatFromFilename(c.Export.Output); err != nil {
		return fmt.Errorf("export output %q: %w", c.Export.Output, err)
	}
	if c.Export.PreviewScale <= 0 {
		return fmt.Errorf("preview scale must be positive, got %v", c.Export.PreviewScale)
	}
	return nil
}

// PreviewPath returns the file name for the n-th preview export.
func (c *Config) PreviewPath(n int) string {
	return fmt.Sprintf("%s%d.%s", c.Export.PreviewPrefix, n, strings.ToLower(c.Export.Format))
}
