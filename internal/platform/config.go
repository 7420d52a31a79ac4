package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvHome     = "ADIFCOUNT_HOME"
	EnvTimezone = "ADIFCOUNT_TZ"
	EnvConfig   = "ADIFCOUNT_CONFIG"
)

// Config is the user configuration, read from YAML.
// All fields are optional.
type Config struct {
	// Home is the directory relative log paths are resolved against.
	Home string `yaml:"home,omitempty"`
	// Timezone names the IANA zone used for the default date. Defaults to UTC.
	Timezone string `yaml:"timezone,omitempty" validate:"omitempty,timezone"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/adifcount/config.yaml (or the
// platform equivalent). It returns "" when no config directory is known.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "adifcount", "config.yaml")
}

// LoadConfig builds the configuration from, in increasing precedence:
// the YAML file at path, a .env file in the working directory, and the
// process environment. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Timezone = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Location returns the configured time zone, UTC when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config error: unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Options converts the configuration into service options.
func (c *Config) Options() ([]Option, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return []Option{WithHomeDir(c.Home), WithLocation(loc)}, nil
}
