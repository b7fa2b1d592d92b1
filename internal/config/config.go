package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// BoardConfig controls the rendering of the location board.
type BoardConfig struct {
	DayWidth int `yaml:"day_width" json:"day_width"`
	MaxDays  int `yaml:"max_days" json:"max_days"`
}

// Config holds the workspace settings. Values come from defaults, then an
// optional YAML file, then STAGEHAND_* environment variables.
type Config struct {
	DBPath      string      `yaml:"db_path" json:"db_path"`
	Timezone    string      `yaml:"timezone" json:"timezone"`
	LogUseCases bool        `yaml:"log_use_cases" json:"log_use_cases"`
	Workers     int         `yaml:"workers" json:"workers"`
	Board       BoardConfig `yaml:"board" json:"board"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DBPath:   filepath.Join(home, ".stagehand", "stagehand.db"),
		Timezone: "UTC",
		Workers:  4,
		Board: BoardConfig{
			DayWidth: 2,
			MaxDays:  60,
		},
	}
}

// DefaultPath is where Load looks when neither a path nor STAGEHAND_CONFIG
// is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".stagehand", "config.yaml")
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path falls back to STAGEHAND_CONFIG, then DefaultPath.
// A missing file is not an error unless the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if v := os.Getenv("STAGEHAND_CONFIG"); v != "" {
			path, explicit = v, true
		} else {
			path = DefaultPath()
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STAGEHAND_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STAGEHAND_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("STAGEHAND_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STAGEHAND_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
}

// Validate rejects settings the services cannot run with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("config: db_path is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive (got %d)", c.Workers)
	}
	if c.Board.DayWidth <= 0 {
		return fmt.Errorf("config: board.day_width must be positive (got %d)", c.Board.DayWidth)
	}
	if c.Board.MaxDays <= 0 {
		return fmt.Errorf("config: board.max_days must be positive (got %d)", c.Board.MaxDays)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
