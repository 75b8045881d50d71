package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	// MinGridSize and MaxGridSize bound the table edge length.
	MinGridSize = 1
	MaxGridSize = 50

	EnvConfig       = "TOYROBOT_CONFIG"
	EnvGridSize     = "TOYROBOT_GRID_SIZE"
	EnvLogFile      = "TOYROBOT_LOG_FILE"
	EnvLogVerbosity = "TOYROBOT_LOG_VERBOSITY"
)

// Config represents the complete configuration for the simulator
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Console ConsoleConfig `yaml:"console"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig holds the table top settings
type GridConfig struct {
	Size int `yaml:"size"`
}

// ConsoleConfig holds settings of the interactive driver
type ConsoleConfig struct {
	ShowMap     bool `yaml:"showMap"`
	HelpOnError bool `yaml:"helpOnError"`
	Banner      bool `yaml:"banner"`
	Color       bool `yaml:"color"`
}

// LogConfig holds logging settings. File rotation only applies when File
// is set.
type LogConfig struct {
	Verbosity  int    `yaml:"verbosity"` // commonlog verbosity, 1 == info
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// Load builds the configuration from defaults, the YAML file at path (or
// the file named by TOYROBOT_CONFIG when path is empty) and environment
// overrides. Callers apply their own overrides on top and then call
// Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration: a 5x5 table, map and help
// enabled, info logging to stderr.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Size: 5,
		},
		Console: ConsoleConfig{
			ShowMap:     true,
			HelpOnError: true,
			Banner:      true,
			Color:       true,
		},
		Log: LogConfig{
			Verbosity:  1,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) error {
	if size := os.Getenv(EnvGridSize); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvGridSize, size)
		}
		cfg.Grid.Size = n
	}

	if file := os.Getenv(EnvLogFile); file != "" {
		cfg.Log.File = file
	}

	if v := os.Getenv(EnvLogVerbosity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", EnvLogVerbosity, v)
		}
		cfg.Log.Verbosity = n
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Grid.Size < MinGridSize || c.Grid.Size > MaxGridSize {
		return fmt.Errorf("grid size %d is outside range [%d, %d]", c.Grid.Size, MinGridSize, MaxGridSize)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}
	return nil
}
