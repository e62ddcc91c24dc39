package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Input sources.
const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// InputConfig selects where the batch is read from
type InputConfig struct {
	Source string `yaml:"source"` // "json" or "sqlite"
	Path   string `yaml:"path"`
}

// OutputConfig controls where the report is written
type OutputConfig struct {
	Path   string `yaml:"path"`
	Stdout bool   `yaml:"stdout"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// MetricsConfig contains metrics export settings
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // empty disables the export
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input:  InputConfig{Source: SourceJSON, Path: "data.json"},
		Output: OutputConfig{Path: "output.json", Stdout: true},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a YAML file layered over Default, then
// applies environment overrides. An empty path skips the file.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.overrideWithEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() error {
	if val := os.Getenv("RENTSPLIT_INPUT_SOURCE"); val != "" {
		c.Input.Source = val
	}
	if val := os.Getenv("RENTSPLIT_INPUT_PATH"); val != "" {
		c.Input.Path = val
	}
	if val := os.Getenv("RENTSPLIT_OUTPUT_PATH"); val != "" {
		c.Output.Path = val
	}
	if val := os.Getenv("RENTSPLIT_OUTPUT_STDOUT"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("RENTSPLIT_OUTPUT_STDOUT: %w", err)
		}
		c.Output.Stdout = b
	}
	if val := os.Getenv("RENTSPLIT_METRICS_TEXTFILE"); val != "" {
		c.Metrics.Textfile = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Input.Source {
	case SourceJSON, SourceSQLite:
	default:
		return fmt.Errorf("unknown input source %q", c.Input.Source)
	}
	if c.Input.Path == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path is required")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	return nil
}
