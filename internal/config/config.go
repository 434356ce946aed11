package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when VALENTINE_CONFIG is unset.
const DefaultPath = "valentine.yaml"

// DefaultOutputPath is where the page is written.
const DefaultOutputPath = "valentine_for_shruthi.html"

// Config holds all generator configuration.
type Config struct {
	// Output file
	Output OutputConfig `yaml:"output"`

	// Terminal box
	Console ConsoleConfig `yaml:"console"`

	// Page animation schedule and particles
	Page PageConfig `yaml:"page"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures the generated file.
type OutputConfig struct {
	Path string `yaml:"path" env:"VALENTINE_OUTPUT"`
}

// ConsoleConfig configures the console box.
type ConsoleConfig struct {
	Width int `yaml:"width" env:"VALENTINE_WIDTH"` // interior width in runes
}

// PageConfig configures the HTML page. Delays are in seconds.
type PageConfig struct {
	BaseDelay   float64 `yaml:"base_delay"`
	Step        float64 `yaml:"step"`
	FooterExtra float64 `yaml:"footer_extra"`
	Hearts      int     `yaml:"hearts"` // floating heart count
	Petals      int     `yaml:"petals"` // drifting petal count
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path: DefaultOutputPath,
		},
		Console: ConsoleConfig{
			Width: 62,
		},
		Page: PageConfig{
			BaseDelay:   1.0,
			Step:        2.5,
			FooterExtra: 1.5,
			Hearts:      22,
			Petals:      15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns the config file location, honouring VALENTINE_CONFIG.
func Path() string {
	if p := os.Getenv("VALENTINE_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("output path not configured (set output.path or VALENTINE_OUTPUT)")
	}
	if c.Console.Width <= 0 {
		return fmt.Errorf("invalid console width: %d", c.Console.Width)
	}
	if c.Page.BaseDelay < 0 || c.Page.Step < 0 || c.Page.FooterExtra < 0 {
		return fmt.Errorf("page delays must not be negative")
	}
	if c.Page.Hearts < 0 || c.Page.Petals < 0 {
		return fmt.Errorf("particle counts must not be negative")
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s (valid: console, json)", c.Logging.Format)
	}

	return nil
}
