package config

import (
	"fmt"
	"os"

	"github.com/rpgo/moneyfmt/internal/format"
	"gopkg.in/yaml.v3"
)

// Config holds formatter settings read from a YAML file.
type Config struct {
	Rounding string `yaml:"rounding"`
	Output   string `yaml:"output"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Rounding: string(format.DefaultRounding),
		Output:   "text",
	}
}

// RoundingMode returns the parsed rounding mode.
func (c *Config) RoundingMode() (format.RoundingMode, error) {
	return format.ParseRoundingMode(c.Rounding)
}

// Loader handles parsing of configuration files
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromFile loads configuration from a YAML file. Missing keys keep their defaults.
func (l *Loader) LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that every named setting is known.
func (l *Loader) Validate(cfg *Config) error {
	if _, err := cfg.RoundingMode(); err != nil {
		return fmt.Errorf("rounding: %w", err)
	}
	if cfg.Output == "" {
		return fmt.Errorf("output format is required")
	}
	if _, err := format.LookupFormatter(cfg.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Save writes cfg as YAML.
func Save(cfg *Config, filename string) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
