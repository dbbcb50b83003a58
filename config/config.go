// Package config provides configuration loading and management for semlink.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete semlink configuration
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Validator ValidatorConfig `yaml:"validator"`
	NATS      NATSConfig      `yaml:"nats"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Watch     WatchConfig     `yaml:"watch"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`
}

// ValidatorConfig configures consistency validation
type ValidatorConfig struct {
	// Strict makes validation runs fail when any violation is found
	Strict bool `yaml:"strict"`
	// RequiredBridges maps class IRIs to the bridge property IRIs every
	// instance of that class must carry
	RequiredBridges map[string][]string `yaml:"required_bridges"`
}

// NATSConfig configures the NATS connection for graph mutation events
type NATSConfig struct {
	// URL is the NATS server URL (empty = eventing disabled)
	URL string `yaml:"url"`
}

// MetricsConfig configures the Prometheus metrics endpoint
type MetricsConfig struct {
	// Enabled turns the metrics HTTP listener on
	Enabled bool `yaml:"enabled"`
	// Listen is the metrics listen address
	Listen string `yaml:"listen"`
}

// WatchConfig configures ontology file watching
type WatchConfig struct {
	// Patterns are doublestar globs for the ontology files to load and watch
	Patterns []string `yaml:"patterns"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Validator: ValidatorConfig{
			Strict:          false,
			RequiredBridges: nil,
		},
		NATS: NATSConfig{
			URL: "",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  ":9464",
		},
		Watch: WatchConfig{
			Patterns: []string{"ontology/**/*.nt"},
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		return fmt.Errorf("metrics.listen is required when metrics are enabled")
	}
	for class, bridges := range c.Validator.RequiredBridges {
		if class == "" {
			return fmt.Errorf("validator.required_bridges has an empty class IRI")
		}
		if len(bridges) == 0 {
			return fmt.Errorf("validator.required_bridges[%s] lists no properties", class)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}

	if other.Validator.Strict {
		c.Validator.Strict = true
	}
	if len(other.Validator.RequiredBridges) > 0 {
		if c.Validator.RequiredBridges == nil {
			c.Validator.RequiredBridges = make(map[string][]string, len(other.Validator.RequiredBridges))
		}
		for class, bridges := range other.Validator.RequiredBridges {
			c.Validator.RequiredBridges[class] = bridges
		}
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}

	if other.Metrics.Enabled {
		c.Metrics.Enabled = true
	}
	if other.Metrics.Listen != "" {
		c.Metrics.Listen = other.Metrics.Listen
	}

	if len(other.Watch.Patterns) > 0 {
		c.Watch.Patterns = other.Watch.Patterns
	}
}
