// Package config loads the optional releve.yaml settings file. Everything
// has a usable default: the tool never requires a config file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/releve-dev/releve/internal/dialect"
)

// Config represents the top-level releve.yaml configuration.
type Config struct {
	// FallbackDelimiter is used when dialect sniffing is inconclusive:
	// ";", ",", "|" or "tab".
	FallbackDelimiter string       `yaml:"fallback_delimiter,omitempty"`
	Labels            LabelsConfig `yaml:"labels"`
}

// LabelsConfig sets the display labels for records missing a category or
// subcategory in summary tables.
type LabelsConfig struct {
	Uncategorized string `yaml:"uncategorized"`
	Unspecified   string `yaml:"unspecified"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		FallbackDelimiter: ";",
		Labels: LabelsConfig{
			Uncategorized: "Non catégorisé",
			Unspecified:   "Non spécifié",
		},
	}
}

// Load reads a releve.yaml file. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Fallback(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Fallback returns the dialect to use when sniffing is inconclusive.
func (c *Config) Fallback() (dialect.Dialect, error) {
	d := dialect.Default()
	switch c.FallbackDelimiter {
	case "", ";":
	case ",":
		d.Delimiter = ','
	case "|":
		d.Delimiter = '|'
	case "tab", "\t":
		d.Delimiter = '\t'
	default:
		return d, fmt.Errorf("unsupported fallback_delimiter %q", c.FallbackDelimiter)
	}
	return d, nil
}
