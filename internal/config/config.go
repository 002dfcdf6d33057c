// Package config provides configuration management for copycheck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/copyops/copycheck/pkg/analyze"
	"github.com/copyops/copycheck/pkg/pipeline"
	"github.com/copyops/copycheck/pkg/rules"
)

// Config holds the copycheck configuration.
type Config struct {
	// Categories maps category keys (e.g. "state_abbreviations") to enabled
	// state. Categories not listed are enabled.
	Categories map[string]bool `yaml:"categories,omitempty"`

	// Exclusions are terms no rule may alter.
	Exclusions []string `yaml:"exclusions,omitempty"`

	// Rule-table overrides. Empty means built-in defaults.
	DigitalTerms    []rules.Replacement `yaml:"digital_terms,omitempty"`
	HealthcareTerms []rules.Replacement `yaml:"healthcare_terms,omitempty"`
	BrandingTerms   []rules.Replacement `yaml:"branding_terms,omitempty"`
	Trademarks      []string            `yaml:"trademarks,omitempty"`

	// Locale for number formatting (BCP 47, default en-US).
	Locale string `yaml:"locale,omitempty"`

	// Reporting targets and keyword list, consumed by the analyzer only.
	TargetWordCount    int      `yaml:"target_word_count,omitempty"`
	TargetReadingLevel float64  `yaml:"target_reading_level,omitempty"`
	Keywords           []string `yaml:"keywords,omitempty"`

	// Workers bounds batch concurrency (default: number of CPUs).
	Workers int `yaml:"workers,omitempty"`
}

// Validate checks that all present fields are usable.
func (c *Config) Validate() error {
	for key := range c.Categories {
		if _, ok := rules.ParseCategory(key); !ok {
			return fmt.Errorf("unknown category %q", key)
		}
	}
	if c.TargetWordCount < 0 {
		return fmt.Errorf("target_word_count must not be negative")
	}
	if c.TargetReadingLevel < 0 {
		return fmt.Errorf("target_reading_level must not be negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// RuleSet builds the immutable rule set described by the config.
func (c *Config) RuleSet() *rules.RuleSet {
	return rules.NewRuleSet(rules.Options{
		DigitalTerms:    c.DigitalTerms,
		HealthcareTerms: c.HealthcareTerms,
		BrandingTerms:   c.BrandingTerms,
		Trademarks:      c.Trademarks,
		Locale:          c.Locale,
	}, rules.NewExclusionSet(c.Exclusions...))
}

// PipelineConfig converts the config to the pipeline's value type.
func (c *Config) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		Categories: c.Categories,
		Analysis: analyze.Options{
			Keywords:           c.Keywords,
			TargetWordCount:    c.TargetWordCount,
			TargetReadingLevel: c.TargetReadingLevel,
		},
		Workers: c.Workers,
	}
}

// LoadFromEnv loads configuration from environment variables. Variables
// override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("COPYCHECK_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("COPYCHECK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv("COPYCHECK_EXCLUSIONS"); v != "" {
		for _, term := range strings.Split(v, ",") {
			if term = strings.TrimSpace(term); term != "" {
				c.Exclusions = append(c.Exclusions, term)
			}
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "copycheck", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".copycheck", "config.yml")
	}

	return filepath.Join(home, ".config", "copycheck", "config.yml")
}

// Save writes the configuration to the specified path.
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
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error: defaults apply.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
