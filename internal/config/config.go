// Package config provides configuration loading and validation for the CLI
// and server. Engine tuning tables (weights, taxonomies, keyword tiers) live
// here so deployments can override them without code changes.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/thabo/tender-insight/internal/engine"
	"github.com/thabo/tender-insight/internal/scoring"
	"github.com/thabo/tender-insight/internal/summarize"
	"github.com/thabo/tender-insight/internal/taxonomy"
)

// Config represents configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags/env.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Verbose       bool `json:"verbose,omitempty"`        // Debug-level logging
	JSONLogs      bool `json:"json_logs,omitempty"`      // JSON log encoding
	SummaryLength int  `json:"summary_length,omitempty"` // Max summary characters

	// Engine overrides; nil/empty keeps the built-in tables.
	Weights         *scoring.Weights     `json:"weights,omitempty"`
	Sectors         map[string][]string  `json:"sectors,omitempty"`
	SummaryKeywords *SummaryKeywords     `json:"summary_keywords,omitempty"`
	Certifications  []CertificationEntry `json:"certifications,omitempty"`
}

// SummaryKeywords mirrors summarize.Keywords with JSON tags.
type SummaryKeywords struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

// CertificationEntry mirrors taxonomy.Certification with JSON tags.
type CertificationEntry struct {
	Code     string   `json:"code"`
	Patterns []string `json:"patterns"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables. godotenv has
// already been applied at the CLI edge by the time this runs.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.SummaryLength < 0 {
		return fmt.Errorf("config error: 'summary_length' must be non-negative")
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	for label, keywords := range c.Sectors {
		if len(keywords) == 0 {
			return fmt.Errorf("config error: sector %q has no keywords", label)
		}
	}
	for _, cert := range c.Certifications {
		if cert.Code == "" || len(cert.Patterns) == 0 {
			return fmt.Errorf("config error: certification entries need a code and at least one pattern")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. CLI flags always win over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SummaryLength == 0 {
		if defaults.SummaryLength > 0 {
			result.SummaryLength = defaults.SummaryLength
		} else {
			result.SummaryLength = engine.DefaultSummaryLength
		}
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.Sectors == nil {
		result.Sectors = defaults.Sectors
	}
	if result.SummaryKeywords == nil {
		result.SummaryKeywords = defaults.SummaryKeywords
	}
	if result.Certifications == nil {
		result.Certifications = defaults.Certifications
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}

// EngineOptions translates the config's overrides into engine options.
func (c *Config) EngineOptions(log *zap.Logger) engine.Options {
	opts := engine.Options{Logger: log, Weights: c.Weights}

	if c.Sectors != nil {
		opts.Sectors = taxonomy.Sectors(c.Sectors)
	}
	if c.SummaryKeywords != nil {
		opts.SummaryKeywords = &summarize.Keywords{
			High:   c.SummaryKeywords.High,
			Medium: c.SummaryKeywords.Medium,
			Low:    c.SummaryKeywords.Low,
		}
	}
	if c.Certifications != nil {
		registry := make([]taxonomy.Certification, 0, len(c.Certifications))
		for _, cert := range c.Certifications {
			registry = append(registry, taxonomy.Certification{Code: cert.Code, Patterns: cert.Patterns})
		}
		opts.Certifications = registry
	}
	return opts
}
