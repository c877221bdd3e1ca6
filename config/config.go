// Package config provides configuration loading and management for the
// item quality engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete engine configuration
type Config struct {
	Quality QualityConfig `yaml:"quality"`
	Bank    BankConfig    `yaml:"bank"`
	Repair  RepairConfig  `yaml:"repair"`
}

// QualityConfig tunes the dimension checkers
type QualityConfig struct {
	// StrictContent enables the stricter content standard: missing
	// enrichment fields (pearls, trap, mnemonic) become warnings
	StrictContent bool `yaml:"strict_content"`
	// MinStemLength is the minimum stem length (default: 10)
	MinStemLength int `yaml:"min_stem_length"`
	// MinRationaleLength is the minimum explanation length (default: 20)
	MinRationaleLength int `yaml:"min_rationale_length"`
	// NarrativeWordMin/Max bound the timed-narrative word count (default: 120-160)
	NarrativeWordMin int `yaml:"narrative_word_min"`
	NarrativeWordMax int `yaml:"narrative_word_max"`
	// BoilerplateExtra extends the built-in boilerplate phrase denylist
	BoilerplateExtra []string `yaml:"boilerplate_extra"`
}

// BankConfig tunes the bank runner
type BankConfig struct {
	// Workers bounds the validation worker pool (0 = NumCPU)
	Workers int `yaml:"workers"`
}

// RepairConfig tunes the escalation boundary to the external proposer
type RepairConfig struct {
	// Proposer names the registered proposer used for escalation
	Proposer string `yaml:"proposer"`
	// MaxAttempts is the maximum proposer calls per escalation
	MaxAttempts int `yaml:"max_attempts"`
	// BackoffBase is the initial retry backoff
	BackoffBase time.Duration `yaml:"backoff_base"`
	// BackoffMultiplier is applied to backoff on each retry
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	// MaxBackoff caps the retry backoff
	MaxBackoff time.Duration `yaml:"max_backoff"`
	// Timeout bounds each individual proposer call
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Quality: QualityConfig{
			StrictContent:      false,
			MinStemLength:      10,
			MinRationaleLength: 20,
			NarrativeWordMin:   120,
			NarrativeWordMax:   160,
		},
		Bank: BankConfig{
			Workers: 0, // NumCPU
		},
		Repair: RepairConfig{
			MaxAttempts:       3,
			BackoffBase:       2 * time.Second,
			BackoffMultiplier: 2.0,
			MaxBackoff:        30 * time.Second,
			Timeout:           2 * time.Minute,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Quality.MinStemLength <= 0 {
		return fmt.Errorf("quality.min_stem_length must be positive")
	}
	if c.Quality.MinRationaleLength <= 0 {
		return fmt.Errorf("quality.min_rationale_length must be positive")
	}
	if c.Quality.NarrativeWordMin <= 0 || c.Quality.NarrativeWordMax < c.Quality.NarrativeWordMin {
		return fmt.Errorf("quality narrative word band must satisfy 0 < min <= max")
	}
	if c.Bank.Workers < 0 {
		return fmt.Errorf("bank.workers must not be negative")
	}
	if c.Repair.MaxAttempts <= 0 {
		return fmt.Errorf("repair.max_attempts must be positive")
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
	// Ensure parent directory exists
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

	// Quality
	if other.Quality.StrictContent {
		c.Quality.StrictContent = true
	}
	if other.Quality.MinStemLength != 0 {
		c.Quality.MinStemLength = other.Quality.MinStemLength
	}
	if other.Quality.MinRationaleLength != 0 {
		c.Quality.MinRationaleLength = other.Quality.MinRationaleLength
	}
	if other.Quality.NarrativeWordMin != 0 {
		c.Quality.NarrativeWordMin = other.Quality.NarrativeWordMin
	}
	if other.Quality.NarrativeWordMax != 0 {
		c.Quality.NarrativeWordMax = other.Quality.NarrativeWordMax
	}
	if len(other.Quality.BoilerplateExtra) > 0 {
		c.Quality.BoilerplateExtra = other.Quality.BoilerplateExtra
	}

	// Bank
	if other.Bank.Workers != 0 {
		c.Bank.Workers = other.Bank.Workers
	}

	// Repair
	if other.Repair.Proposer != "" {
		c.Repair.Proposer = other.Repair.Proposer
	}
	if other.Repair.MaxAttempts != 0 {
		c.Repair.MaxAttempts = other.Repair.MaxAttempts
	}
	if other.Repair.BackoffBase != 0 {
		c.Repair.BackoffBase = other.Repair.BackoffBase
	}
	if other.Repair.BackoffMultiplier != 0 {
		c.Repair.BackoffMultiplier = other.Repair.BackoffMultiplier
	}
	if other.Repair.MaxBackoff != 0 {
		c.Repair.MaxBackoff = other.Repair.MaxBackoff
	}
	if other.Repair.Timeout != 0 {
		c.Repair.Timeout = other.Repair.Timeout
	}
}
