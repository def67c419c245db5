// Package config loads the workbench configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all workbench configuration.
type Config struct {
	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`

	// Engine limits
	Engine EngineConfig `yaml:"engine"`

	// Datalog bridge settings
	Datalog DatalogConfig `yaml:"datalog"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`

	// Development switches to the human-readable console encoder
	Development bool `yaml:"development"`
}

// EngineConfig bounds the evaluator.
type EngineConfig struct {
	// FactLimit caps facts per session; zero disables the limit
	FactLimit int `yaml:"fact_limit"`
}

// DatalogConfig configures rule evaluation.
type DatalogConfig struct {
	// RulesPath points at a rule file evaluated by the closure command
	RulesPath string `yaml:"rules_path"`

	// EvalTimeout bounds one rule evaluation, as a duration string
	EvalTimeout string `yaml:"eval_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Engine: EngineConfig{
			FactLimit: 100000,
		},
		Datalog: DatalogConfig{
			EvalTimeout: "30s",
		},
	}
}

// Load reads configuration from a YAML file, starting from the defaults. A
// missing file yields the defaults unchanged. Environment overrides apply
// last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("HERBRAND_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if path := os.Getenv("HERBRAND_RULES"); path != "" {
		c.Datalog.RulesPath = path
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Engine.FactLimit < 0 {
		return fmt.Errorf("fact limit must not be negative: %d", c.Engine.FactLimit)
	}
	if c.Datalog.EvalTimeout != "" {
		if _, err := time.ParseDuration(c.Datalog.EvalTimeout); err != nil {
			return fmt.Errorf("invalid eval timeout: %w", err)
		}
	}
	return nil
}

// GetEvalTimeout returns the rule evaluation timeout as a duration,
// falling back to 30 seconds.
func (c *Config) GetEvalTimeout() time.Duration {
	d, err := time.ParseDuration(c.Datalog.EvalTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
