// Package config provides file- and environment-driven configuration for the
// doublets host program. The search engine itself takes no configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all host configuration values.
type Config struct {
	Dict         string        `yaml:"dict"`
	LogLevel     string        `yaml:"log_level"`
	Index        bool          `yaml:"index"`
	IndexWorkers int           `yaml:"index_workers"`
	Timeout      time.Duration `yaml:"timeout"`
	MetricsFile  string        `yaml:"metrics_file"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Dict:         "/usr/share/dict/words",
		LogLevel:     "info",
		Index:        false,
		IndexWorkers: 4,
		Timeout:      30 * time.Second,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then environment variables. Env takes precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Dict = envOrDefault("DOUBLETS_DICT", c.Dict)
	c.LogLevel = envOrDefault("DOUBLETS_LOG_LEVEL", c.LogLevel)
	c.MetricsFile = envOrDefault("DOUBLETS_METRICS_FILE", c.MetricsFile)

	if v := os.Getenv("DOUBLETS_INDEX"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: DOUBLETS_INDEX must be a boolean: %q", ErrInvalid, v)
		}
		c.Index = b
	}

	if v := os.Getenv("DOUBLETS_INDEX_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DOUBLETS_INDEX_WORKERS must be an integer: %q", ErrInvalid, v)
		}
		c.IndexWorkers = n
	}

	if v := os.Getenv("DOUBLETS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: DOUBLETS_TIMEOUT must be a duration: %q", ErrInvalid, v)
		}
		c.Timeout = d
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
