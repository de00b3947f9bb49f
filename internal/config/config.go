// Package config provides file-based configuration for the scraper.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"copenhagen-vendor-scraper/internal/types"
)

// Configuration validation errors.
var (
	ErrNoStartURLs       = errors.New("crawler.start_urls must contain at least one URL")
	ErrMissingOutputPath = errors.New("output.path is required")
	ErrInvalidMaxRetries = errors.New("crawler.max_retries must be non-negative")
	ErrInvalidTimeout    = errors.New("crawler.timeout_sec must be at least 1")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete scraper configuration.
type Config struct {
	Crawler CrawlerConfig `yaml:"crawler"`
	Output  OutputConfig  `yaml:"output"`
	Sinks   SinksConfig   `yaml:"sinks"`
	Logging LoggingConfig `yaml:"logging"`
}

// CrawlerConfig contains fetch-side settings.
type CrawlerConfig struct {
	StartURLs      []string `yaml:"start_urls"`
	RequestDelayMs int      `yaml:"request_delay_ms"`
	MaxRetries     int      `yaml:"max_retries"`
	TimeoutSec     int      `yaml:"timeout_sec"`
	MaxConcurrent  int      `yaml:"max_concurrent"`
	UserAgent      string   `yaml:"user_agent"`
}

// OutputConfig defines where the primary JSON store lives.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// SinksConfig toggles the optional secondary sink. An empty path means
// primary file store only.
type SinksConfig struct {
	SQLitePath string `yaml:"sqlite_path"`
}

// LoggingConfig defines log behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration with sane defaults and no start URLs.
func Default() *Config {
	base := types.DefaultConfig()
	return &Config{
		Crawler: CrawlerConfig{
			RequestDelayMs: int(base.RequestDelay / time.Millisecond),
			MaxRetries:     base.MaxRetries,
			TimeoutSec:     int(base.Timeout / time.Second),
			MaxConcurrent:  base.MaxConcurrentRequests,
			UserAgent:      base.UserAgent,
		},
		Output:  OutputConfig{Path: "data/vendors.json"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads and validates a YAML configuration file. Fields absent from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if len(c.Crawler.StartURLs) == 0 {
		return ErrNoStartURLs
	}
	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}
	if c.Crawler.MaxRetries < 0 {
		return ErrInvalidMaxRetries
	}
	if c.Crawler.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// Runtime converts the file configuration into the runtime Config consumed by
// the crawler client.
func (c *Config) Runtime() *types.Config {
	return &types.Config{
		RequestDelay:          time.Duration(c.Crawler.RequestDelayMs) * time.Millisecond,
		MaxRetries:            c.Crawler.MaxRetries,
		Timeout:               time.Duration(c.Crawler.TimeoutSec) * time.Second,
		MaxConcurrentRequests: c.Crawler.MaxConcurrent,
		UserAgent:             c.Crawler.UserAgent,
	}
}
