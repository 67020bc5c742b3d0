package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"xorcrack/internal/domain"
	"xorcrack/internal/score"
)

// Config holds runtime options for building the app.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Scoring ScoringConfig `yaml:"scoring"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// SearchConfig bounds the key search.
type SearchConfig struct {
	MinKey int `yaml:"min_key"`
	MaxKey int `yaml:"max_key"`
	Top    int `yaml:"top"` // candidates listed by `break`
}

// ScoringConfig tunes the plausibility scorer.
type ScoringConfig struct {
	ControlPenalty float64 `yaml:"control_penalty"`
}

// BatchConfig tunes batch detection.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// ServerConfig configures xorcrackd and the remote client.
type ServerConfig struct {
	Addr         string `yaml:"addr"` // listen address for xorcrackd
	URL          string `yaml:"url"`  // remote server used by the CLI, empty = local
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
	Timeout      string `yaml:"timeout"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MinKey: int(domain.DefaultKeyRange.Min),
			MaxKey: int(domain.DefaultKeyRange.Max),
			Top:    5,
		},
		Scoring: ScoringConfig{ControlPenalty: score.DefaultControlPenalty},
		Logging: LoggingConfig{Level: "info"},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 4 << 20,
			Timeout:      "30s",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("XORCRACK_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("XORCRACK_WORKERS: %w", err)
		}
		c.Batch.Workers = n
	}
	if v := os.Getenv("XORCRACK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("XORCRACK_SERVER"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("XORCRACK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	return nil
}

// KeyRange returns the configured search range.
func (c *Config) KeyRange() domain.KeyRange {
	return domain.KeyRange{Min: byte(c.Search.MinKey), Max: byte(c.Search.MaxKey)}
}

// Scorer returns the configured scorer.
func (c *Config) Scorer() score.Scorer {
	return score.Scorer{ControlPenalty: c.Scoring.ControlPenalty}
}

// ServerTimeout parses Server.Timeout.
func (c *Config) ServerTimeout() (time.Duration, error) {
	if c.Server.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Server.Timeout)
}

// Validate checks the configuration for values the app cannot run with.
func (c *Config) Validate() error {
	if c.Search.MinKey < 0 || c.Search.MinKey > 255 || c.Search.MaxKey < 0 || c.Search.MaxKey > 255 {
		return fmt.Errorf("%w: keys must be within [0,255], got [%d,%d]",
			domain.ErrInvalidKeyRange, c.Search.MinKey, c.Search.MaxKey)
	}
	if err := c.KeyRange().Validate(); err != nil {
		return err
	}
	if err := c.Scorer().Validate(); err != nil {
		return err
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must be >= 0, got %d", c.Batch.Workers)
	}
	if _, err := c.ServerTimeout(); err != nil {
		return fmt.Errorf("server.timeout: %w", err)
	}
	return nil
}
