package analysis

import (
	"errors"
	"time"
)

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 1000
	DefaultTimeout   = 60 * time.Second
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("anthropic API key not configured (set ANTHROPIC_API_KEY or pass --api-key)")

// Config configures the analysis client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
	BaseURL   string
	Timeout   time.Duration
}

// DefaultConfig returns the model and limits used when none are given.
func DefaultConfig() Config {
	return Config{
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		Timeout:   DefaultTimeout,
	}
}

// Validate checks the fields a request cannot be sent without.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return errors.New("model is required")
	}
	if c.MaxTokens <= 0 {
		return errors.New("max tokens must be positive")
	}
	return nil
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Model == "" {
		c.Model = defaults.Model
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = defaults.MaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	return c
}
