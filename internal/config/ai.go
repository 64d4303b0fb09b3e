package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AIConfig configures the generative text provider (AI_* variables)
type AIConfig struct {
	APIKey      string        `envconfig:"API_KEY"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.openai.com/v1"`
	Model       string        `envconfig:"MODEL" default:"gpt-4o-mini"`
	Temperature float64       `envconfig:"TEMPERATURE" default:"0.7"`
	MaxTokens   int64         `envconfig:"MAX_TOKENS" default:"512"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Enabled reports whether a provider key is configured
func (c AIConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// LoadAIConfig reads AI_* environment variables
func LoadAIConfig() (*AIConfig, error) {
	var cfg AIConfig
	if err := envconfig.Process("AI", &cfg); err != nil {
		return nil, fmt.Errorf("invalid AI config: %w", err)
	}

	if cfg.Enabled() && strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("AI_MODEL is required when AI_API_KEY is set")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return nil, fmt.Errorf("AI_TEMPERATURE must be between 0 and 2, got %v", cfg.Temperature)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT must be positive, got %v", cfg.Timeout)
	}

	return &cfg, nil
}
