// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/avargas/hireflow/internal/llm"
)

// Environment variables consulted for the API key, in priority order.
var apiKeyEnvVars = []string{"HIREFLOW_API_KEY", "OPENROUTER_API_KEY", "GEMINI_API_KEY"}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Provider selects the completion backend: "openrouter" or "gemini".
	Provider string `json:"provider,omitempty" validate:"omitempty,oneof=openrouter gemini"`

	// APIKey authenticates against the provider. Usually supplied via the
	// environment rather than the file.
	APIKey string `json:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint. OpenRouter only.
	BaseURL string `json:"base_url,omitempty" validate:"omitempty,url"`

	// Model overrides per request profile.
	NonReasoningModel string `json:"non_reasoning_model,omitempty"`
	ReasoningModel    string `json:"reasoning_model,omitempty"`

	// TimeoutSeconds bounds each completion call.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=90"`

	// Verbose prints detailed extraction provenance.
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.NonReasoningModel == "" {
		result.NonReasoningModel = defaults.NonReasoningModel
	}
	if result.ReasoningModel == "" {
		result.ReasoningModel = defaults.ReasoningModel
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveAPIKey returns the configured key, falling back to the environment.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	for _, name := range apiKeyEnvVars {
		if key := os.Getenv(name); key != "" {
			return key
		}
	}
	return ""
}

// LLMConfig builds the client configuration, applying overrides on top of
// the provider defaults.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Provider != "" {
		cfg.Provider = llm.Provider(c.Provider)
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	if c.NonReasoningModel != "" {
		opts := cfg.ProfileOptions(llm.ProfileNonReasoning)
		opts.Model = c.NonReasoningModel
		cfg = cfg.WithProfile(llm.ProfileNonReasoning, opts)
	}
	if c.ReasoningModel != "" {
		opts := cfg.ProfileOptions(llm.ProfileReasoning)
		opts.Model = c.ReasoningModel
		cfg = cfg.WithProfile(llm.ProfileReasoning, opts)
	}
	return cfg
}
