// Package llm provides centralized LLM configuration and client abstractions.
// This package enables switching between providers and between reasoning and
// non-reasoning model profiles without touching caller code.
package llm

import "time"

// Profile represents the capability level of a model.
type Profile string

const (
	// ProfileNonReasoning is for fast structured extraction tasks.
	ProfileNonReasoning Profile = "non_reasoning"
	// ProfileReasoning is for tasks that need multi-step reasoning:
	// matching, decisions, question generation, grading.
	ProfileReasoning Profile = "reasoning"
)

// Provider represents an LLM provider.
type Provider string

// Supported LLM providers.
const (
	// ProviderOpenRouter proxies chat-completion requests to hosted models.
	ProviderOpenRouter Provider = "openrouter"
	// ProviderGemini talks to the Google Gemini API directly.
	ProviderGemini Provider = "gemini"
)

// Options are the per-request completion parameters.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	BaseURL  string
	Timeout  time.Duration
	Profiles map[Profile]Options
}

// DefaultConfig returns the default configuration (currently OpenRouter).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderOpenRouter,
		BaseURL:  "https://openrouter.ai/api/v1/chat/completions",
		Timeout:  30 * time.Second,
		Profiles: map[Profile]Options{
			ProfileNonReasoning: {
				Model:       "google/gemini-2.0-flash-001",
				Temperature: 0.1,
				MaxTokens:   1000,
			},
			ProfileReasoning: {
				Model:       "openai/o3-mini",
				Temperature: 0.2,
				MaxTokens:   2000,
			},
		},
	}
}

// ProfileOptions returns the completion options for a profile, falling back
// to the non-reasoning profile when the requested one is not configured.
func (c *Config) ProfileOptions(p Profile) Options {
	if opts, ok := c.Profiles[p]; ok {
		return opts
	}
	return c.Profiles[ProfileNonReasoning]
}

// WithProfile returns a new Config with the given profile options set.
func (c *Config) WithProfile(p Profile, opts Options) *Config {
	out := &Config{
		Provider: c.Provider,
		BaseURL:  c.BaseURL,
		Timeout:  c.Timeout,
		Profiles: make(map[Profile]Options, len(c.Profiles)+1),
	}
	for k, v := range c.Profiles {
		out.Profiles[k] = v
	}
	out.Profiles[p] = opts
	return out
}
