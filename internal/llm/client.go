package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// Complete sends a synchronous chat-completion request and returns the
	// model's raw text output. Failures are *TransportError or
	// *MalformedResponseError.
	Complete(ctx context.Context, systemPrompt, userContent string, opts Options) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a new LLM client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderOpenRouter:
		return NewOpenRouterClient(config, apiKey), nil
	default:
		return NewOpenRouterClient(config, apiKey), nil
	}
}
