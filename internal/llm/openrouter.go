package llm

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// chatMessage is one entry in the chat-completions messages array.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

// OpenRouterClient implements Client against an OpenAI-compatible
// chat-completions endpoint with bearer-token auth.
type OpenRouterClient struct {
	http    *resty.Client
	baseURL string
}

// NewOpenRouterClient creates a client for the configured endpoint.
func NewOpenRouterClient(config *Config, apiKey string) *OpenRouterClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	http := resty.New().
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &OpenRouterClient{
		http:    http,
		baseURL: config.BaseURL,
	}
}

// Complete sends the system and user messages and extracts the completion
// text from the response envelope.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, userContent string, opts Options) (string, error) {
	body := chatRequest{
		Model: opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Stream:      false,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.baseURL)
	if err != nil {
		return "", &TransportError{Message: "request failed", Cause: err}
	}
	if resp.IsError() {
		return "", &TransportError{
			Message: "endpoint returned an error response",
			Status:  resp.StatusCode(),
		}
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() {
		// Some providers return the completion under choices[].text.
		content = gjson.GetBytes(resp.Body(), "choices.0.text")
	}
	if !content.Exists() || content.String() == "" {
		return "", &MalformedResponseError{Message: "envelope has no completion content"}
	}

	return content.String(), nil
}

// Close is a no-op; the underlying HTTP client holds no resources that
// outlive requests.
func (c *OpenRouterClient) Close() error {
	return nil
}
