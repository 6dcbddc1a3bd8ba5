package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileOptions_Fallback(t *testing.T) {
	config := DefaultConfig()

	reasoning := config.ProfileOptions(ProfileReasoning)
	assert.Equal(t, "openai/o3-mini", reasoning.Model)

	unknown := config.ProfileOptions(Profile("does-not-exist"))
	assert.Equal(t, config.Profiles[ProfileNonReasoning], unknown)
}

func TestWithProfile_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultConfig()
	modified := original.WithProfile(ProfileReasoning, Options{Model: "other/model"})

	assert.Equal(t, "openai/o3-mini", original.Profiles[ProfileReasoning].Model)
	assert.Equal(t, "other/model", modified.Profiles[ProfileReasoning].Model)
}

func TestOpenRouterClient_Complete(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "{\"score\": 85}"}}]}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseURL = server.URL
	client := NewOpenRouterClient(config, "test-key")

	text, err := client.Complete(context.Background(), "system prompt", "user content", Options{
		Model:       "openai/o3-mini",
		Temperature: 0.2,
		MaxTokens:   2000,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"score": 85}`, text)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system prompt", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "openai/o3-mini", captured.Model)
	assert.False(t, captured.Stream)
}

func TestOpenRouterClient_Non2xxIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseURL = server.URL
	client := NewOpenRouterClient(config, "test-key")

	_, err := client.Complete(context.Background(), "s", "u", Options{Model: "m"})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusTooManyRequests, transportErr.Status)
}

func TestOpenRouterClient_MissingContentIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseURL = server.URL
	client := NewOpenRouterClient(config, "test-key")

	_, err := client.Complete(context.Background(), "s", "u", Options{Model: "m"})

	var malformedErr *MalformedResponseError
	assert.ErrorAs(t, err, &malformedErr)
}

func TestOpenRouterClient_LegacyTextField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [{"text": "plain completion"}]}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseURL = server.URL
	client := NewOpenRouterClient(config, "test-key")

	text, err := client.Complete(context.Background(), "s", "u", Options{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "plain completion", text)
}

func TestOpenRouterClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseURL = server.URL
	config.Timeout = 20 * time.Millisecond
	client := NewOpenRouterClient(config, "test-key")

	_, err := client.Complete(context.Background(), "s", "u", Options{Model: "m"})

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
}
