package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avargas/hireflow/internal/llm"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"provider": "openrouter",
		"non_reasoning_model": "google/gemini-2.0-flash-001",
		"timeout_seconds": 45,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "google/gemini-2.0-flash-001", cfg.NonReasoningModel)
	assert.Equal(t, 45, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "bedrock"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Provider")
}

func TestValidate_TimeoutRange(t *testing.T) {
	cfg := &Config{TimeoutSeconds: 300}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TimeoutSeconds")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Provider:       "gemini",
		TimeoutSeconds: 60,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyConfig(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Provider:          "openrouter",
		ReasoningModel:    "openai/o3-mini",
		NonReasoningModel: "google/gemini-2.0-flash-001",
		TimeoutSeconds:    30,
	}

	partial := Config{
		ReasoningModel: "custom/model",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom/model", merged.ReasoningModel)

	// Default values should fill in empty fields
	assert.Equal(t, "openrouter", merged.Provider)
	assert.Equal(t, "google/gemini-2.0-flash-001", merged.NonReasoningModel)
	assert.Equal(t, 30, merged.TimeoutSeconds)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Provider: "gemini",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "gemini", merged.Provider)
}

func TestResolveAPIKey_ConfigWins(t *testing.T) {
	t.Setenv("HIREFLOW_API_KEY", "env-key")

	cfg := &Config{APIKey: "file-key"}
	assert.Equal(t, "file-key", cfg.ResolveAPIKey())
}

func TestResolveAPIKey_EnvPriority(t *testing.T) {
	t.Setenv("HIREFLOW_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg := &Config{}
	assert.Equal(t, "or-key", cfg.ResolveAPIKey())
}

func TestLLMConfig_AppliesOverrides(t *testing.T) {
	cfg := &Config{
		Provider:          "gemini",
		TimeoutSeconds:    60,
		NonReasoningModel: "custom/fast",
	}

	llmCfg := cfg.LLMConfig()

	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
	assert.Equal(t, 60*time.Second, llmCfg.Timeout)
	assert.Equal(t, "custom/fast", llmCfg.ProfileOptions(llm.ProfileNonReasoning).Model)
	// Untouched profile keeps its default.
	assert.Equal(t, "openai/o3-mini", llmCfg.ProfileOptions(llm.ProfileReasoning).Model)
}

func TestLLMConfig_DefaultsWhenEmpty(t *testing.T) {
	llmCfg := (&Config{}).LLMConfig()

	assert.Equal(t, llm.ProviderOpenRouter, llmCfg.Provider)
	assert.Equal(t, 30*time.Second, llmCfg.Timeout)
}
