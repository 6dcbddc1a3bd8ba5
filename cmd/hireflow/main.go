// Package main provides the hireflow CLI: resume screening, interview guide
// generation, online assessments, and job description authoring on top of a
// shared LLM extraction pipeline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/avargas/hireflow/internal/config"
	"github.com/avargas/hireflow/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "hireflow",
	Short: "HR screening toolkit",
	Long:  "hireflow screens resumes against job descriptions, generates interview guides and online assessments, and writes job descriptions. Model responses are recovered through a schema-validating extraction pipeline, so malformed output degrades to defaults instead of failing a run.",
}

var (
	flagConfig   string
	flagAPIKey   string
	flagProvider string
	flagVerbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Provider API key (overrides HIREFLOW_API_KEY / OPENROUTER_API_KEY / GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "Completion provider: openrouter or gemini")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print extraction provenance and summaries")
}

// loadSettings merges the config file (if any) with command-line overrides.
func loadSettings() (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides := config.Config{APIKey: flagAPIKey, Provider: flagProvider, Verbose: flagVerbose}
	merged := overrides.MergeWithDefaults(*cfg)
	merged.Verbose = merged.Verbose || cfg.Verbose

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// newClient builds the completion client from the merged settings.
func newClient(ctx context.Context, cfg *config.Config) (llm.Client, *llm.Config, error) {
	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set HIREFLOW_API_KEY or use --api-key)")
	}

	llmCfg := cfg.LLMConfig()
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, llmCfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
