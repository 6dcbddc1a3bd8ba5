package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avargas/hireflow/internal/jobdesc"
	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/types"
)

var jobdescCmd = &cobra.Command{
	Use:   "jobdesc",
	Short: "Generate a job description from a form input file",
	Long:  "Generate a Markdown job description from a JSON form input. With --post, per-platform payloads are formatted; delivery is stubbed, and --preview shows the payloads without marking them posted.",
	RunE:  runJobdesc,
}

var (
	jobdescInputFile  string
	jobdescOutputFile string
	jobdescPost       bool
	jobdescPreview    bool
	jobdescPlatforms  string
)

func init() {
	jobdescCmd.Flags().StringVar(&jobdescInputFile, "input", "", "Path to job input JSON file")
	jobdescCmd.Flags().StringVar(&jobdescOutputFile, "output", "job_description.md", "Path to output Markdown file")
	jobdescCmd.Flags().BoolVar(&jobdescPost, "post", false, "Format the description for posting platforms")
	jobdescCmd.Flags().BoolVar(&jobdescPreview, "preview", false, "Preview platform payloads without posting")
	jobdescCmd.Flags().StringVar(&jobdescPlatforms, "platforms", "", "Comma-separated platforms (linkedin, twitter, internal)")
	_ = jobdescCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(jobdescCmd)
}

func runJobdesc(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	var input types.JobInput
	if err := readJSON(jobdescInputFile, &input); err != nil {
		return err
	}

	ctx := context.Background()
	client, llmCfg, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	markdown, err := jobdesc.Generate(ctx, client, llmCfg.ProfileOptions(llm.ProfileReasoning), input)
	if err != nil {
		return err
	}

	if err := os.WriteFile(jobdescOutputFile, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", jobdescOutputFile, err)
	}
	fmt.Printf("Job description written to %s\n", jobdescOutputFile)

	if !jobdescPost {
		return nil
	}

	var platforms []string
	for _, p := range strings.Split(jobdescPlatforms, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			platforms = append(platforms, trimmed)
		}
	}

	poster := jobdesc.NewPoster(jobdescPreview, platforms...)
	for _, preview := range poster.Post(input, markdown) {
		state := "posted"
		if !preview.Posted {
			state = "preview"
		}
		fmt.Printf("--- %s (%s) ---\n%s\n\n", preview.Platform, state, preview.Body)
	}
	return nil
}
