package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/observability"
	"github.com/avargas/hireflow/internal/screening"
	"github.com/avargas/hireflow/internal/textextract"
)

var screenCmd = &cobra.Command{
	Use:   "screen <resume-file>",
	Short: "Parse a resume and optionally score it against a job description",
	Long:  "Parse a resume file (.pdf, .docx, .txt, .md) into structured JSON. With --job, also score the candidate against the job description and produce a hiring decision. Output files are written next to the given base path.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScreen,
}

var (
	screenJobFile    string
	screenOutputBase string
)

func init() {
	screenCmd.Flags().StringVar(&screenJobFile, "job", "", "Path to job description file (.pdf, .docx, .txt, .md)")
	screenCmd.Flags().StringVar(&screenOutputBase, "output", "screening", "Base path for output files")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(_ *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	resumeText, err := textextract.FromFile(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, llmCfg, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	printer := observability.NewPrinter(os.Stdout)

	resume, parseRes := screening.ParseResume(ctx, client, llmCfg.ProfileOptions(llm.ProfileNonReasoning), resumeText)
	if cfg.Verbose {
		printer.PrintExtraction("parse resume", parseRes)
		printer.PrintParsedResume(resume)
	}
	if err := writeJSON(screenOutputBase+"_parsed_resume.json", resume); err != nil {
		return err
	}

	if screenJobFile == "" {
		fmt.Printf("Parsed resume written to %s_parsed_resume.json\n", screenOutputBase)
		return nil
	}

	jobText, err := textextract.FromFile(screenJobFile)
	if err != nil {
		return err
	}

	reasoning := llmCfg.ProfileOptions(llm.ProfileReasoning)

	match, matchRes := screening.MatchJob(ctx, client, reasoning, resume, jobText)
	if cfg.Verbose {
		printer.PrintExtraction("match job", matchRes)
		printer.PrintMatchAnalysis(match)
	}
	if err := writeJSON(screenOutputBase+"_match_analysis.json", match); err != nil {
		return err
	}

	decision, decisionRes := screening.GenerateDecision(ctx, client, reasoning, resume, match, jobText)
	if cfg.Verbose {
		printer.PrintExtraction("generate decision", decisionRes)
	}
	printer.PrintDecision(decision)
	if err := writeJSON(screenOutputBase+"_decision.json", decision); err != nil {
		return err
	}

	fmt.Printf("Screening artifacts written with base %s\n", screenOutputBase)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
