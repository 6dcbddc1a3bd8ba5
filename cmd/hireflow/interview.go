package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avargas/hireflow/internal/interview"
	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/observability"
	"github.com/avargas/hireflow/internal/screening"
	"github.com/avargas/hireflow/internal/textextract"
	"github.com/avargas/hireflow/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Generate a structured interview guide for a candidate",
	Long:  "Generate an interview guide from a resume and a job description JSON file. Online assessment results, when provided, steer the questions toward observed weak areas.",
	RunE:  runInterview,
}

var (
	interviewResumeFile string
	interviewJobFile    string
	interviewOAFile     string
	interviewOutputFile string
)

func init() {
	interviewCmd.Flags().StringVar(&interviewResumeFile, "resume", "", "Path to resume file (.pdf, .docx, .txt, .md)")
	interviewCmd.Flags().StringVar(&interviewJobFile, "job", "", "Path to job description JSON file")
	interviewCmd.Flags().StringVar(&interviewOAFile, "oa-results", "", "Path to online assessment result JSON file")
	interviewCmd.Flags().StringVar(&interviewOutputFile, "output", "interview_guide.json", "Path to output guide JSON")
	_ = interviewCmd.MarkFlagRequired("resume")
	_ = interviewCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	var job types.JobDescription
	if err := readJSON(interviewJobFile, &job); err != nil {
		return err
	}

	var oaResult *types.OAResult
	if interviewOAFile != "" {
		oaResult = &types.OAResult{}
		if err := readJSON(interviewOAFile, oaResult); err != nil {
			return err
		}
	}

	resumeText, err := textextract.FromFile(interviewResumeFile)
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
	}

	guide, err := interview.GenerateGuide(ctx, client, llmCfg.ProfileOptions(llm.ProfileReasoning), interview.GuideInput{
		CandidateName: resume.PersonalInfo.Name,
		Resume:        resume,
		Job:           &job,
		OAResult:      oaResult,
	})
	if err != nil {
		return err
	}

	printer.PrintGuideSummary(guide)
	if err := writeJSON(interviewOutputFile, guide); err != nil {
		return err
	}

	fmt.Printf("Interview guide written to %s\n", interviewOutputFile)
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
