package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avargas/hireflow/internal/assessment"
	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/observability"
	"github.com/avargas/hireflow/internal/types"
)

var assessmentCmd = &cobra.Command{
	Use:   "assessment",
	Short: "Generate and grade online assessments",
}

var assessmentGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an online assessment for a candidate",
	RunE:  runAssessmentGenerate,
}

var assessmentGradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a submitted assessment locally",
	Long:  "Grade answers against a generated assessment. Grading is deterministic and local; no model calls are made.",
	RunE:  runAssessmentGrade,
}

var (
	assessCandidate  string
	assessJobTitle   string
	assessLevel      string
	assessSkills     string
	assessOutputFile string

	gradeAssessmentFile string
	gradeAnswersFile    string
	gradeOutputFile     string
)

func init() {
	assessmentGenerateCmd.Flags().StringVar(&assessCandidate, "candidate", "", "Candidate name")
	assessmentGenerateCmd.Flags().StringVar(&assessJobTitle, "job-title", "", "Job title the assessment is for")
	assessmentGenerateCmd.Flags().StringVar(&assessLevel, "level", "mid", "Experience level (entry, mid, senior)")
	assessmentGenerateCmd.Flags().StringVar(&assessSkills, "skills", "", "Comma-separated skills to focus on")
	assessmentGenerateCmd.Flags().StringVar(&assessOutputFile, "output", "assessment.json", "Path to output assessment JSON")
	_ = assessmentGenerateCmd.MarkFlagRequired("candidate")
	_ = assessmentGenerateCmd.MarkFlagRequired("job-title")

	assessmentGradeCmd.Flags().StringVar(&gradeAssessmentFile, "assessment", "", "Path to generated assessment JSON")
	assessmentGradeCmd.Flags().StringVar(&gradeAnswersFile, "answers", "", "Path to answers JSON")
	assessmentGradeCmd.Flags().StringVar(&gradeOutputFile, "output", "assessment_result.json", "Path to output result JSON")
	_ = assessmentGradeCmd.MarkFlagRequired("assessment")
	_ = assessmentGradeCmd.MarkFlagRequired("answers")

	assessmentCmd.AddCommand(assessmentGenerateCmd)
	assessmentCmd.AddCommand(assessmentGradeCmd)
	rootCmd.AddCommand(assessmentCmd)
}

func runAssessmentGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, llmCfg, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var skills []string
	for _, s := range strings.Split(assessSkills, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}

	a, err := assessment.Generate(ctx, client, llmCfg.ProfileOptions(llm.ProfileReasoning), assessment.GenerateInput{
		CandidateName:   assessCandidate,
		JobTitle:        assessJobTitle,
		ExperienceLevel: assessLevel,
		Skills:          skills,
	})
	if err != nil {
		return err
	}

	if err := writeJSON(assessOutputFile, a); err != nil {
		return err
	}

	fmt.Printf("Assessment %s written to %s (%d questions, %d points, passing %d)\n",
		a.ID, assessOutputFile,
		len(a.CodingQuestions)+len(a.SystemDesignQuestions)+len(a.BehavioralQuestions),
		a.TotalScore, a.PassingScore)
	return nil
}

func runAssessmentGrade(_ *cobra.Command, _ []string) error {
	var a types.Assessment
	if err := readJSON(gradeAssessmentFile, &a); err != nil {
		return err
	}

	var answers assessment.Answers
	if err := readJSON(gradeAnswersFile, &answers); err != nil {
		return err
	}

	result := assessment.Grade(&a, answers)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAssessmentResult(result)

	if err := writeJSON(gradeOutputFile, result); err != nil {
		return err
	}

	fmt.Printf("Result written to %s\n", gradeOutputFile)
	return nil
}
