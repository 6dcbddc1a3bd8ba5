// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/avargas/hireflow/internal/repair"
	"github.com/avargas/hireflow/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs how a record was recovered from the model
// response: status, the repairs that fired and the fields that fell back to
// schema defaults.
func (p *Printer) PrintExtraction(stage string, res *repair.Result) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:   %s\n", res.Status))

	if len(res.AppliedRepairs) > 0 {
		sb.WriteString("Repairs:\n")
		for _, kind := range res.AppliedRepairs {
			sb.WriteString(fmt.Sprintf("  • %s\n", kind))
		}
	}

	if len(res.DefaultedFields) > 0 {
		sb.WriteString("Defaulted fields:\n")
		count := min(len(res.DefaultedFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", res.DefaultedFields[i]))
		}
		if len(res.DefaultedFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(res.DefaultedFields)-maxItemsToShow))
		}
	}

	if res.Reason != "" {
		sb.WriteString(fmt.Sprintf("Reason:   %s\n", res.Reason))
	}

	p.printBox(fmt.Sprintf("EXTRACTION: %s", strings.ToUpper(stage)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParsedResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.PersonalInfo.Email))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(resume.Experience)))

	if len(resume.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i]))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchAnalysis outputs the match scores and the leading details.
func (p *Printer) PrintMatchAnalysis(match *types.MatchAnalysis) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall match:   %3.0f%%\n", match.OverallMatchScore*100))
	sb.WriteString(fmt.Sprintf("Skills:          %3.0f%%\n", match.SkillsMatch.Score*100))
	sb.WriteString(fmt.Sprintf("Experience:      %3.0f%%\n", match.ExperienceMatch.Score*100))
	sb.WriteString(fmt.Sprintf("Education:       %3.0f%%\n", match.EducationMatch.Score*100))

	if len(match.SkillsMatch.Details) > 0 {
		sb.WriteString("\nSkills detail:\n")
		count := min(len(match.SkillsMatch.Details), 3)
		for i := 0; i < count; i++ {
			detail := match.SkillsMatch.Details[i]
			if len(detail) > 50 {
				detail = detail[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", detail))
		}
		if len(match.SkillsMatch.Details) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.SkillsMatch.Details)-3))
		}
	}

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDecision outputs the screening decision with its rationale.
func (p *Printer) PrintDecision(decision *types.DecisionFeedback) {
	if decision == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Decision:    %s\n", decision.Decision.Status))
	sb.WriteString(fmt.Sprintf("Confidence:  %d%%\n", decision.Decision.ConfidenceScore))
	if decision.Decision.InterviewStage != "" {
		sb.WriteString(fmt.Sprintf("Next stage:  %s\n", decision.Decision.InterviewStage))
	}

	if len(decision.Rationale.KeyStrengths) > 0 {
		sb.WriteString("\nKey strengths:\n")
		count := min(len(decision.Rationale.KeyStrengths), 3)
		for i := 0; i < count; i++ {
			strength := decision.Rationale.KeyStrengths[i]
			if len(strength) > 50 {
				strength = strength[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", strength))
		}
	}

	if len(decision.Rationale.Concerns) > 0 {
		sb.WriteString("\nConcerns:\n")
		count := min(len(decision.Rationale.Concerns), 3)
		for i := 0; i < count; i++ {
			concern := decision.Rationale.Concerns[i]
			if len(concern) > 50 {
				concern = concern[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", concern))
		}
	}

	p.printBox("SCREENING DECISION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGuideSummary outputs section names and score thresholds for a guide.
func (p *Printer) PrintGuideSummary(guide *types.InterviewGuide) {
	if guide == nil || len(guide.Sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", guide.CandidateName))
	sb.WriteString(fmt.Sprintf("Role:      %s\n\n", guide.JobTitle))

	for _, section := range guide.Sections {
		sb.WriteString(fmt.Sprintf("%-22s %2d questions  %3d pts\n", section.Name, len(section.Questions), section.TotalScore))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d pts, passing: %d pts", guide.TotalScore, guide.PassingScore))

	p.printBox("INTERVIEW GUIDE", sb.String())
}

// PrintAssessmentResult outputs a graded assessment summary.
func (p *Printer) PrintAssessmentResult(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	verdict := "FAILED"
	if result.Passed {
		verdict = "PASSED"
	}
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateName))
	sb.WriteString(fmt.Sprintf("Score:     %d (%s)\n", result.Score, verdict))
	sb.WriteString(fmt.Sprintf("Technical: %.0f%%  Passion: %.0f%%\n", result.TechnicalRating*100, result.PassionRating*100))

	if len(result.PerformanceByCategory) > 0 {
		sb.WriteString("\nBy category:\n")
		for _, category := range []string{"coding", "system_design", "behavioral"} {
			if score, ok := result.PerformanceByCategory[category]; ok {
				sb.WriteString(fmt.Sprintf("  %-15s %3.0f%%\n", category, score*100))
			}
		}
	}

	p.printBox("ASSESSMENT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
