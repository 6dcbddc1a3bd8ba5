// Package jobdesc generates job descriptions in Markdown and formats them
// for posting platforms. Platform delivery is stubbed; posting produces
// previews of the exact payload each platform would receive.
package jobdesc

import (
	"context"
	"fmt"
	"strings"

	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/prompts"
	"github.com/avargas/hireflow/internal/types"
)

// GenerationError indicates the job description could not be produced.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job description generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job description generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Generate writes a Markdown job description from the form input. Unlike the
// extraction pipelines, the output here is prose; only fence stripping is
// applied to the response.
func Generate(ctx context.Context, client llm.Client, opts llm.Options, input types.JobInput) (string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", &GenerationError{Message: "job title is required"}
	}

	systemPrompt := prompts.Format(prompts.MustGet("jobdesc.json", "generate-jd"), map[string]string{
		"Title":            input.Title,
		"Seniority":        orDefault(input.Seniority, "unspecified"),
		"Department":       orDefault(input.Department, "unspecified"),
		"Location":         formatLocation(input),
		"Skills":           strings.Join(input.Skills, ", "),
		"Responsibilities": strings.Join(input.Responsibilities, "; "),
		"SalaryBand":       orDefault(input.SalaryBand, "not disclosed"),
		"Benefits":         strings.Join(input.Benefits, "; "),
		"CompanyBlurb":     orDefault(input.CompanyBlurb, "not provided"),
	})

	raw, err := client.Complete(ctx, systemPrompt, "Write the job description now.", opts)
	if err != nil {
		return "", &GenerationError{Message: "completion failed", Cause: err}
	}

	markdown := stripFence(raw)
	if strings.TrimSpace(markdown) == "" {
		return "", &GenerationError{Message: "model returned an empty document"}
	}
	return markdown, nil
}

func formatLocation(input types.JobInput) string {
	location := orDefault(input.Location, "unspecified")
	if input.Remote {
		return location + " (remote friendly)"
	}
	return location
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// stripFence removes a markdown code fence wrapping the whole response.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	trimmed := strings.TrimPrefix(text, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
