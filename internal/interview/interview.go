// Package interview generates structured interview guides tailored to a
// candidate's resume, the job description, and optional online-assessment
// results. Sections are generated concurrently with a bounded limit; a
// section whose generation fails is skipped rather than failing the guide.
package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/prompts"
	"github.com/avargas/hireflow/internal/repair"
	"github.com/avargas/hireflow/internal/types"
)

// Passing threshold as a share of the total available score.
const passingRatio = 0.7

// maxConcurrentSections bounds in-flight generation calls.
const maxConcurrentSections = 2

// GuideInput carries everything needed to generate an interview guide.
type GuideInput struct {
	CandidateName string
	Resume        *types.ParsedResume
	Job           *types.JobDescription
	OAResult      *types.OAResult
}

// GenerationError indicates the guide could not be generated at all.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("guide generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("guide generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// sectionPlan describes one interview round to generate.
type sectionPlan struct {
	name        string
	category    string
	description string
	count       int
	seniorOnly  bool
}

var sectionPlans = []sectionPlan{
	{name: "Technical Knowledge", category: "technical", description: "Depth in the candidate's claimed technologies", count: 5},
	{name: "Coding", category: "coding", description: "Practical problem solving and code quality", count: 3},
	{name: "System Design", category: "system design", description: "Architecture and scaling judgment", count: 2, seniorOnly: true},
	{name: "Behavioral", category: "behavioral", description: "Collaboration, ownership, and motivation", count: 4},
}

// GenerateGuide produces a complete interview guide. Sections are generated
// with at most two concurrent model calls; a failed section is logged and
// skipped. An error is returned only when no section could be generated.
func GenerateGuide(ctx context.Context, client llm.Client, opts llm.Options, input GuideInput) (*types.InterviewGuide, error) {
	if input.Job == nil {
		return nil, &GenerationError{Message: "job description is required"}
	}

	plans := applicablePlans(input.Job.ExperienceLevel)
	sections := make([]*types.InterviewSection, len(plans))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSections)

	for i, plan := range plans {
		g.Go(func() error {
			section, err := generateSection(gctx, client, opts, plan, input)
			if err != nil {
				log.Printf("interview: skipping %s section: %v", plan.name, err)
				return nil
			}
			mu.Lock()
			sections[i] = section
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &GenerationError{Message: "section generation aborted", Cause: err}
	}

	guide := &types.InterviewGuide{
		CandidateName:         input.CandidateName,
		JobTitle:              input.Job.JobTitle,
		InterviewDate:         time.Now().UTC(),
		SpecialNotes:          specialNotes(input.OAResult),
		InterviewerGuidelines: interviewerGuidelines(),
	}
	for _, s := range sections {
		if s == nil {
			continue
		}
		guide.Sections = append(guide.Sections, *s)
		guide.TotalScore += s.TotalScore
	}
	if len(guide.Sections) == 0 {
		return nil, &GenerationError{Message: "no sections could be generated"}
	}
	guide.PassingScore = int(float64(guide.TotalScore) * passingRatio)

	return guide, nil
}

func applicablePlans(experienceLevel string) []sectionPlan {
	senior := isSenior(experienceLevel)
	plans := make([]sectionPlan, 0, len(sectionPlans))
	for _, p := range sectionPlans {
		if p.seniorOnly && !senior {
			continue
		}
		plans = append(plans, p)
	}
	return plans
}

func isSenior(level string) bool {
	normalized := strings.ToLower(level)
	return strings.Contains(normalized, "senior") || strings.Contains(normalized, "mid") ||
		strings.Contains(normalized, "staff") || strings.Contains(normalized, "lead")
}

func generateSection(ctx context.Context, client llm.Client, opts llm.Options, plan sectionPlan, input GuideInput) (*types.InterviewSection, error) {
	systemPrompt := prompts.Format(prompts.MustGet("interview.json", "section-questions"), map[string]string{
		"Category":        plan.category,
		"ExperienceLevel": input.Job.ExperienceLevel,
		"JobTitle":        input.Job.JobTitle,
		"Skills":          candidateSkills(input.Resume),
		"Qualifications":  strings.Join(input.Job.Qualifications, "; "),
		"OANotes":         oaNotes(input.OAResult),
		"Count":           fmt.Sprintf("%d", plan.count),
	})

	raw, err := client.Complete(ctx, systemPrompt, "Generate the questions now.", opts)
	if err != nil {
		return nil, err
	}

	res := repair.Extract(raw, questionsSchema)
	if res.Status == repair.Failure {
		return nil, fmt.Errorf("no questions recovered: %s", res.Reason)
	}

	questions := decodeQuestions(res.Value)
	if len(questions) == 0 {
		return nil, fmt.Errorf("response contained no usable questions")
	}

	section := &types.InterviewSection{
		Name:        plan.name,
		Description: plan.description,
		Questions:   questions,
	}
	for i := range section.Questions {
		q := &section.Questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.Category == "" {
			q.Category = plan.category
		}
		section.TotalScore += q.Score
	}
	section.PassingScore = int(float64(section.TotalScore) * passingRatio)

	return section, nil
}

func decodeQuestions(value map[string]any) []types.InterviewQuestion {
	data, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	var wire struct {
		Questions []types.InterviewQuestion `json:"questions"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil
	}

	// Questions without text are generation noise, drop them.
	questions := wire.Questions[:0]
	for _, q := range wire.Questions {
		if strings.TrimSpace(q.Question) != "" {
			questions = append(questions, q)
		}
	}
	return questions
}

func candidateSkills(resume *types.ParsedResume) string {
	if resume == nil || len(resume.Skills) == 0 {
		return "not provided"
	}
	return strings.Join(resume.Skills, ", ")
}

func oaNotes(oa *types.OAResult) string {
	if oa == nil {
		return "no online assessment on file"
	}
	var weak []string
	for category, score := range oa.PerformanceByCategory {
		if score < 0.6 {
			weak = append(weak, category)
		}
	}
	note := fmt.Sprintf("status %s, score %d, technical %.2f, passion %.2f", oa.Status, oa.TotalScore, oa.TechnicalRating, oa.PassionRating)
	if len(weak) > 0 {
		note += "; weak categories: " + strings.Join(weak, ", ")
	}
	return note
}

func specialNotes(oa *types.OAResult) []string {
	if oa == nil {
		return nil
	}
	var notes []string
	if oa.TechnicalRating < 0.5 {
		notes = append(notes, fmt.Sprintf("Online assessment technical rating was low (%.2f); verify fundamentals before depth.", oa.TechnicalRating))
	}
	if oa.PassionRating >= 0.8 {
		notes = append(notes, "Online assessment showed strong motivation; probe for concrete examples.")
	}
	if strings.EqualFold(oa.Status, "failed") {
		notes = append(notes, "Candidate did not pass the online assessment; confirm the interview should proceed.")
	}
	return notes
}

func interviewerGuidelines() []string {
	return []string{
		"Ask the question as written, then use follow-ups to probe depth.",
		"Score each question against its maximum before moving on.",
		"Record verbatim quotes for the debrief, not impressions.",
	}
}
