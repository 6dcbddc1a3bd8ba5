// Package assessment generates online assessments and grades submitted
// answers. Question generation is one model call per question, issued with a
// bounded concurrency limit; a failed call falls back to a bank question so
// the assessment always reaches its planned size.
package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/prompts"
	"github.com/avargas/hireflow/internal/repair"
	"github.com/avargas/hireflow/internal/schema"
	"github.com/avargas/hireflow/internal/types"
)

const (
	passingRatio           = 0.7
	maxConcurrentQuestions = 2

	codingQuestionCount       = 5
	systemDesignQuestionCount = 2
	behavioralQuestionCount   = 3
)

// GenerateInput describes the assessment to create.
type GenerateInput struct {
	CandidateName   string
	JobTitle        string
	ExperienceLevel string
	Skills          []string
}

// Generate builds a complete assessment for the candidate. System design
// questions are included for mid-level and senior candidates only.
func Generate(ctx context.Context, client llm.Client, opts llm.Options, input GenerateInput) (*types.Assessment, error) {
	a := &types.Assessment{
		ID:                    uuid.NewString(),
		CandidateName:         input.CandidateName,
		JobTitle:              input.JobTitle,
		ExperienceLevel:       input.ExperienceLevel,
		CodingQuestions:       make([]types.CodingQuestion, codingQuestionCount),
		BehavioralQuestions:   make([]types.BehavioralQuestion, behavioralQuestionCount),
		SystemDesignQuestions: []types.SystemDesignQuestion{},
	}
	includeSystemDesign := isSenior(input.ExperienceLevel)
	if includeSystemDesign {
		a.SystemDesignQuestions = make([]types.SystemDesignQuestion, systemDesignQuestionCount)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuestions)

	for i := 0; i < codingQuestionCount; i++ {
		g.Go(func() error {
			a.CodingQuestions[i] = generateCodingQuestion(gctx, client, opts, input, i)
			return nil
		})
	}
	if includeSystemDesign {
		for i := 0; i < systemDesignQuestionCount; i++ {
			g.Go(func() error {
				a.SystemDesignQuestions[i] = generateSystemDesignQuestion(gctx, client, opts, input, i)
				return nil
			})
		}
	}
	for i := 0; i < behavioralQuestionCount; i++ {
		g.Go(func() error {
			a.BehavioralQuestions[i] = generateBehavioralQuestion(gctx, client, opts, input, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assessment generation aborted: %w", err)
	}

	for _, q := range a.CodingQuestions {
		a.TotalScore += q.Score
	}
	for _, q := range a.SystemDesignQuestions {
		a.TotalScore += q.Score
	}
	for _, q := range a.BehavioralQuestions {
		a.TotalScore += q.Score
	}
	a.PassingScore = int(float64(a.TotalScore) * passingRatio)

	return a, nil
}

func isSenior(level string) bool {
	normalized := strings.ToLower(level)
	return strings.Contains(normalized, "senior") || strings.Contains(normalized, "mid") ||
		strings.Contains(normalized, "staff") || strings.Contains(normalized, "lead")
}

func generateCodingQuestion(ctx context.Context, client llm.Client, opts llm.Options, input GenerateInput, index int) types.CodingQuestion {
	var q types.CodingQuestion
	ok := generateQuestion(ctx, client, opts, "coding-question", input, codingQuestionSchema, &q)
	if !ok || len(q.Options) < 2 {
		q = fallbackCodingQuestions[index%len(fallbackCodingQuestions)]
	}
	q.ID = uuid.NewString()
	return q
}

func generateSystemDesignQuestion(ctx context.Context, client llm.Client, opts llm.Options, input GenerateInput, index int) types.SystemDesignQuestion {
	var q types.SystemDesignQuestion
	ok := generateQuestion(ctx, client, opts, "system-design-question", input, systemDesignQuestionSchema, &q)
	if !ok {
		q = fallbackSystemDesignQuestions[index%len(fallbackSystemDesignQuestions)]
	}
	q.ID = uuid.NewString()
	return q
}

func generateBehavioralQuestion(ctx context.Context, client llm.Client, opts llm.Options, input GenerateInput, index int) types.BehavioralQuestion {
	var q types.BehavioralQuestion
	ok := generateQuestion(ctx, client, opts, "behavioral-question", input, behavioralQuestionSchema, &q)
	if !ok {
		q = fallbackBehavioralQuestions[index%len(fallbackBehavioralQuestions)]
	}
	q.ID = uuid.NewString()
	return q
}

// generateQuestion runs one prompt-complete-extract round for a single
// question. Returns false when the caller should use a fallback.
func generateQuestion(ctx context.Context, client llm.Client, opts llm.Options, promptKey string, input GenerateInput, s *schema.Schema, out any) bool {
	systemPrompt := prompts.Format(prompts.MustGet("assessment.json", promptKey), map[string]string{
		"ExperienceLevel": input.ExperienceLevel,
		"Skills":          strings.Join(input.Skills, ", "),
	})

	raw, err := client.Complete(ctx, systemPrompt, "Generate the question now.", opts)
	if err != nil {
		log.Printf("assessment: %s call failed, using fallback: %v", promptKey, err)
		return false
	}

	res := repair.Extract(raw, s)
	if res.Status == repair.Failure {
		log.Printf("assessment: %s response unusable, using fallback: %s", promptKey, res.Reason)
		return false
	}

	data, err := json.Marshal(res.Value)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("assessment: %s decode failed, using fallback: %v", promptKey, err)
		return false
	}
	return true
}
