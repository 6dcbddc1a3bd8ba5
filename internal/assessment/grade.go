package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/prompts"
	"github.com/avargas/hireflow/internal/repair"
	"github.com/avargas/hireflow/internal/schemas"
	"github.com/avargas/hireflow/internal/types"
)

// Answers holds a candidate's submission, keyed by question ID.
type Answers struct {
	// Selected maps a coding question ID to the chosen option index.
	Selected map[string]int `json:"selected"`
	// Text maps an open-ended question ID to the written answer.
	Text map[string]string `json:"text"`
}

// Grade scores a submission locally and deterministically. Multiple-choice
// questions score all-or-nothing; open-ended answers are scored by keyword
// coverage against the question's expected points.
func Grade(a *types.Assessment, answers Answers) *types.AssessmentResult {
	result := &types.AssessmentResult{
		AssessmentID:          a.ID,
		CandidateName:         a.CandidateName,
		QuestionScores:        make(map[string]int),
		Feedback:              make(map[string]string),
		PerformanceByCategory: make(map[string]float64),
		Timestamp:             time.Now().UTC(),
	}

	var codingEarned, codingMax int
	for _, q := range a.CodingQuestions {
		codingMax += q.Score
		selected, answered := answers.Selected[q.ID]
		if answered && selected == q.CorrectOption {
			result.QuestionScores[q.ID] = q.Score
			result.Feedback[q.ID] = "Correct."
			codingEarned += q.Score
			continue
		}
		result.QuestionScores[q.ID] = 0
		if !answered {
			result.Feedback[q.ID] = "Not answered."
		} else {
			result.Feedback[q.ID] = "Incorrect. " + q.Explanation
		}
	}

	var designEarned, designMax int
	for _, q := range a.SystemDesignQuestions {
		designMax += q.Score
		answer := answers.Text[q.ID]
		coverage := keywordCoverage(answer, append(q.ExpectedComponents, q.EvaluationCriteria...))
		earned := int(math.Round(coverage * float64(q.Score)))
		result.QuestionScores[q.ID] = earned
		result.Feedback[q.ID] = coverageFeedback(answer, coverage)
		designEarned += earned
	}

	var behavioralEarned, behavioralMax int
	var passionTotal float64
	for _, q := range a.BehavioralQuestions {
		behavioralMax += q.Score
		answer := answers.Text[q.ID]
		coverage := keywordCoverage(answer, q.EvaluationPoints)
		earned := int(math.Round(coverage * float64(q.Score)))
		result.QuestionScores[q.ID] = earned
		result.Feedback[q.ID] = coverageFeedback(answer, coverage)
		behavioralEarned += earned
		passionTotal += keywordCoverage(answer, q.PassionIndicators)
	}

	result.Score = codingEarned + designEarned + behavioralEarned
	result.Passed = result.Score >= a.PassingScore

	result.PerformanceByCategory["coding"] = ratio(codingEarned, codingMax)
	if designMax > 0 {
		result.PerformanceByCategory["system_design"] = ratio(designEarned, designMax)
	}
	result.PerformanceByCategory["behavioral"] = ratio(behavioralEarned, behavioralMax)

	technicalMax := codingMax + designMax
	result.TechnicalRating = ratio(codingEarned+designEarned, technicalMax)
	if len(a.BehavioralQuestions) > 0 {
		result.PassionRating = passionTotal / float64(len(a.BehavioralQuestions))
	}

	validateResult(result)
	return result
}

// validateResult checks the graded record against the embedded result schema.
// Violations are logged, never fatal.
func validateResult(result *types.AssessmentResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := schemas.Validate(schemas.AssessmentResult, string(data)); err != nil {
		log.Printf("assessment: %s failed schema validation: %v", schemas.AssessmentResult, err)
	}
}

// Evaluation is the outcome of grading one open-ended answer.
type Evaluation struct {
	Score             int    `json:"score"`
	Feedback          string `json:"feedback"`
	TechnicalAccuracy int    `json:"technical_accuracy"`
	Completeness      int    `json:"completeness"`
}

// EvaluateAnswer grades one open-ended answer with the model. When the call
// or extraction fails it falls back to local keyword scoring against the
// provided expected points.
func EvaluateAnswer(ctx context.Context, client llm.Client, opts llm.Options, question string, maxScore int, answer string, expectedPoints []string) Evaluation {
	systemPrompt := prompts.Format(prompts.MustGet("assessment.json", "evaluate-answer"), map[string]string{
		"Question": question,
		"MaxScore": fmt.Sprintf("%d", maxScore),
		"Answer":   answer,
	})

	raw, err := client.Complete(ctx, systemPrompt, "Grade the answer now.", opts)
	if err != nil {
		log.Printf("assessment: evaluation call failed, scoring locally: %v", err)
		return localEvaluation(maxScore, answer, expectedPoints)
	}

	res := repair.Extract(raw, evaluationSchema(maxScore))
	if res.Status == repair.Failure {
		log.Printf("assessment: evaluation response unusable, scoring locally: %s", res.Reason)
		return localEvaluation(maxScore, answer, expectedPoints)
	}

	var eval Evaluation
	data, _ := json.Marshal(res.Value)
	if err := json.Unmarshal(data, &eval); err != nil {
		return localEvaluation(maxScore, answer, expectedPoints)
	}
	return eval
}

func localEvaluation(maxScore int, answer string, expectedPoints []string) Evaluation {
	coverage := keywordCoverage(answer, expectedPoints)
	pct := int(math.Round(coverage * 100))
	return Evaluation{
		Score:             int(math.Round(coverage * float64(maxScore))),
		Feedback:          coverageFeedback(answer, coverage),
		TechnicalAccuracy: pct,
		Completeness:      pct,
	}
}

// keywordCoverage reports the fraction of expected keywords that appear in
// the answer. A keyword counts when any of its significant words is present.
func keywordCoverage(answer string, keywords []string) float64 {
	if strings.TrimSpace(answer) == "" || len(keywords) == 0 {
		return 0
	}
	normalized := strings.ToLower(answer)

	hits := 0
	for _, keyword := range keywords {
		for _, word := range strings.Fields(strings.ToLower(keyword)) {
			if len(word) < 4 {
				continue
			}
			if strings.Contains(normalized, word) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(keywords))
}

func coverageFeedback(answer string, coverage float64) string {
	switch {
	case strings.TrimSpace(answer) == "":
		return "Not answered."
	case coverage >= 0.8:
		return "Covers the expected points well."
	case coverage >= 0.4:
		return "Covers some expected points; several areas were not addressed."
	default:
		return "Misses most of the expected points."
	}
}

func ratio(earned, max int) float64 {
	if max == 0 {
		return 0
	}
	return float64(earned) / float64(max)
}
