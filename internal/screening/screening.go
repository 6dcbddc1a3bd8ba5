// Package screening runs the resume screening pipeline: parse a resume,
// match it against a job description, and produce a hiring decision. Every
// step extracts a schema-conforming record from the model response; a failed
// call or unrecoverable response yields the schema defaults, never an error.
package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/avargas/hireflow/internal/llm"
	"github.com/avargas/hireflow/internal/prompts"
	"github.com/avargas/hireflow/internal/repair"
	"github.com/avargas/hireflow/internal/schema"
	"github.com/avargas/hireflow/internal/schemas"
	"github.com/avargas/hireflow/internal/types"
)

// ParseResume extracts a structured resume from raw resume text. The
// returned record is always usable: on extraction failure every field holds
// its schema default.
func ParseResume(ctx context.Context, client llm.Client, opts llm.Options, resumeText string) (*types.ParsedResume, *repair.Result) {
	systemPrompt := prompts.MustGet("screening.json", "parse-resume")

	res := completeAndExtract(ctx, client, opts, systemPrompt, resumeText, resumeSchema)

	var resume types.ParsedResume
	decodeRecord(res, resumeSchema, &resume)
	validateRecord(schemas.ParsedResume, &resume)
	return &resume, res
}

// MatchJob scores a parsed resume against a job description. Wire scores are
// 0-100 integers; the returned record stores 0.0-1.0 fractions.
func MatchJob(ctx context.Context, client llm.Client, opts llm.Options, resume *types.ParsedResume, jobText string) (*types.MatchAnalysis, *repair.Result) {
	systemPrompt := prompts.MustGet("screening.json", "match-job")
	userContent := fmt.Sprintf("PARSED RESUME:\n%s\n\nJOB DESCRIPTION:\n%s", mustJSON(resume), jobText)

	res := completeAndExtract(ctx, client, opts, systemPrompt, userContent, matchSchema)

	var wire matchWire
	decodeRecord(res, matchSchema, &wire)
	match := wire.toRecord()
	validateRecord(schemas.MatchAnalysis, match)
	return match, res
}

// GenerateDecision produces the final screening decision from the parsed
// resume, the match analysis, and the job description. The default decision
// is HOLD with 50 confidence.
func GenerateDecision(ctx context.Context, client llm.Client, opts llm.Options, resume *types.ParsedResume, match *types.MatchAnalysis, jobText string) (*types.DecisionFeedback, *repair.Result) {
	systemPrompt := prompts.MustGet("screening.json", "generate-decision")
	userContent := fmt.Sprintf("PARSED RESUME:\n%s\n\nMATCH ANALYSIS:\n%s\n\nJOB DESCRIPTION:\n%s",
		mustJSON(resume), mustJSON(match), jobText)

	res := completeAndExtract(ctx, client, opts, systemPrompt, userContent, decisionSchema)

	var decision types.DecisionFeedback
	decodeRecord(res, decisionSchema, &decision)
	validateRecord(schemas.Decision, &decision)
	return &decision, res
}

// completeAndExtract calls the model and runs schema-validating extraction
// on the response. A transport or envelope error is reported as an
// extraction failure so callers fall back to defaults uniformly.
func completeAndExtract(ctx context.Context, client llm.Client, opts llm.Options, systemPrompt, userContent string, s *schema.Schema) *repair.Result {
	raw, err := client.Complete(ctx, systemPrompt, userContent, opts)
	if err != nil {
		log.Printf("screening: completion failed, using schema defaults: %v", err)
		return &repair.Result{Status: repair.Failure, Reason: err.Error()}
	}

	res := repair.Extract(raw, s)
	return &res
}

// decodeRecord maps an extraction result onto a typed record. A Failure
// result decodes the schema defaults instead.
func decodeRecord(res *repair.Result, s *schema.Schema, out any) {
	value := res.Value
	if value == nil {
		value = schema.Defaults(s)
	}
	data, err := json.Marshal(value)
	if err != nil {
		data, _ = json.Marshal(schema.Defaults(s))
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("screening: record decode failed: %v", err)
	}
}

// validateRecord checks the record against its embedded JSON Schema.
// Validation is advisory: a mismatch is logged, never returned.
func validateRecord(schemaName string, record any) {
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := schemas.Validate(schemaName, string(data)); err != nil {
		log.Printf("screening: %s failed schema validation: %v", schemaName, err)
	}
}

func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// matchWire is the shape the match-job prompt asks for. It differs from the
// MatchAnalysis record: per-area matches and gaps are folded into a single
// details list.
type matchWire struct {
	MatchScore float64 `json:"match_score"`
	Analysis   struct {
		Skills     breakdownWire `json:"skills"`
		Experience breakdownWire `json:"experience"`
		Education  breakdownWire `json:"education"`
	} `json:"analysis"`
	AdditionalInsights            []string `json:"additional_insights"`
	RecommendedInterviewQuestions []string `json:"recommended_interview_questions"`
}

type breakdownWire struct {
	Score   float64  `json:"score"`
	Matches []string `json:"matches"`
	Gaps    []string `json:"gaps"`
}

func (w breakdownWire) toBreakdown() types.AnalysisBreakdown {
	details := make([]string, 0, len(w.Matches)+len(w.Gaps))
	details = append(details, w.Matches...)
	for _, gap := range w.Gaps {
		details = append(details, "Gap: "+gap)
	}
	return types.AnalysisBreakdown{Score: w.Score, Details: details}
}

func (w matchWire) toRecord() *types.MatchAnalysis {
	return &types.MatchAnalysis{
		OverallMatchScore:             w.MatchScore,
		SkillsMatch:                   w.Analysis.Skills.toBreakdown(),
		ExperienceMatch:               w.Analysis.Experience.toBreakdown(),
		EducationMatch:                w.Analysis.Education.toBreakdown(),
		AdditionalInsights:            nonNil(w.AdditionalInsights),
		RecommendedInterviewQuestions: nonNil(w.RecommendedInterviewQuestions),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
