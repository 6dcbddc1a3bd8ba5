package types

// AnalysisBreakdown is the per-area score and supporting detail of a match
// analysis. Scores are stored as 0.0-1.0 fractions.
type AnalysisBreakdown struct {
	Score   float64  `json:"score"`
	Details []string `json:"details"`
}

// MatchAnalysis is the result of matching a parsed resume against a job
// description.
type MatchAnalysis struct {
	OverallMatchScore             float64           `json:"overall_match_score"`
	SkillsMatch                   AnalysisBreakdown `json:"skills_match"`
	ExperienceMatch               AnalysisBreakdown `json:"experience_match"`
	EducationMatch                AnalysisBreakdown `json:"education_match"`
	AdditionalInsights            []string          `json:"additional_insights"`
	RecommendedInterviewQuestions []string          `json:"recommended_interview_questions"`
}
