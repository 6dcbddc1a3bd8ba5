package types

import "time"

// CodingQuestion is a multiple-choice coding question.
type CodingQuestion struct {
	ID                    string   `json:"id"`
	Text                  string   `json:"text"`
	Difficulty            string   `json:"difficulty"`
	Score                 int      `json:"score"`
	Options               []string `json:"options"`
	CorrectOption         int      `json:"correct_option"`
	Explanation           string   `json:"explanation"`
	SkillsTested          []string `json:"skills_tested,omitempty"`
	PerformanceIndicators []string `json:"performance_indicators,omitempty"`
}

// SystemDesignQuestion is an open-ended architecture question.
type SystemDesignQuestion struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text"`
	Difficulty         string   `json:"difficulty"`
	Score              int      `json:"score"`
	Scenario           string   `json:"scenario"`
	Requirements       []string `json:"requirements"`
	ExpectedComponents []string `json:"expected_components"`
	EvaluationCriteria []string `json:"evaluation_criteria,omitempty"`
}

// BehavioralQuestion probes soft skills and motivation.
type BehavioralQuestion struct {
	ID                string   `json:"id"`
	Text              string   `json:"text"`
	Difficulty        string   `json:"difficulty"`
	Score             int      `json:"score"`
	Context           string   `json:"context"`
	EvaluationPoints  []string `json:"evaluation_points"`
	PassionIndicators []string `json:"passion_indicators,omitempty"`
}

// Assessment is a complete generated online assessment.
type Assessment struct {
	ID                    string                 `json:"id"`
	CandidateName         string                 `json:"candidate_name"`
	JobTitle              string                 `json:"job_title"`
	ExperienceLevel       string                 `json:"experience_level"`
	CodingQuestions       []CodingQuestion       `json:"coding_questions"`
	SystemDesignQuestions []SystemDesignQuestion `json:"system_design_questions"`
	BehavioralQuestions   []BehavioralQuestion   `json:"behavioral_questions"`
	TotalScore            int                    `json:"total_score"`
	PassingScore          int                    `json:"passing_score"`
}

// AssessmentResult holds a graded assessment.
type AssessmentResult struct {
	AssessmentID          string             `json:"assessment_id"`
	CandidateName         string             `json:"candidate_name"`
	Score                 int                `json:"score"`
	Passed                bool               `json:"passed"`
	QuestionScores        map[string]int     `json:"question_scores"`
	Feedback              map[string]string  `json:"feedback"`
	TechnicalRating       float64            `json:"technical_rating"`
	PassionRating         float64            `json:"passion_rating"`
	PerformanceByCategory map[string]float64 `json:"performance_by_category"`
	Timestamp             time.Time          `json:"timestamp"`
}
