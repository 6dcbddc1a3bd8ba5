package types

import "time"

// InterviewQuestion is a single question in an interview guide.
type InterviewQuestion struct {
	ID                string   `json:"id"`
	Category          string   `json:"category"`
	Question          string   `json:"question"`
	ExpectedAnswer    string   `json:"expected_answer"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
	Difficulty        int      `json:"difficulty"`
	SkillsTested      []string `json:"skills_tested,omitempty"`
	Rationale         string   `json:"rationale"`
	Score             int      `json:"score"`
}

// InterviewSection groups questions with their scoring thresholds.
type InterviewSection struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Questions    []InterviewQuestion `json:"questions"`
	TotalScore   int                 `json:"total_score"`
	PassingScore int                 `json:"passing_score"`
}

// InterviewGuide is the complete generated interview plan for a candidate.
type InterviewGuide struct {
	CandidateName         string             `json:"candidate_name"`
	JobTitle              string             `json:"job_title"`
	InterviewDate         time.Time          `json:"interview_date"`
	Sections              []InterviewSection `json:"sections"`
	TotalScore            int                `json:"total_score"`
	PassingScore          int                `json:"passing_score"`
	SpecialNotes          []string           `json:"special_notes,omitempty"`
	InterviewerGuidelines []string           `json:"interviewer_guidelines,omitempty"`
}

// JobDescription is the structured job-posting input used by the interview
// and assessment generators.
type JobDescription struct {
	JobTitle                string   `json:"job_title"`
	Location                string   `json:"location"`
	ExperienceLevel         string   `json:"experience_level"`
	Responsibilities        []string `json:"responsibilities"`
	Qualifications          []string `json:"qualifications"`
	PreferredQualifications []string `json:"preferred_qualifications,omitempty"`
}

// OAResult summarizes a candidate's online-assessment performance, consumed
// when tailoring the interview guide.
type OAResult struct {
	TotalScore            int                `json:"total_score"`
	Status                string             `json:"status"`
	TechnicalRating       float64            `json:"technical_rating"`
	PassionRating         float64            `json:"passion_rating"`
	PerformanceByCategory map[string]float64 `json:"performance_by_category"`
}
