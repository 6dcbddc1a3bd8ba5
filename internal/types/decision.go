package types

// Decision statuses a screening run can produce.
const (
	DecisionProceed = "PROCEED"
	DecisionHold    = "HOLD"
	DecisionReject  = "REJECT"
)

// DecisionDetails is the headline hiring recommendation.
type DecisionDetails struct {
	Status          string `json:"status"`
	ConfidenceScore int    `json:"confidence_score"`
	InterviewStage  string `json:"interview_stage"`
}

// RationaleDetails explains the reasoning behind a decision.
type RationaleDetails struct {
	KeyStrengths []string `json:"key_strengths"`
	Concerns     []string `json:"concerns"`
	RiskFactors  []string `json:"risk_factors"`
}

// RecommendationDetails lists follow-up actions for the interview loop.
type RecommendationDetails struct {
	InterviewFocus    []string `json:"interview_focus"`
	SkillVerification []string `json:"skill_verification"`
	DiscussionPoints  []string `json:"discussion_points"`
}

// HiringManagerNotes carries context for the hiring manager.
type HiringManagerNotes struct {
	SalaryBandFit          string   `json:"salary_band_fit"`
	GrowthTrajectory       string   `json:"growth_trajectory"`
	TeamFitConsiderations  string   `json:"team_fit_considerations"`
	OnboardingRequirements []string `json:"onboarding_requirements"`
}

// NextStepsDetails lays out the process after a decision.
type NextStepsDetails struct {
	ImmediateActions       []string `json:"immediate_actions"`
	RequiredApprovals      []string `json:"required_approvals"`
	TimelineRecommendation string   `json:"timeline_recommendation"`
}

// DecisionFeedback is the full screening decision record.
type DecisionFeedback struct {
	Decision           DecisionDetails       `json:"decision"`
	Rationale          RationaleDetails      `json:"rationale"`
	Recommendations    RecommendationDetails `json:"recommendations"`
	HiringManagerNotes HiringManagerNotes    `json:"hiring_manager_notes"`
	NextSteps          NextStepsDetails      `json:"next_steps"`
}
