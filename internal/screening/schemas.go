package screening

import "github.com/avargas/hireflow/internal/schema"

// resumeSchema mirrors the JSON structure requested by the parse-resume
// prompt. Defaults use visible placeholder strings so a failed extraction is
// obvious in downstream output.
var resumeSchema = &schema.Schema{
	Name: "parsed_resume",
	Fields: []schema.Field{
		{Name: "personal_info", Kind: schema.Object, Required: true, Nested: &schema.Schema{
			Name: "personal_info",
			Fields: []schema.Field{
				{Name: "name", Kind: schema.String, Required: true, Default: "Name not provided"},
				{Name: "email", Kind: schema.String, Required: true, Default: "Email not provided"},
				{Name: "phone", Kind: schema.String},
				{Name: "location", Kind: schema.String},
			},
		}},
		{Name: "summary", Kind: schema.String, Required: true},
		{Name: "education", Kind: schema.List, Required: true, Elem: &schema.Field{Kind: schema.Object, Nested: &schema.Schema{
			Name: "education_entry",
			Fields: []schema.Field{
				{Name: "degree", Kind: schema.String, Required: true},
				{Name: "institution", Kind: schema.String, Required: true},
				{Name: "field", Kind: schema.String},
				{Name: "graduation_date", Kind: schema.String},
				{Name: "gpa", Kind: schema.Float, Clamp: &schema.Range{Min: 0, Max: 10}},
			},
		}}},
		{Name: "experience", Kind: schema.List, Required: true, Elem: &schema.Field{Kind: schema.Object, Nested: &schema.Schema{
			Name: "experience_entry",
			Fields: []schema.Field{
				{Name: "title", Kind: schema.String, Required: true},
				{Name: "company", Kind: schema.String, Required: true},
				{Name: "duration", Kind: schema.String, Required: true},
				{Name: "location", Kind: schema.String},
				{Name: "description", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "responsibilities", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "achievements", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
			},
		}}},
		{Name: "skills", Kind: schema.List, Required: true, Elem: &schema.Field{Kind: schema.String}},
		{Name: "projects", Kind: schema.List, Elem: &schema.Field{Kind: schema.Object, Nested: &schema.Schema{
			Name: "project_entry",
			Fields: []schema.Field{
				{Name: "name", Kind: schema.String, Required: true},
				{Name: "description", Kind: schema.String},
				{Name: "technologies", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "url", Kind: schema.String},
			},
		}}},
		{Name: "certifications", Kind: schema.List, Elem: &schema.Field{Kind: schema.Object, Nested: &schema.Schema{
			Name: "certification_entry",
			Fields: []schema.Field{
				{Name: "name", Kind: schema.String, Required: true},
				{Name: "issuer", Kind: schema.String},
				{Name: "date", Kind: schema.String},
			},
		}}},
	},
}

// matchSchema mirrors the match-job prompt output. Scores arrive as 0-100
// integers and are stored as 0.0-1.0 fractions.
var matchSchema = &schema.Schema{
	Name: "match_analysis",
	Fields: []schema.Field{
		{Name: "match_score", Kind: schema.Float, Required: true, Percent: true},
		{Name: "analysis", Kind: schema.Object, Required: true, Nested: &schema.Schema{
			Name: "analysis",
			Fields: []schema.Field{
				{Name: "skills", Kind: schema.Object, Required: true, Nested: breakdownSchema("skills")},
				{Name: "experience", Kind: schema.Object, Required: true, Nested: breakdownSchema("experience")},
				{Name: "education", Kind: schema.Object, Required: true, Nested: breakdownSchema("education")},
			},
		}},
		{Name: "additional_insights", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
		{Name: "recommended_interview_questions", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
	},
}

func breakdownSchema(name string) *schema.Schema {
	return &schema.Schema{
		Name: name,
		Fields: []schema.Field{
			{Name: "score", Kind: schema.Float, Required: true, Percent: true},
			{Name: "matches", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
			{Name: "gaps", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
		},
	}
}

// decisionSchema mirrors the generate-decision prompt output. A failed
// extraction defaults to HOLD so nobody is rejected on a transport error.
var decisionSchema = &schema.Schema{
	Name: "decision",
	Fields: []schema.Field{
		{Name: "decision", Kind: schema.Object, Required: true, Nested: &schema.Schema{
			Name: "decision_details",
			Fields: []schema.Field{
				{Name: "status", Kind: schema.String, Required: true, Default: "HOLD"},
				{Name: "confidence_score", Kind: schema.Int, Required: true, Default: 50, Clamp: &schema.Range{Min: 0, Max: 100}},
				{Name: "interview_stage", Kind: schema.String, Default: "phone_screen"},
			},
		}},
		{Name: "rationale", Kind: schema.Object, Required: true, Nested: &schema.Schema{
			Name: "rationale",
			Fields: []schema.Field{
				{Name: "key_strengths", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "concerns", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "risk_factors", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
			},
		}},
		{Name: "recommendations", Kind: schema.Object, Required: true, Nested: &schema.Schema{
			Name: "recommendations",
			Fields: []schema.Field{
				{Name: "interview_focus", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "skill_verification", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "discussion_points", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
			},
		}},
		{Name: "hiring_manager_notes", Kind: schema.Object, Nested: &schema.Schema{
			Name: "hiring_manager_notes",
			Fields: []schema.Field{
				{Name: "salary_band_fit", Kind: schema.String},
				{Name: "growth_trajectory", Kind: schema.String},
				{Name: "team_fit_considerations", Kind: schema.String},
				{Name: "onboarding_requirements", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
			},
		}},
		{Name: "next_steps", Kind: schema.Object, Required: true, Nested: &schema.Schema{
			Name: "next_steps",
			Fields: []schema.Field{
				{Name: "immediate_actions", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "required_approvals", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "timeline_recommendation", Kind: schema.String, Default: "Review within 1 week"},
			},
		}},
	},
}
