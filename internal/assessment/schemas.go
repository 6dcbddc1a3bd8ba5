package assessment

import "github.com/avargas/hireflow/internal/schema"

// Wire schemas for the three question generators. Defaults keep a failed
// field from zeroing out a question's score.
var codingQuestionSchema = &schema.Schema{
	Name: "coding_question",
	Fields: []schema.Field{
		{Name: "text", Kind: schema.String, Required: true},
		{Name: "difficulty", Kind: schema.String, Default: "medium"},
		{Name: "score", Kind: schema.Int, Required: true, Default: 10, Clamp: &schema.Range{Min: 1, Max: 20}},
		{Name: "options", Kind: schema.List, Required: true, Elem: &schema.Field{Kind: schema.String}},
		{Name: "correct_option", Kind: schema.Int, Required: true, Clamp: &schema.Range{Min: 0, Max: 3}},
		{Name: "explanation", Kind: schema.String},
		{Name: "skills_tested", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
		{Name: "performance_indicators", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
	},
}

var systemDesignQuestionSchema = &schema.Schema{
	Name: "system_design_question",
	Fields: []schema.Field{
		{Name: "text", Kind: schema.String, Required: true},
		{Name: "difficulty", Kind: schema.String, Default: "hard"},
		{Name: "score", Kind: schema.Int, Required: true, Default: 25, Clamp: &schema.Range{Min: 1, Max: 50}},
		{Name: "scenario", Kind: schema.String, Required: true},
		{Name: "requirements", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
		{Name: "expected_components", Kind: schema.List, Required: true, Elem: &schema.Field{Kind: schema.String}},
		{Name: "evaluation_criteria", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
	},
}

var behavioralQuestionSchema = &schema.Schema{
	Name: "behavioral_question",
	Fields: []schema.Field{
		{Name: "text", Kind: schema.String, Required: true},
		{Name: "difficulty", Kind: schema.String, Default: "medium"},
		{Name: "score", Kind: schema.Int, Required: true, Default: 15, Clamp: &schema.Range{Min: 1, Max: 30}},
		{Name: "context", Kind: schema.String},
		{Name: "evaluation_points", Kind: schema.List, Required: true, Elem: &schema.Field{Kind: schema.String}},
		{Name: "passion_indicators", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
	},
}

// evaluationSchema is built per call so the score clamp can track the
// question's maximum.
func evaluationSchema(maxScore int) *schema.Schema {
	return &schema.Schema{
		Name: "answer_evaluation",
		Fields: []schema.Field{
			{Name: "score", Kind: schema.Int, Required: true, Clamp: &schema.Range{Min: 0, Max: float64(maxScore)}},
			{Name: "feedback", Kind: schema.String, Default: "No feedback available."},
			{Name: "technical_accuracy", Kind: schema.Int, Clamp: &schema.Range{Min: 0, Max: 100}},
			{Name: "completeness", Kind: schema.Int, Clamp: &schema.Range{Min: 0, Max: 100}},
		},
	}
}
