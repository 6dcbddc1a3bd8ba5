package interview

import "github.com/avargas/hireflow/internal/schema"

// questionsSchema mirrors the section-questions prompt output.
var questionsSchema = &schema.Schema{
	Name: "interview_questions",
	Fields: []schema.Field{
		{Name: "questions", Kind: schema.List, Required: true, Elem: &schema.Field{Kind: schema.Object, Nested: &schema.Schema{
			Name: "interview_question",
			Fields: []schema.Field{
				{Name: "id", Kind: schema.String},
				{Name: "category", Kind: schema.String},
				{Name: "question", Kind: schema.String, Required: true},
				{Name: "expected_answer", Kind: schema.String},
				{Name: "follow_up_questions", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "difficulty", Kind: schema.Int, Default: 3, Clamp: &schema.Range{Min: 1, Max: 5}},
				{Name: "skills_tested", Kind: schema.List, Elem: &schema.Field{Kind: schema.String}},
				{Name: "rationale", Kind: schema.String},
				{Name: "score", Kind: schema.Int, Default: 10, Clamp: &schema.Range{Min: 1, Max: 100}},
			},
		}}},
	},
}
