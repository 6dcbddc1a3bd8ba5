package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisSchema() *Schema {
	return &Schema{
		Name: "analysis",
		Fields: []Field{
			{Name: "overall", Kind: Float, Required: true, Percent: true},
			{Name: "summary", Kind: String, Default: "Analysis pending"},
			{Name: "confidence", Kind: Int, Default: 30, Clamp: &Range{Min: 0, Max: 100}},
			{Name: "insights", Kind: List, Elem: &Field{Kind: String}},
			{Name: "breakdown", Kind: Object, Nested: &Schema{
				Name: "breakdown",
				Fields: []Field{
					{Name: "score", Kind: Float, Percent: true},
					{Name: "details", Kind: List, Elem: &Field{Kind: String}},
				},
			}},
		},
	}
}

func TestDefaults_EveryFieldPopulated(t *testing.T) {
	d := Defaults(analysisSchema())

	assert.Equal(t, 0.0, d["overall"])
	assert.Equal(t, "Analysis pending", d["summary"])
	assert.Equal(t, 30, d["confidence"])
	assert.Equal(t, []any{}, d["insights"])

	breakdown, ok := d["breakdown"].(map[string]any)
	require.True(t, ok, "nested schema defaults recursively")
	assert.Equal(t, 0.0, breakdown["score"])
	assert.Equal(t, []any{}, breakdown["details"])
}

func TestDefaults_DeclaredDefaultIsClamped(t *testing.T) {
	s := &Schema{
		Name: "bad_default",
		Fields: []Field{
			{Name: "score", Kind: Int, Default: 150, Clamp: &Range{Min: 0, Max: 100}},
		},
	}
	d := Defaults(s)
	assert.Equal(t, 100, d["score"], "defaults must pass the schema's own validators")
}

func TestDefaults_Deterministic(t *testing.T) {
	s := analysisSchema()
	assert.Equal(t, Defaults(s), Defaults(s))
}

func TestConform_Coercions(t *testing.T) {
	s := &Schema{
		Name: "coerce",
		Fields: []Field{
			{Name: "count", Kind: Int},
			{Name: "ratio", Kind: Float},
			{Name: "label", Kind: String},
			{Name: "active", Kind: Bool},
		},
	}

	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{
			name:  "numeric strings to numbers",
			input: map[string]any{"count": "7", "ratio": "0.5", "label": "x", "active": true},
			want:  map[string]any{"count": 7, "ratio": 0.5, "label": "x", "active": true},
		},
		{
			name:  "numbers to strings",
			input: map[string]any{"count": 7.0, "ratio": 0.5, "label": 42.0, "active": "true"},
			want:  map[string]any{"count": 7, "ratio": 0.5, "label": "42", "active": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, defaulted := Conform(tt.input, s)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, defaulted)
		})
	}
}

func TestConform_BadFieldSubstitutesDefaultAndContinues(t *testing.T) {
	s := &Schema{
		Name: "partial",
		Fields: []Field{
			{Name: "score", Kind: Int, Default: 75},
			{Name: "name", Kind: String, Default: "Unknown"},
		},
	}

	got, defaulted := Conform(map[string]any{"score": []any{"not", "an", "int"}, "name": "Ann"}, s)

	assert.Equal(t, 75, got["score"], "one bad field never aborts the record")
	assert.Equal(t, "Ann", got["name"])
	assert.Equal(t, []string{"score"}, defaulted)
}

func TestConform_BackfillsOptionalAndRequiredAlike(t *testing.T) {
	s := &Schema{
		Name: "mixed",
		Fields: []Field{
			{Name: "title", Kind: String, Required: true, Default: "Untitled"},
			{Name: "notes", Kind: String, Default: "No notes"},
		},
	}

	got, defaulted := Conform(map[string]any{}, s)

	assert.Equal(t, "Untitled", got["title"])
	assert.Equal(t, "No notes", got["notes"], "optional fields are backfilled too")
	assert.ElementsMatch(t, []string{"title", "notes"}, defaulted)
}

func TestConform_PercentFields(t *testing.T) {
	s := &Schema{
		Name: "pct",
		Fields: []Field{
			{Name: "score", Kind: Float, Percent: true},
		},
	}

	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"wire percentage", 92.0, 0.92},
		{"already a fraction", 0.85, 0.85},
		{"over range", 250.0, 1.0},
		{"negative", -5.0, 0.0},
		{"numeric string", "64", 0.64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Conform(map[string]any{"score": tt.input}, s)
			assert.InDelta(t, tt.want, got["score"], 1e-9)
		})
	}
}

func TestConform_ListDropsBadElements(t *testing.T) {
	s := &Schema{
		Name: "list",
		Fields: []Field{
			{Name: "tags", Kind: List, Elem: &Field{Kind: String}},
		},
	}

	got, _ := Conform(map[string]any{"tags": []any{"go", map[string]any{}, "sql"}}, s)
	assert.Equal(t, []any{"go", "sql"}, got["tags"])
}

func TestLeafScalars(t *testing.T) {
	leaves := analysisSchema().LeafScalars()

	var paths [][]string
	for _, l := range leaves {
		paths = append(paths, l.Path)
	}
	assert.Equal(t, [][]string{
		{"overall"},
		{"summary"},
		{"confidence"},
		{"breakdown", "score"},
	}, paths)
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 0, Max: 100}
	assert.Equal(t, 100.0, r.Clamp(150))
	assert.Equal(t, 0.0, r.Clamp(-5))
	assert.Equal(t, 42.0, r.Clamp(42))
}
