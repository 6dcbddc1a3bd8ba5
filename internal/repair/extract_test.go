package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avargas/hireflow/internal/schema"
)

func scoreNameSchema() *schema.Schema {
	return &schema.Schema{
		Name: "score_name",
		Fields: []schema.Field{
			{Name: "score", Kind: schema.Int, Required: true, Default: 75},
			{Name: "name", Kind: schema.String, Required: true, Default: "Unknown"},
		},
	}
}

func TestExtract_StrictJSON(t *testing.T) {
	result := Extract(`{"score": 85, "name": "Ann"}`, scoreNameSchema())

	require.Equal(t, Success, result.Status)
	assert.Empty(t, result.AppliedRepairs, "no repair should be applied unnecessarily")
	assert.Equal(t, 85, result.Value["score"])
	assert.Equal(t, "Ann", result.Value["name"])
}

func TestExtract_FencedBareKeyTrailingComma(t *testing.T) {
	raw := "```json\n{score: 85, \"name\": \"Ann\",}\n```"
	result := Extract(raw, scoreNameSchema())

	require.Equal(t, Recovered, result.Status)
	assert.Equal(t, []Kind{StrippedCodeFence, QuotedBareKeys, RemovedTrailingComma}, result.AppliedRepairs)
	assert.Equal(t, 85, result.Value["score"])
	assert.Equal(t, "Ann", result.Value["name"])
}

func TestExtract_FencedButValidIsSuccess(t *testing.T) {
	raw := "```json\n{\"score\": 42, \"name\": \"Bo\"}\n```"
	result := Extract(raw, scoreNameSchema())

	require.Equal(t, Success, result.Status)
	assert.Empty(t, result.AppliedRepairs)
}

func TestExtract_ProseAroundJSON(t *testing.T) {
	raw := "Here is the analysis you asked for:\n{\"score\": 70, \"name\": \"Cy\"}\nLet me know if you need more."
	result := Extract(raw, scoreNameSchema())

	require.Equal(t, Success, result.Status)
	assert.Equal(t, 70, result.Value["score"])
}

func TestExtract_PureProseIsFailure(t *testing.T) {
	result := Extract("The candidate seems strong overall.", scoreNameSchema())

	require.Equal(t, Failure, result.Status)
	assert.Equal(t, "no parseable structure found", result.Reason)
	assert.Nil(t, result.Value)
}

func TestExtract_EmptyAndWhitespaceNeverPanic(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n", "{", "}", "```", `"just a string"`} {
		result := Extract(input, scoreNameSchema())
		assert.NotNil(t, result, "input %q", input)
	}
}

func TestExtract_SingleQuotes(t *testing.T) {
	result := Extract(`{'score': 91, 'name': 'Dee'}`, scoreNameSchema())

	require.Equal(t, Recovered, result.Status)
	assert.True(t, result.Repaired(NormalizedQuotes))
	assert.Equal(t, 91, result.Value["score"])
	assert.Equal(t, "Dee", result.Value["name"])
}

func TestExtract_MissingComma(t *testing.T) {
	raw := `{"score": 60 "name": "Eve"}`
	result := Extract(raw, scoreNameSchema())

	require.Equal(t, Recovered, result.Status)
	assert.True(t, result.Repaired(InsertedMissingComma))
	assert.Equal(t, 60, result.Value["score"])
	assert.Equal(t, "Eve", result.Value["name"])
}

func TestExtract_CommaInsertionIsBounded(t *testing.T) {
	// Three fields all missing their commas: more insertion points than the
	// insertion limit allows, but the call must still terminate with a result.
	raw := `{"a": 1 "b": 2 "c": 3 "d": 4}`
	s := &schema.Schema{
		Name: "many",
		Fields: []schema.Field{
			{Name: "a", Kind: schema.Int},
			{Name: "b", Kind: schema.Int},
			{Name: "c", Kind: schema.Int},
			{Name: "d", Kind: schema.Int},
		},
	}

	result := Extract(raw, s)
	require.NotEqual(t, Failure, result.Status)
}

func TestExtract_UnterminatedString(t *testing.T) {
	raw := `{"score": 88, "name": "Fay` // cut off mid-string
	result := Extract(raw, scoreNameSchema())

	// Truncated input loses its closing brace too, so the full-parse path
	// cannot finish; salvage must still recover the score.
	require.Equal(t, Recovered, result.Status)
	assert.Equal(t, 88, result.Value["score"])
}

func TestExtract_SalvageFallback(t *testing.T) {
	raw := `The result is roughly { "score": 45, and the name was lost in bad output`
	result := Extract(raw, scoreNameSchema())

	require.Equal(t, Recovered, result.Status)
	assert.Equal(t, []Kind{PartialFieldSalvage}, result.AppliedRepairs)
	assert.Equal(t, 45, result.Value["score"])
	assert.Equal(t, "Unknown", result.Value["name"], "unfound fields fill from schema defaults")
	assert.Contains(t, result.DefaultedFields, "name")
}

func TestExtract_SalvageNestedLeaf(t *testing.T) {
	s := &schema.Schema{
		Name: "nested",
		Fields: []schema.Field{
			{Name: "decision", Kind: schema.Object, Nested: &schema.Schema{
				Name: "decision",
				Fields: []schema.Field{
					{Name: "confidence_score", Kind: schema.Int, Default: 30, Clamp: &schema.Range{Min: 0, Max: 100}},
					{Name: "status", Kind: schema.String, Default: "HOLD"},
				},
			}},
		},
	}

	raw := `partial garbage "status": "PROCEED" more garbage "confidence_score": 82 trailing`
	result := Extract(raw, s)

	require.Equal(t, Recovered, result.Status)
	decision, ok := result.Value["decision"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PROCEED", decision["status"])
	assert.Equal(t, 82, decision["confidence_score"])
}

func TestExtract_MissingFieldUsesDefault(t *testing.T) {
	result := Extract(`{"score": 50}`, scoreNameSchema())

	require.Equal(t, Recovered, result.Status)
	assert.True(t, result.Repaired(UsedSchemaDefault))
	assert.Equal(t, "Unknown", result.Value["name"])
	assert.Equal(t, []string{"name"}, result.DefaultedFields)
}

func TestExtract_CoercionAloneIsSuccess(t *testing.T) {
	result := Extract(`{"score": "85", "name": "Gil"}`, scoreNameSchema())

	require.Equal(t, Success, result.Status)
	assert.Equal(t, 85, result.Value["score"])
}

func TestExtract_PercentScaling(t *testing.T) {
	s := &schema.Schema{
		Name: "match",
		Fields: []schema.Field{
			{Name: "score", Kind: schema.Float, Percent: true},
			{Name: "name", Kind: schema.String, Default: "n/a"},
		},
	}

	result := Extract(`{"score": "92", "name": "Hal"}`, s)

	require.Equal(t, Success, result.Status)
	assert.InDelta(t, 0.92, result.Value["score"], 1e-9)
}

func TestExtract_Clamping(t *testing.T) {
	s := &schema.Schema{
		Name: "clamped",
		Fields: []schema.Field{
			{Name: "high", Kind: schema.Int, Clamp: &schema.Range{Min: 0, Max: 100}},
			{Name: "low", Kind: schema.Int, Clamp: &schema.Range{Min: 0, Max: 100}},
		},
	}

	result := Extract(`{"high": 150, "low": -5}`, s)

	require.Equal(t, Success, result.Status)
	assert.Equal(t, 100, result.Value["high"])
	assert.Equal(t, 0, result.Value["low"])
}

func TestExtract_Idempotent(t *testing.T) {
	inputs := []string{
		`{"score": 85, "name": "Ann"}`,
		"```json\n{score: 85, \"name\": \"Ann\",}\n```",
		`{'score': 1}`,
		"no structure here",
		`{"score": 60 "name": "Eve"}`,
	}

	for _, input := range inputs {
		first := Extract(input, scoreNameSchema())
		second := Extract(input, scoreNameSchema())
		assert.Equal(t, first, second, "input %q", input)
	}
}

func TestExtract_TopLevelArrayFallsThrough(t *testing.T) {
	result := Extract(`["not", "an", "object"]`, scoreNameSchema())
	assert.Equal(t, Failure, result.Status)
}
