package repair

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avargas/hireflow/internal/schema"
)

// maxCommaInsertions bounds the position-directed comma repair so cyclic
// parser errors cannot loop forever.
const maxCommaInsertions = 3

// Extract converts untrusted model output into a value conforming to the
// given schema. It strips markdown fences and surrounding prose, attempts a
// strict parse, then applies syntactic repairs in a fixed order, re-parsing
// after each. When no full parse is achievable it falls back to per-field
// salvage, and only when nothing recognizable exists at all does it return a
// Failure result. Extract is deterministic and never returns an error.
func Extract(raw string, s *schema.Schema) Result {
	text, applied := stripWrapping(raw)
	if text == "" {
		return salvageOrFail(raw, s)
	}

	// Direct parse of the stripped text. Wrapping repairs are provisional:
	// they are only reported when later repairs were also needed, so a
	// fenced-but-valid response still counts as a clean success.
	if v, err := parseObject(text); err == nil {
		return conform(v, s, nil)
	}

	if fixed := quoteBareKeys(text); fixed != text {
		text = fixed
		applied = append(applied, QuotedBareKeys)
		if v, err := parseObject(text); err == nil {
			return conform(v, s, applied)
		}
	}

	if fixed := normalizeQuotes(text); fixed != text {
		text = fixed
		applied = append(applied, NormalizedQuotes)
		if v, err := parseObject(text); err == nil {
			return conform(v, s, applied)
		}
	}

	if fixed := removeTrailingCommas(text); fixed != text {
		text = fixed
		applied = append(applied, RemovedTrailingComma)
		if v, err := parseObject(text); err == nil {
			return conform(v, s, applied)
		}
	}

	for i := 0; i < maxCommaInsertions; i++ {
		fixed, ok := insertMissingComma(text)
		if !ok {
			break
		}
		text = fixed
		applied = append(applied, InsertedMissingComma)
		if v, err := parseObject(text); err == nil {
			return conform(v, s, applied)
		}
	}

	if fixed, ok := closeUnterminatedString(text); ok {
		text = fixed
		applied = append(applied, ClosedUnterminatedString)
		if v, err := parseObject(text); err == nil {
			return conform(v, s, applied)
		}
	}

	return salvageOrFail(raw, s)
}

// conform validates a parsed value against the schema and assembles the
// result. Unambiguous type coercion alone still counts as Success; any
// default substitution demotes the result to Recovered.
func conform(parsed map[string]any, s *schema.Schema, applied []Kind) Result {
	value, defaulted := schema.Conform(parsed, s)
	if len(applied) == 0 && len(defaulted) == 0 {
		return Result{Status: Success, Value: value}
	}

	repairs := applied
	if len(defaulted) > 0 {
		repairs = append(repairs, UsedSchemaDefault)
	}
	return Result{
		Status:          Recovered,
		Value:           value,
		AppliedRepairs:  repairs,
		DefaultedFields: defaulted,
	}
}

func salvageOrFail(raw string, s *schema.Schema) Result {
	salvaged := salvageFields(raw, s)
	if len(salvaged) == 0 {
		return Result{
			Status: Failure,
			Reason: "no parseable structure found",
		}
	}

	value, defaulted := schema.Conform(salvaged, s)
	return Result{
		Status:          Recovered,
		Value:           value,
		AppliedRepairs:  []Kind{PartialFieldSalvage},
		DefaultedFields: defaulted,
	}
}

// parseObject strictly parses text as a JSON object.
func parseObject(text string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %T, not an object", v)
	}
	return obj, nil
}

// stripWrapping removes markdown code fences and surrounding prose, returning
// the candidate JSON text and the wrapping repairs that were applied. An
// empty result means no brace-delimited span exists anywhere in the input.
func stripWrapping(raw string) (string, []Kind) {
	var applied []Kind
	text := strings.TrimSpace(raw)

	if stripped, ok := stripFence(text); ok {
		text = stripped
		applied = append(applied, StrippedCodeFence)
	}

	if span, ok := braceSpan(text); ok {
		if span != text {
			text = span
			applied = append(applied, ExtractedBraceSpan)
		}
	} else {
		return "", nil
	}

	return text, applied
}

// stripFence removes a leading ```json (or bare ```) fence and its closing
// fence. LLMs wrap output this way even when told not to.
func stripFence(text string) (string, bool) {
	if !strings.HasPrefix(text, "```") {
		return text, false
	}

	body := strings.TrimPrefix(text, "```")
	// Drop a language identifier on the opening fence line.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		if firstLine == "" || (len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {")) {
			body = body[idx+1:]
		}
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body), true
}

// braceSpan returns the greedy outer-brace capture: the first '{' through the
// last '}'. Reports false when no such span exists.
func braceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// isDelimiterError reports whether a syntax error is the parser expecting a
// comma between members or elements.
func isDelimiterError(err *json.SyntaxError) bool {
	msg := err.Error()
	return strings.Contains(msg, "after object key:value pair") ||
		strings.Contains(msg, "after array element")
}

// syntaxErrorAt extracts the syntax error and its byte position from a failed
// parse of text. The parser reports the offset just past the offending byte.
func syntaxErrorAt(text string) (*json.SyntaxError, int, bool) {
	_, err := parseObject(text)
	if err == nil {
		return nil, 0, false
	}
	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		return nil, 0, false
	}
	pos := int(syn.Offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}
	return syn, pos, true
}
