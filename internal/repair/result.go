// Package repair recovers schema-conforming values from untrusted LLM output
// text. The input is assumed to intend JSON but may be wrapped in prose or
// markdown fences, or be syntactically invalid. Extraction applies a fixed
// sequence of bounded, deterministic repairs and records which ones fired.
package repair

// Kind tags a single repair heuristic that was applied during extraction.
// Kinds exist for observability and testing; extraction callers never branch
// on them.
type Kind string

// Repair kinds, in the order the pipeline can apply them.
const (
	StrippedCodeFence        Kind = "stripped_code_fence"
	ExtractedBraceSpan       Kind = "extracted_brace_span"
	QuotedBareKeys           Kind = "quoted_bare_keys"
	NormalizedQuotes         Kind = "normalized_quotes"
	RemovedTrailingComma     Kind = "removed_trailing_comma"
	InsertedMissingComma     Kind = "inserted_missing_comma"
	ClosedUnterminatedString Kind = "closed_unterminated_string"
	PartialFieldSalvage      Kind = "partial_field_salvage"
	UsedSchemaDefault        Kind = "used_schema_default"
)

// Status classifies the outcome of an extraction.
type Status int

// Extraction outcomes.
const (
	// Success means the stripped text parsed strictly and conformed to the
	// schema without substitutions.
	Success Status = iota
	// Recovered means the value required repairs or default substitutions.
	// Required fields are always populated, from the text or from schema
	// defaults, never omitted.
	Recovered
	// Failure means no parseable structure was found anywhere in the text.
	Failure
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Recovered:
		return "recovered"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the outcome of an extraction attempt. Extraction failure is a
// first-class value, not an error: callers inspect Status and fall back to
// schema defaults on Failure.
type Result struct {
	Status Status

	// Value is the schema-conforming value. Nil only when Status is Failure.
	Value map[string]any

	// AppliedRepairs lists the repairs that fired, in application order.
	// Empty when the stripped text parsed strictly on the first attempt.
	AppliedRepairs []Kind

	// DefaultedFields holds the dotted paths of fields filled from schema
	// defaults rather than the response text.
	DefaultedFields []string

	// Reason describes why extraction failed. Set only on Failure.
	Reason string
}

// Repaired reports whether a specific repair kind fired.
func (r *Result) Repaired(k Kind) bool {
	for _, applied := range r.AppliedRepairs {
		if applied == k {
			return true
		}
	}
	return false
}
