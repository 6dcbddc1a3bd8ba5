package repair

import (
	"testing"
)

func TestQuoteBareKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single bare key",
			input:    `{score: 85}`,
			expected: `{"score": 85}`,
		},
		{
			name:     "bare key after comma",
			input:    `{"a": 1, b: 2}`,
			expected: `{"a": 1, "b": 2}`,
		},
		{
			name:     "already quoted keys untouched",
			input:    `{"score": 85, "name": "Ann"}`,
			expected: `{"score": 85, "name": "Ann"}`,
		},
		{
			name:     "colon inside string value untouched",
			input:    `{"note": "ratio is 3:1"}`,
			expected: `{"note": "ratio is 3:1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteBareKeys(tt.input); got != tt.expected {
				t.Errorf("quoteBareKeys() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single-quoted strings",
			input:    `{'key': 'value'}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "apostrophe inside double-quoted span untouched",
			input:    `{"note": "the candidate's resume"}`,
			expected: `{"note": "the candidate's resume"}`,
		},
		{
			name:     "no single quotes is a no-op",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "ambiguous conversion reverts to input",
			input:    `{"a": "b}'`,
			expected: `{"a": "b}'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeQuotes(tt.input); got != tt.expected {
				t.Errorf("normalizeQuotes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRemoveTrailingCommas(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "object trailing comma",
			input:    `{"a": 1,}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "array trailing comma",
			input:    `{"a": [1, 2,]}`,
			expected: `{"a": [1, 2]}`,
		},
		{
			name:     "comma before newline and brace",
			input:    "{\"a\": 1,\n}",
			expected: "{\"a\": 1\n}",
		},
		{
			name:     "separating commas untouched",
			input:    `{"a": 1, "b": 2}`,
			expected: `{"a": 1, "b": 2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := removeTrailingCommas(tt.input); got != tt.expected {
				t.Errorf("removeTrailingCommas() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInsertMissingComma(t *testing.T) {
	input := `{"a": 1 "b": 2}`
	fixed, ok := insertMissingComma(input)
	if !ok {
		t.Fatalf("insertMissingComma() reported no delimiter error for %q", input)
	}
	if _, err := parseObject(fixed); err != nil {
		t.Errorf("insertMissingComma() produced unparseable text %q: %v", fixed, err)
	}
}

func TestInsertMissingComma_OtherErrorsDecline(t *testing.T) {
	for _, input := range []string{`{"a": }`, `{"a": 1}`, `not json`} {
		if _, ok := insertMissingComma(input); ok {
			t.Errorf("insertMissingComma() should decline input %q", input)
		}
	}
}

func TestCloseUnterminatedString(t *testing.T) {
	input := "{\"a\": \"broken\nvalue\"}"
	fixed, ok := closeUnterminatedString(input)
	if !ok {
		t.Fatalf("closeUnterminatedString() reported nothing to fix for %q", input)
	}
	if fixed == input {
		t.Errorf("closeUnterminatedString() made no change")
	}
}

func TestCountUnescapedQuotes(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{`"a" "b"`, 4},
		{`"a\"b"`, 2},
		{`no quotes`, 0},
		{`"open`, 1},
	}

	for _, tt := range tests {
		if got := countUnescapedQuotes(tt.input); got != tt.expected {
			t.Errorf("countUnescapedQuotes(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
