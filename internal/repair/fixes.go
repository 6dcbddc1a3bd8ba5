package repair

import (
	"regexp"
	"strings"
)

var (
	bareKeyPattern       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)
	trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)
)

// quoteBareKeys wraps unquoted object keys in double quotes:
// `{ key:` becomes `{ "key":`.
func quoteBareKeys(text string) string {
	return bareKeyPattern.ReplaceAllString(text, `$1"$2"$3`)
}

// normalizeQuotes converts single quotes to double quotes outside of
// already-double-quoted spans. The conversion is best-effort: when the result
// would leave the double quotes unbalanced the input is returned unchanged.
func normalizeQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inDouble := false
	escaped := false
	changed := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
			b.WriteByte(c)
		case '"':
			inDouble = !inDouble
			b.WriteByte(c)
		case '\'':
			if inDouble {
				b.WriteByte(c)
			} else {
				b.WriteByte('"')
				changed = true
			}
		default:
			b.WriteByte(c)
		}
	}

	if !changed {
		return text
	}
	out := b.String()
	if countUnescapedQuotes(out)%2 != 0 {
		// Ambiguous: converting produced unbalanced quoting.
		return text
	}
	return out
}

// removeTrailingCommas drops commas that directly precede a closing brace or
// bracket.
func removeTrailingCommas(text string) string {
	return trailingCommaPattern.ReplaceAllString(text, `$1`)
}

// insertMissingComma inserts a comma at the position of a
// delimiter-expectation parse error. Reports false when the current parse
// failure is not that class of error.
func insertMissingComma(text string) (string, bool) {
	syn, pos, ok := syntaxErrorAt(text)
	if !ok || !isDelimiterError(syn) {
		return text, false
	}
	return text[:pos] + "," + text[pos:], true
}

// closeUnterminatedString closes an unterminated string literal at the
// position the parser reports. A string cut off by end of input gets its
// closing quote appended.
func closeUnterminatedString(text string) (string, bool) {
	syn, pos, ok := syntaxErrorAt(text)
	if !ok {
		return text, false
	}

	msg := syn.Error()
	switch {
	case strings.Contains(msg, "in string literal"):
		return text[:pos] + `"` + text[pos:], true
	case strings.Contains(msg, "unexpected end of JSON input") && countUnescapedQuotes(text)%2 != 0:
		return text + `"`, true
	default:
		return text, false
	}
}

func countUnescapedQuotes(text string) int {
	count := 0
	escaped := false
	for i := 0; i < len(text); i++ {
		switch {
		case escaped:
			escaped = false
		case text[i] == '\\':
			escaped = true
		case text[i] == '"':
			count++
		}
	}
	return count
}
