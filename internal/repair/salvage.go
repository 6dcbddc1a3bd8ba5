package repair

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/avargas/hireflow/internal/schema"
)

// salvageFields scans the raw text with per-field patterns for every leaf
// scalar the schema declares, returning a (possibly nested) value holding the
// fields that were found. Used only when full-document parsing is not
// achievable.
func salvageFields(raw string, s *schema.Schema) map[string]any {
	found := make(map[string]any)
	for _, leaf := range s.LeafScalars() {
		v, ok := matchLeaf(raw, leaf.Field)
		if !ok {
			continue
		}
		setPath(found, leaf.Path, v)
	}
	if len(found) == 0 {
		return nil
	}
	return found
}

func matchLeaf(raw string, f schema.Field) (any, bool) {
	pattern, ok := leafPattern(f)
	if !ok {
		return nil, false
	}
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}

	switch f.Kind {
	case schema.Int:
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, false
		}
		return n, true
	case schema.Float:
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case schema.Bool:
		return m[1] == "true", true
	case schema.String:
		var s string
		if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &s); err != nil {
			return nil, false
		}
		return s, true
	default:
		return nil, false
	}
}

// leafPattern builds the salvage regex for a scalar field, e.g. an int field
// named score yields `"score"\s*:\s*(-?\d+)`. The key quotes are optional so
// bare-key near-JSON still matches.
func leafPattern(f schema.Field) (*regexp.Regexp, bool) {
	name := regexp.QuoteMeta(f.Name)
	var value string
	switch f.Kind {
	case schema.Int:
		value = `(-?\d+)`
	case schema.Float:
		value = `(-?\d+(?:\.\d+)?)`
	case schema.Bool:
		value = `(true|false)`
	case schema.String:
		value = `"((?:[^"\\]|\\.)*)"`
	default:
		return nil, false
	}
	return regexp.MustCompile(`"?` + name + `"?\s*:\s*` + value), true
}

func setPath(m map[string]any, path []string, v any) {
	for _, key := range path[:len(path)-1] {
		child, ok := m[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			m[key] = child
		}
		m = child
	}
	m[path[len(path)-1]] = v
}
