package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Conform coerces a decoded JSON value into a schema-conforming instance.
// Coercion is applied where unambiguous (numeric strings to numbers, numbers
// to strings); clamp ranges and percent scaling are applied to numeric
// fields. A field that is missing or cannot be coerced is substituted with
// its default rather than failing the whole record; the dotted paths of all
// substituted fields are returned alongside the value.
func Conform(value map[string]any, s *Schema) (map[string]any, []string) {
	var defaulted []string
	out := conformObject(value, s, "", &defaulted)
	return out, defaulted
}

func conformObject(value map[string]any, s *Schema, prefix string, defaulted *[]string) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		raw, present := value[f.Name]
		if !present || raw == nil {
			out[f.Name] = fieldDefault(f)
			*defaulted = append(*defaulted, path)
			continue
		}

		v, ok := conformField(f, raw, path, defaulted)
		if !ok {
			out[f.Name] = fieldDefault(f)
			*defaulted = append(*defaulted, path)
			continue
		}
		out[f.Name] = v
	}
	return out
}

func conformField(f Field, raw any, path string, defaulted *[]string) (any, bool) {
	switch f.Kind {
	case String:
		return coerceString(raw)
	case Int:
		n, ok := coerceFloat(raw)
		if !ok {
			return nil, false
		}
		if f.Clamp != nil {
			n = f.Clamp.Clamp(n)
		}
		return int(n), true
	case Float:
		n, ok := coerceFloat(raw)
		if !ok {
			return nil, false
		}
		if f.Percent {
			if n > 1.0 {
				n = n / 100.0
			}
			return fractionRange.Clamp(n), true
		}
		if f.Clamp != nil {
			n = f.Clamp.Clamp(n)
		}
		return n, true
	case Bool:
		return coerceBool(raw)
	case List:
		items, ok := raw.([]any)
		if !ok {
			return nil, false
		}
		out := make([]any, 0, len(items))
		for i, item := range items {
			if f.Elem == nil {
				out = append(out, item)
				continue
			}
			v, ok := conformField(*f.Elem, item, fmt.Sprintf("%s[%d]", path, i), defaulted)
			if !ok {
				// A bad element is dropped rather than defaulting the
				// whole list.
				continue
			}
			out = append(out, v)
		}
		return out, true
	case Map:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, false
		}
		out := make(map[string]any, len(m))
		for k, item := range m {
			if f.Elem == nil {
				out[k] = item
				continue
			}
			v, ok := conformField(*f.Elem, item, path+"."+k, defaulted)
			if !ok {
				continue
			}
			out[k] = v
		}
		return out, true
	case Object:
		m, ok := raw.(map[string]any)
		if !ok || f.Nested == nil {
			return nil, false
		}
		return conformObject(m, f.Nested, path, defaulted), true
	default:
		return nil, false
	}
}

func coerceString(raw any) (any, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return nil, false
	}
}

func coerceFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func coerceBool(raw any) (any, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(v)))
		if err != nil {
			return nil, false
		}
		return b, true
	default:
		return nil, false
	}
}
