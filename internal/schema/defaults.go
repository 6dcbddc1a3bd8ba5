package schema

// Defaults returns a fully-populated instance of the schema using each
// field's declared default, recursing into nested schemas. The result is
// deterministic and always satisfies the schema's own clamp ranges.
func Defaults(s *Schema) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = fieldDefault(f)
	}
	return out
}

func fieldDefault(f Field) any {
	if f.Default != nil {
		return applyConstraints(f, f.Default)
	}

	switch f.Kind {
	case String:
		return ""
	case Int:
		if f.Clamp != nil {
			return int(f.Clamp.Clamp(0))
		}
		return 0
	case Float:
		v := 0.0
		if f.Percent {
			return v
		}
		if f.Clamp != nil {
			v = f.Clamp.Clamp(v)
		}
		return v
	case Bool:
		return false
	case List:
		return []any{}
	case Map:
		return map[string]any{}
	case Object:
		if f.Nested != nil {
			return Defaults(f.Nested)
		}
		return map[string]any{}
	default:
		return nil
	}
}

// applyConstraints clamps a declared default so that defaults can never
// violate the schema's own ranges.
func applyConstraints(f Field, v any) any {
	switch f.Kind {
	case Int:
		if n, ok := v.(int); ok && f.Clamp != nil {
			return int(f.Clamp.Clamp(float64(n)))
		}
	case Float:
		if n, ok := v.(float64); ok {
			if f.Percent {
				if n > 1.0 {
					n = n / 100.0
				}
				return fractionRange.Clamp(n)
			}
			if f.Clamp != nil {
				return f.Clamp.Clamp(n)
			}
		}
	}
	return v
}

// fractionRange is the storage range for percent fields.
var fractionRange = Range{Min: 0.0, Max: 1.0}
