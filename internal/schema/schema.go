// Package schema provides declarative shape contracts for structured values
// recovered from LLM output. A Schema describes the fields a response must
// contain, the defaults used when a field cannot be recovered, and the
// numeric constraints (clamp ranges, percent scaling) applied to values.
package schema

// Kind identifies the type of a field's value.
type Kind int

// Field kinds supported by the schema tree.
const (
	String Kind = iota
	Int
	Float
	Bool
	List
	Map
	Object
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case List:
		return "list"
	case Map:
		return "map"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Range is an inclusive numeric clamp range. Out-of-range values are clamped
// to the nearest bound, never rejected.
type Range struct {
	Min float64
	Max float64
}

// Clamp returns v constrained to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Field describes a single named field in a schema.
type Field struct {
	Name string
	Kind Kind

	// Required is descriptive only. Conform backfills every missing or
	// uncoercible field from its default, required or not, so that results
	// are always structurally complete; Required documents which fields the
	// prompt contract obliges the model to produce.
	Required bool

	// Default is used when the field cannot be recovered from a response.
	// A nil Default falls back to the kind's zero value.
	Default any

	// Elem describes the element type for List and Map fields.
	Elem *Field

	// Nested is the schema for Object fields.
	Nested *Schema

	// Clamp constrains numeric values when set.
	Clamp *Range

	// Percent marks a field whose wire value is a 0-100 percentage stored
	// as a 0.0-1.0 fraction. Values above 1.0 are divided by 100 and the
	// result is clamped to [0.0, 1.0].
	Percent bool
}

// Schema is an ordered set of named fields describing an expected value.
type Schema struct {
	Name   string
	Fields []Field
}

// FieldByName returns the field with the given name, or nil.
func (s *Schema) FieldByName(name string) *Field {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// LeafPath identifies a scalar field reachable from the schema root by
// descending through Object fields only. List and Map fields are not
// addressable this way.
type LeafPath struct {
	Path  []string
	Field Field
}

// LeafScalars returns every scalar leaf field in the schema, in declaration
// order. Used to build per-field salvage patterns.
func (s *Schema) LeafScalars() []LeafPath {
	var leaves []LeafPath
	collectLeaves(s, nil, &leaves)
	return leaves
}

func collectLeaves(s *Schema, prefix []string, out *[]LeafPath) {
	for _, f := range s.Fields {
		switch f.Kind {
		case String, Int, Float, Bool:
			path := make([]string, 0, len(prefix)+1)
			path = append(path, prefix...)
			path = append(path, f.Name)
			*out = append(*out, LeafPath{Path: path, Field: f})
		case Object:
			if f.Nested != nil {
				child := make([]string, 0, len(prefix)+1)
				child = append(child, prefix...)
				child = append(child, f.Name)
				collectLeaves(f.Nested, child, out)
			}
		}
	}
}
