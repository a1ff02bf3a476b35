package models

import "slices"

// FieldID is the identifier field present in every collection.
// It is assigned once at creation time and never edited or renumbered.
const FieldID = "id"

// Row is a single record as loaded from a collection file. All values are
// kept as strings end to end; the backing files carry no typed values
// beyond the identifier, which is parsed only where a numeric sort asks
// for it.
type Row map[string]string

// Clone returns a copy of the row that shares nothing with the original.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Schema describes one collection kind: its name (also the backing file
// basename) and the canonical field order used when persisting.
type Schema struct {
	Name   string
	Fields []string
}

// Has reports whether field is part of the canonical field set.
func (s Schema) Has(field string) bool {
	return slices.Contains(s.Fields, field)
}

// Required returns the fields a caller must supply when creating a record.
// The identifier is excluded because it is assigned by the add operation.
func (s Schema) Required() []string {
	out := make([]string, 0, len(s.Fields)-1)
	for _, f := range s.Fields {
		if f != FieldID {
			out = append(out, f)
		}
	}
	return out
}

// The two collection kinds the system manages.
var (
	Students = Schema{
		Name:   "students",
		Fields: []string{"id", "name", "sex", "age", "institution", "major"},
	}

	Courses = Schema{
		Name:   "courses",
		Fields: []string{"id", "name", "credit", "property"},
	}
)

// SchemaByName resolves a collection name to its schema.
func SchemaByName(name string) (Schema, bool) {
	switch name {
	case Students.Name:
		return Students, true
	case Courses.Name:
		return Courses, true
	}
	return Schema{}, false
}
