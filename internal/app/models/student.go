package models

import "strconv"

// Student is the typed view over a row of the students collection.
type Student struct {
	ID          int64  `json:"id" example:"1"` // Assigned as collection size + 1 at creation
	Name        string `json:"name" example:"Ann"`
	Sex         string `json:"sex" example:"Female"`
	Age         string `json:"age" example:"20"` // Stored as text, not validated as numeric
	Institution string `json:"institution" example:"X University"`
	Major       string `json:"major" example:"CS"`
}

// StudentFromRow builds a typed student from a stored row. An identifier
// that does not parse as an integer is reported as zero; the raw value is
// still present in the row itself.
func StudentFromRow(r Row) Student {
	id, _ := strconv.ParseInt(r[FieldID], 10, 64)
	return Student{
		ID:          id,
		Name:        r["name"],
		Sex:         r["sex"],
		Age:         r["age"],
		Institution: r["institution"],
		Major:       r["major"],
	}
}

// Row converts the student back to its stored representation.
func (s Student) Row() Row {
	return Row{
		FieldID:       strconv.FormatInt(s.ID, 10),
		"name":        s.Name,
		"sex":         s.Sex,
		"age":         s.Age,
		"institution": s.Institution,
		"major":       s.Major,
	}
}
