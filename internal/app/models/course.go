package models

import "strconv"

// Course is the typed view over a row of the courses collection.
type Course struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Algorithms"`
	Credit   string `json:"credit" example:"4"` // Stored as text, not validated as numeric
	Property string `json:"property" example:"Compulsory"`
}

// CourseFromRow builds a typed course from a stored row.
func CourseFromRow(r Row) Course {
	id, _ := strconv.ParseInt(r[FieldID], 10, 64)
	return Course{
		ID:       id,
		Name:     r["name"],
		Credit:   r["credit"],
		Property: r["property"],
	}
}

// Row converts the course back to its stored representation.
func (c Course) Row() Row {
	return Row{
		FieldID:    strconv.FormatInt(c.ID, 10),
		"name":     c.Name,
		"credit":   c.Credit,
		"property": c.Property,
	}
}
