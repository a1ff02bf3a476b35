package dto

// CreateStudentRequest carries the fields for a new student record.
// Every field is required; the identifier is assigned by the server.
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required" example:"Ann"`
	Sex         string `json:"sex" binding:"required" example:"Female"`
	Age         string `json:"age" binding:"required" example:"20"`
	Institution string `json:"institution" binding:"required" example:"X University"`
	Major       string `json:"major" binding:"required" example:"CS"`
}

// Fields flattens the request into the field map the record operations take.
func (r CreateStudentRequest) Fields() map[string]string {
	return map[string]string{
		"name":        r.Name,
		"sex":         r.Sex,
		"age":         r.Age,
		"institution": r.Institution,
		"major":       r.Major,
	}
}

// CreateCourseRequest carries the fields for a new course record.
type CreateCourseRequest struct {
	Name     string `json:"name" binding:"required" example:"Algorithms"`
	Credit   string `json:"credit" binding:"required" example:"4"`
	Property string `json:"property" binding:"required" example:"Compulsory"`
}

// Fields flattens the request into the field map the record operations take.
func (r CreateCourseRequest) Fields() map[string]string {
	return map[string]string{
		"name":     r.Name,
		"credit":   r.Credit,
		"property": r.Property,
	}
}

// UpdateRecordRequest carries a partial field update for one record.
// An empty value means "keep the stored value", not "clear it".
type UpdateRecordRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// SortRequest names the field to order a collection by.
type SortRequest struct {
	Field string `json:"field" binding:"required" example:"name"`
}
