package dto

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Major          string `json:"major" binding:"required"`
	EnrollmentYear int    `json:"enrollmentYear" binding:"required,min=1900"`
	BirthDate      string `json:"birthDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStudentRequest represents a profile edit. Zero-value fields are left
// untouched so partial edits do not clobber existing data.
type UpdateStudentRequest struct {
	Name           string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email          string `json:"email,omitempty" binding:"omitempty,email"`
	Password       string `json:"password,omitempty" binding:"omitempty,min=8"`
	Major          string `json:"major,omitempty"`
	EnrollmentYear int    `json:"enrollmentYear,omitempty" binding:"omitempty,min=1900"`
	BirthDate      string `json:"birthDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// BatchStudentsRequest asks for many students in one call. Ids that do not
// resolve are silently absent from the response.
type BatchStudentsRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}
