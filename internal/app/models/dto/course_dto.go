package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=200"`
	Description *string `json:"description,omitempty"`
	Instructor  string  `json:"instructor" binding:"required"`
}

// UpdateCourseRequest represents a course edit; zero-value fields are kept
type UpdateCourseRequest struct {
	Title       string  `json:"title,omitempty" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty"`
	Instructor  string  `json:"instructor,omitempty"`
}
