package dto

// CreateEnrollmentRequest enrolls a student in a course. Both ids are foreign
// to this store and are not checked for existence; a typo'd id creates an
// orphan that read-side joins later filter out.
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
	CourseID  int64 `json:"courseId" binding:"required,gt=0"`
}

// UpdateEnrollmentStatusRequest moves an enrollment through its lifecycle
type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateGradeRequest records the single grade for an enrollment
type CreateGradeRequest struct {
	EnrollmentID int64  `json:"enrollmentId" binding:"required,gt=0"`
	Grade        string `json:"grade" binding:"required"`
}

// UpdateGradeRequest overwrites a grade value in place
type UpdateGradeRequest struct {
	Grade string `json:"grade" binding:"required"`
}

// EnrollRequest is the gateway-side enroll intent; the student id comes from
// the viewer token, never from the body.
type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required,gt=0"`
}
