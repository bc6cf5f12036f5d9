package models

import "time"

// EnrollmentStatus is the state of an enrollment in its lifecycle.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// ValidEnrollmentStatus reports whether s is part of the status vocabulary.
func ValidEnrollmentStatus(s EnrollmentStatus) bool {
	switch s {
	case EnrollmentStatusActive, EnrollmentStatusCompleted, EnrollmentStatusDropped:
		return true
	}
	return false
}

// Enrollment links a student to a course. StudentID and CourseID are foreign
// ids owned by other stores and are never validated against them at write
// time; a stale id simply stops resolving during read-side joins.
// The (student_id, course_id) pair is unique, so enrolling twice is a
// conflict rather than a duplicate row.
type Enrollment struct {
	ID        int64            `json:"id" db:"id" example:"1"`
	StudentID int64            `json:"studentId" db:"student_id" example:"3"`
	CourseID  int64            `json:"courseId" db:"course_id" example:"7"`
	Status    EnrollmentStatus `json:"status" db:"status" example:"active"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`
}
