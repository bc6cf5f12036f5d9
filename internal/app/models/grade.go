package models

import "time"

// Grade holds the single grade recorded for an enrollment. StudentID and
// CourseID are denormalized copies frozen from the enrollment at creation
// time; they are never re-synchronized afterwards, so the grade stays
// meaningful even if the enrollment row is later altered.
type Grade struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	EnrollmentID int64     `json:"enrollmentId" db:"enrollment_id" example:"1"`
	StudentID    int64     `json:"studentId" db:"student_id" example:"3"`
	CourseID     int64     `json:"courseId" db:"course_id" example:"7"`
	Grade        string    `json:"grade" db:"grade" example:"A"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
