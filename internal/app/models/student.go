package models

import "time"

// Student defines the student model based on the 'students' table owned by
// the student store. Other stores reference it only by opaque numeric id.
type Student struct {
	ID             int64      `json:"id" db:"id" example:"1"`
	Name           string     `json:"name" db:"name" example:"Siti Rahayu"`
	Email          string     `json:"email" db:"email" example:"siti@campus.ac.id"`
	Major          string     `json:"major" db:"major" example:"Informatics"`
	EnrollmentYear int        `json:"enrollmentYear" db:"enrollment_year" example:"2024"`
	BirthDate      *time.Time `json:"birthDate,omitempty" db:"birth_date"` // Nullable
	PasswordHash   string     `json:"-" db:"password_hash"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}
