package models

import "time"

// Course represents a course owned by the course store.
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Distributed Systems"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	Instructor  string    `json:"instructor" db:"instructor" example:"Dr. Wijaya"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
