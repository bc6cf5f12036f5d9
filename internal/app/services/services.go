package services

import (
	"context"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
)

// Repository contracts consumed by the services. The pgx repositories satisfy
// them in production; tests substitute in-memory fakes.

// StudentRepository is the persistence surface of the student store
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (*models.Student, error)
}

// CourseRepository is the persistence surface of the course store
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByTitle(ctx context.Context, title string) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentRepository is the enrollment half of the enrollment/grade store
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error)
}

// GradeRepository is the grade half of the enrollment/grade store
type GradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*models.Grade, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error)
	GetAll(ctx context.Context) ([]*models.Grade, error)
	UpdateValue(ctx context.Context, id int64, value string) (*models.Grade, error)
	Delete(ctx context.Context, id int64) (*models.Grade, error)
}
