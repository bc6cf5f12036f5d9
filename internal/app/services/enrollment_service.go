package services

import (
	"context"
	"fmt"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// EnrollmentService handles the enrollment state machine. It never checks the
// student or course ids against the other stores; existence is only decided
// lazily when the gateway joins.
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error)
}

type enrollmentService struct {
	enrollmentRepo EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentRepository) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
	}
}

// Enroll creates a new active enrollment for the (student, course) pair.
// Enrolling the same pair twice surfaces the store's uniqueness conflict.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    models.EnrollmentStatusActive,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: enrollment ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.enrollmentRepo.GetByID(ctx, id)
}

// GetEnrollmentsByStudent retrieves all enrollments for a student
func (s *enrollmentService) GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.enrollmentRepo.GetByStudentID(ctx, studentID)
}

// GetEnrollmentsByCourse retrieves all enrollments for a course
func (s *enrollmentService) GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.enrollmentRepo.GetByCourseID(ctx, courseID)
}

// UpdateStatus moves an enrollment through its lifecycle
func (s *enrollmentService) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: enrollment ID must be positive", apperrors.ErrValidationFailed)
	}
	if !models.ValidEnrollmentStatus(status) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidEnrollmentStatus, status)
	}

	return s.enrollmentRepo.UpdateStatus(ctx, id, status)
}
