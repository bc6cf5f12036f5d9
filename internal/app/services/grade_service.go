package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/validation"
)

// GradeService handles grade operations. A grade is created exactly once per
// enrollment and updated in place afterwards.
type GradeService interface {
	CreateGrade(ctx context.Context, enrollmentID int64, value string) (*models.Grade, error)
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	GetGradeByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error)
	GetGradeByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error)
	GetAllGrades(ctx context.Context) ([]*models.Grade, error)
	UpdateGrade(ctx context.Context, id int64, value string) (*models.Grade, error)
	DeleteGrade(ctx context.Context, id int64) (*models.Grade, error)
}

type gradeService struct {
	gradeRepo      GradeRepository
	enrollmentRepo EnrollmentRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo GradeRepository, enrollmentRepo EnrollmentRepository) GradeService {
	return &gradeService{
		gradeRepo:      gradeRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateGrade records the grade for an enrollment. The enrollment's student
// and course ids are resolved here, once, and frozen onto the grade row; they
// are never re-derived from the enrollment after this point.
func (s *gradeService) CreateGrade(ctx context.Context, enrollmentID int64, value string) (*models.Grade, error) {
	if enrollmentID <= 0 {
		return nil, fmt.Errorf("%w: enrollment ID must be positive", apperrors.ErrValidationFailed)
	}
	value = strings.TrimSpace(value)
	if !validation.IsValidGrade(value) {
		return nil, fmt.Errorf("%w: %q is not an accepted grade", apperrors.ErrValidationFailed, value)
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	grade := &models.Grade{
		EnrollmentID: enrollment.ID,
		StudentID:    enrollment.StudentID,
		CourseID:     enrollment.CourseID,
		Grade:        value,
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	return grade, nil
}

// GetGradeByID retrieves a grade by ID
func (s *gradeService) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: grade ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.gradeRepo.GetByID(ctx, id)
}

// GetGradeByEnrollment retrieves the grade for an enrollment, if any
func (s *gradeService) GetGradeByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	if enrollmentID <= 0 {
		return nil, fmt.Errorf("%w: enrollment ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.gradeRepo.GetByEnrollmentID(ctx, enrollmentID)
}

// GetGradeByStudentAndCourse retrieves a grade via its denormalized ids
func (s *gradeService) GetGradeByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
	if studentID <= 0 || courseID <= 0 {
		return nil, fmt.Errorf("%w: student and course IDs must be positive", apperrors.ErrValidationFailed)
	}

	return s.gradeRepo.GetByStudentAndCourse(ctx, studentID, courseID)
}

// GetAllGrades retrieves all grades
func (s *gradeService) GetAllGrades(ctx context.Context) ([]*models.Grade, error) {
	return s.gradeRepo.GetAll(ctx)
}

// UpdateGrade overwrites the grade value in place; repeat updates with the
// same value are idempotent
func (s *gradeService) UpdateGrade(ctx context.Context, id int64, value string) (*models.Grade, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: grade ID must be positive", apperrors.ErrValidationFailed)
	}
	value = strings.TrimSpace(value)
	if !validation.IsValidGrade(value) {
		return nil, fmt.Errorf("%w: %q is not an accepted grade", apperrors.ErrValidationFailed, value)
	}

	return s.gradeRepo.UpdateValue(ctx, id, value)
}

// DeleteGrade removes a grade independently of its enrollment
func (s *gradeService) DeleteGrade(ctx context.Context, id int64) (*models.Grade, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: grade ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.gradeRepo.Delete(ctx, id)
}
