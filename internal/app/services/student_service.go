package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/auth"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/validation"
)

// StudentService handles student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentsByIDs(ctx context.Context, ids []int64) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (*models.Student, error)
}

type studentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

const birthDateLayout = "2006-01-02"

// CreateStudent registers a new student
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsValidName(req.Name) {
		return nil, fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, req.Email)
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Major:          strings.TrimSpace(req.Major),
		EnrollmentYear: req.EnrollmentYear,
		PasswordHash:   passwordHash,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: birth date must be formatted as %s",
				apperrors.ErrValidationFailed, birthDateLayout)
		}
		student.BirthDate = &birthDate
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudentsByIDs retrieves all students matching the given ids; missing ids
// are not an error
func (s *studentService) GetStudentsByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: student IDs must be positive", apperrors.ErrValidationFailed)
		}
	}

	return s.studentRepo.GetByIDs(ctx, ids)
}

// UpdateStudent applies a partial profile edit and returns the stored row
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		if !validation.IsValidName(req.Name) {
			return nil, fmt.Errorf("%w: name must be between %d and %d characters",
				apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
		}
		student.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		if !validation.IsValidEmail(req.Email) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, req.Email)
		}
		student.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Major != "" {
		student.Major = strings.TrimSpace(req.Major)
	}
	if req.EnrollmentYear != 0 {
		student.EnrollmentYear = req.EnrollmentYear
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: birth date must be formatted as %s",
				apperrors.ErrValidationFailed, birthDateLayout)
		}
		student.BirthDate = &birthDate
	}
	if req.Password != "" {
		if len(req.Password) < validation.PasswordMinLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters",
				apperrors.ErrValidationFailed, validation.PasswordMinLength)
		}
		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		student.PasswordHash = passwordHash
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student and returns the deleted row. Enrollments
// referencing the student are left in place in the enrollment store.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.studentRepo.Delete(ctx, id)
}
