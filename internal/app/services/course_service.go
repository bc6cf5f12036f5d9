package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByTitle(ctx context.Context, title string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) (*models.Course, error)
}

type courseService struct {
	courseRepo CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository) CourseService {
	return &courseService{
		courseRepo: courseRepo,
	}
}

// CreateCourse creates a new course. Fields are stored exactly as given; no
// silent coercion beyond whitespace trimming on required fields.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Instructor) == "" {
		return nil, fmt.Errorf("%w: instructor cannot be empty", apperrors.ErrValidationFailed)
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.GetByID(ctx, id)
}

// GetCourseByTitle retrieves a course by its exact title
func (s *courseService) GetCourseByTitle(ctx context.Context, title string) (*models.Course, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.GetByTitle(ctx, title)
}

// GetAllCourses retrieves all courses in store order
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// UpdateCourse applies a partial course edit
func (s *courseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Instructor != "" {
		course.Instructor = req.Instructor
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and returns the deleted row. Enrollments
// referencing the course are left dangling on purpose; the gateway filters
// them during joins.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.Delete(ctx, id)
}
