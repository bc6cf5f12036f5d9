// Package seed creates demo data for local development. Each store seeds only
// the rows it owns; the enrollment seed references student and course ids
// from the other stores' seeds by convention, not by lookup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/repositories"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/auth"
)

// StudentStore inserts demo students when they do not exist yet
func StudentStore(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repo := repositories.NewStudentRepository(dbPool)

	passwordHash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	students := []*models.Student{
		{Name: "Alice Tan", Email: "alice@campus.test", Major: "Computer Science", EnrollmentYear: 2022, PasswordHash: passwordHash},
		{Name: "Bob Susanto", Email: "bob@campus.test", Major: "Mathematics", EnrollmentYear: 2023, PasswordHash: passwordHash},
		{Name: "Citra Dewi", Email: "citra@campus.test", Major: "Physics", EnrollmentYear: 2023, PasswordHash: passwordHash},
	}

	var finalErr error
	for _, student := range students {
		if err := repo.Create(ctx, student); err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("email", student.Email).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Student seed data checked")
	return finalErr
}

// CourseStore inserts demo courses when they do not exist yet
func CourseStore(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repo := repositories.NewCourseRepository(dbPool)

	courses := []*models.Course{
		{Title: "Algorithms", Instructor: "Dr. Wijaya"},
		{Title: "Databases", Instructor: "Dr. Hartono"},
		{Title: "Distributed Systems", Instructor: "Dr. Wijaya"},
	}

	var finalErr error
	for _, course := range courses {
		if _, err := repo.GetByTitle(ctx, course.Title); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrCourseNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if err := repo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Course seed data checked")
	return finalErr
}

// EnrollmentStore inserts demo enrollments. The referenced student and course
// ids assume the other stores were seeded on fresh databases.
func EnrollmentStore(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repo := repositories.NewEnrollmentRepository(dbPool)

	enrollments := []*models.Enrollment{
		{StudentID: 1, CourseID: 1, Status: models.EnrollmentStatusActive},
		{StudentID: 1, CourseID: 2, Status: models.EnrollmentStatusActive},
		{StudentID: 2, CourseID: 1, Status: models.EnrollmentStatusActive},
	}

	var finalErr error
	for _, enrollment := range enrollments {
		if err := repo.Create(ctx, enrollment); err != nil {
			if errors.Is(err, apperrors.ErrEnrollmentAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).
				Int64("studentId", enrollment.StudentID).
				Int64("courseId", enrollment.CourseID).
				Msg("Error seeding enrollment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Enrollment seed data checked")
	return finalErr
}
