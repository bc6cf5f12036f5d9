package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentColumns = `id, student_id, course_id, status, created_at, updated_at`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.Status,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create inserts a new enrollment. The unique (student_id, course_id)
// constraint makes duplicate enrolls a conflict instead of a second row.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.Status,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintEnrollmentPair) {
			return apperrors.ErrEnrollmentAlreadyExists
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

func (r *EnrollmentRepository) listWhere(ctx context.Context, clause string, arg interface{}) ([]*models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE ` + clause + ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByStudentID retrieves all enrollments for a student
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.listWhere(ctx, `student_id = $1`, studentID)
}

// GetByCourseID retrieves all enrollments for a course
func (r *EnrollmentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.listWhere(ctx, `course_id = $1`, courseID)
}

// UpdateStatus moves an enrollment to a new status
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error) {
	query := `
		UPDATE enrollments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + enrollmentColumns

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error updating enrollment status: %w", err)
	}

	return enrollment, nil
}
