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

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

const gradeColumns = `id, enrollment_id, student_id, course_id, grade, created_at, updated_at`

func scanGrade(row pgx.Row) (*models.Grade, error) {
	var grade models.Grade
	err := row.Scan(
		&grade.ID,
		&grade.EnrollmentID,
		&grade.StudentID,
		&grade.CourseID,
		&grade.Grade,
		&grade.CreatedAt,
		&grade.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

// Create inserts a grade. The unique enrollment_id constraint guarantees at
// most one grade per enrollment; the existing row is never touched on
// conflict.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (enrollment_id, student_id, course_id, grade)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		grade.EnrollmentID,
		grade.StudentID,
		grade.CourseID,
		grade.Grade,
	).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ConstraintGradeEnrollment) {
			return apperrors.ErrGradeAlreadyExists
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByID retrieves a grade by ID
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE id = $1`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return grade, nil
}

// GetByEnrollmentID retrieves the grade for an enrollment, if any
func (r *GradeRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE enrollment_id = $1`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, enrollmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade by enrollment: %w", err)
	}

	return grade, nil
}

// GetByStudentAndCourse retrieves a grade via its denormalized foreign ids
func (r *GradeRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE student_id = $1 AND course_id = $2`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, studentID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade by student and course: %w", err)
	}

	return grade, nil
}

// GetAll retrieves all grades
func (r *GradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// UpdateValue overwrites the grade value in place. The denormalized
// student_id/course_id columns are deliberately not touched.
func (r *GradeRepository) UpdateValue(ctx context.Context, id int64, value string) (*models.Grade, error) {
	query := `
		UPDATE grades
		SET grade = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + gradeColumns

	grade, err := scanGrade(r.db.QueryRow(ctx, query, value, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error updating grade: %w", err)
	}

	return grade, nil
}

// Delete deletes a grade by ID and returns the deleted row
func (r *GradeRepository) Delete(ctx context.Context, id int64) (*models.Grade, error) {
	query := `DELETE FROM grades WHERE id = $1 RETURNING ` + gradeColumns

	grade, err := scanGrade(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error deleting grade: %w", err)
	}

	return grade, nil
}
