package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names the stores rely on for AlreadyExists mapping. Uniqueness is
// enforced in the database, not in application code, so concurrent duplicate
// creates are decided by Postgres.
const (
	ConstraintStudentEmail    = "students_email_key"
	ConstraintEnrollmentPair  = "enrollments_student_id_course_id_key"
	ConstraintGradeEnrollment = "grades_enrollment_id_key"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation (23505) for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation checks if the error is any PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
