package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

func newGradeFixture(t *testing.T) (GradeService, EnrollmentService, *models.Enrollment) {
	t.Helper()

	enrollmentRepo := newFakeEnrollmentRepo()
	gradeRepo := newFakeGradeRepo()

	enrollmentSvc := NewEnrollmentService(enrollmentRepo)
	gradeSvc := NewGradeService(gradeRepo, enrollmentRepo)

	enrollment, err := enrollmentSvc.Enroll(context.Background(), 3, 7)
	require.NoError(t, err)

	return gradeSvc, enrollmentSvc, enrollment
}

func TestCreateGradeFreezesEnrollmentIDs(t *testing.T) {
	gradeSvc, _, enrollment := newGradeFixture(t)

	grade, err := gradeSvc.CreateGrade(context.Background(), enrollment.ID, "A")
	require.NoError(t, err)

	assert.Equal(t, enrollment.ID, grade.EnrollmentID)
	assert.Equal(t, int64(3), grade.StudentID)
	assert.Equal(t, int64(7), grade.CourseID)
	assert.Equal(t, "A", grade.Grade)
}

func TestCreateGradeTwiceReturnsAlreadyExists(t *testing.T) {
	gradeSvc, _, enrollment := newGradeFixture(t)
	ctx := context.Background()

	_, err := gradeSvc.CreateGrade(ctx, enrollment.ID, "A")
	require.NoError(t, err)

	_, err = gradeSvc.CreateGrade(ctx, enrollment.ID, "B")
	assert.ErrorIs(t, err, apperrors.ErrGradeAlreadyExists)

	// The first grade is untouched by the rejected second create
	stored, err := gradeSvc.GetGradeByEnrollment(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Grade)
}

func TestCreateGradeUnknownEnrollment(t *testing.T) {
	gradeSvc, _, _ := newGradeFixture(t)

	_, err := gradeSvc.CreateGrade(context.Background(), 999, "A")
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestCreateGradeRejectsInvalidValue(t *testing.T) {
	gradeSvc, _, enrollment := newGradeFixture(t)

	_, err := gradeSvc.CreateGrade(context.Background(), enrollment.ID, "Z")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGradeKeepsFrozenIDsAfterEnrollmentChange(t *testing.T) {
	gradeSvc, enrollmentSvc, enrollment := newGradeFixture(t)
	ctx := context.Background()

	grade, err := gradeSvc.CreateGrade(ctx, enrollment.ID, "B+")
	require.NoError(t, err)

	_, err = enrollmentSvc.UpdateStatus(ctx, enrollment.ID, models.EnrollmentStatusCompleted)
	require.NoError(t, err)

	stored, err := gradeSvc.GetGradeByEnrollment(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, grade.StudentID, stored.StudentID)
	assert.Equal(t, grade.CourseID, stored.CourseID)
}

func TestUpdateGradeIsIdempotent(t *testing.T) {
	gradeSvc, _, enrollment := newGradeFixture(t)
	ctx := context.Background()

	grade, err := gradeSvc.CreateGrade(ctx, enrollment.ID, "C")
	require.NoError(t, err)

	first, err := gradeSvc.UpdateGrade(ctx, grade.ID, "A-")
	require.NoError(t, err)

	second, err := gradeSvc.UpdateGrade(ctx, grade.ID, "A-")
	require.NoError(t, err)

	assert.Equal(t, first.Grade, second.Grade)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.EnrollmentID, second.EnrollmentID)
}

func TestDeleteGradeIndependentOfEnrollment(t *testing.T) {
	gradeSvc, enrollmentSvc, enrollment := newGradeFixture(t)
	ctx := context.Background()

	grade, err := gradeSvc.CreateGrade(ctx, enrollment.ID, "D")
	require.NoError(t, err)

	deleted, err := gradeSvc.DeleteGrade(ctx, grade.ID)
	require.NoError(t, err)
	assert.Equal(t, grade.ID, deleted.ID)

	_, err = gradeSvc.GetGradeByEnrollment(ctx, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrGradeNotFound)

	// Enrollment survives the grade deletion
	stored, err := enrollmentSvc.GetEnrollmentByID(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, stored.ID)
}

func TestGetGradeByStudentAndCourse(t *testing.T) {
	gradeSvc, _, enrollment := newGradeFixture(t)
	ctx := context.Background()

	_, err := gradeSvc.CreateGrade(ctx, enrollment.ID, "B")
	require.NoError(t, err)

	grade, err := gradeSvc.GetGradeByStudentAndCourse(ctx, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, "B", grade.Grade)

	_, err = gradeSvc.GetGradeByStudentAndCourse(ctx, 3, 8)
	assert.ErrorIs(t, err, apperrors.ErrGradeNotFound)
}
