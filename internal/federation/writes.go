package federation

import (
	"context"
	"fmt"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// Write-path orchestration. Every operation here is a single authoritative
// write in exactly one owning store; the orchestrator offers no multi-store
// atomicity and never propagates a write into a store that does not own the
// entity. Store errors (AlreadyExists, ValidationFailed, NotFound) are
// surfaced to the caller verbatim, with no retries.

// EnrollStudent enrolls the viewer in a course. Only the student themself can
// enroll; the student id always comes from the request-scoped viewer, never
// from the payload. The ids are not checked against the student or course
// stores first: a second lookup would not close the race anyway, so existence
// is only ever decided at read time.
func (o *Orchestrator) EnrollStudent(ctx context.Context, viewer Viewer, courseID int64) (*models.Enrollment, error) {
	if viewer.Role != RoleStudent {
		return nil, fmt.Errorf("%w: only students can enroll", apperrors.ErrPermissionDenied)
	}

	enrollment, err := o.enrollments.Enroll(ctx, viewer.StudentID, courseID)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Int64("studentId", viewer.StudentID).
		Int64("courseId", courseID).
		Int64("enrollmentId", enrollment.ID).
		Msg("Student enrolled")

	return enrollment, nil
}

// SetEnrollmentStatus moves an enrollment through its lifecycle
func (o *Orchestrator) SetEnrollmentStatus(ctx context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error) {
	return o.enrollments.UpdateEnrollmentStatus(ctx, id, status)
}

// RecordGrade records the single grade for an enrollment. The owning store
// resolves the enrollment's student and course ids once and freezes them onto
// the grade row; a second create for the same enrollment is rejected with
// AlreadyExists and must be retried as an update by the caller.
func (o *Orchestrator) RecordGrade(ctx context.Context, enrollmentID int64, value string) (*models.Grade, error) {
	grade, err := o.enrollments.CreateGrade(ctx, enrollmentID, value)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Int64("enrollmentId", enrollmentID).
		Int64("gradeId", grade.ID).
		Msg("Grade recorded")

	return grade, nil
}

// ReviseGrade overwrites a grade value in place
func (o *Orchestrator) ReviseGrade(ctx context.Context, id int64, value string) (*models.Grade, error) {
	return o.enrollments.UpdateGrade(ctx, id, value)
}

// RemoveGrade deletes a grade independently of its enrollment
func (o *Orchestrator) RemoveGrade(ctx context.Context, id int64) (*models.Grade, error) {
	return o.enrollments.DeleteGrade(ctx, id)
}

// GradeForStudentAndCourse looks up a grade through its denormalized ids
func (o *Orchestrator) GradeForStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
	return o.enrollments.GradeByStudentAndCourse(ctx, studentID, courseID)
}

// RegisterStudent creates a student in the student store
func (o *Orchestrator) RegisterStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	return o.students.CreateStudent(ctx, req)
}

// UpdateStudentProfile edits the viewer's own profile. The target id is the
// viewer's; profile edits never cross store boundaries.
func (o *Orchestrator) UpdateStudentProfile(ctx context.Context, viewer Viewer, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if viewer.Role != RoleStudent {
		return nil, fmt.Errorf("%w: only students have a profile", apperrors.ErrPermissionDenied)
	}

	return o.students.UpdateStudent(ctx, viewer.StudentID, req)
}

// RemoveStudent deletes a student from the student store. There is no
// synchronous cascade into the enrollment store: without a cross-store
// transaction a partial cascade could strand the system half-deleted, so the
// enrollment rows are left dangling and filtered out of every subsequent
// roster assembly instead.
func (o *Orchestrator) RemoveStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := o.students.DeleteStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Int64("studentId", id).
		Msg("Student deleted; enrollments referencing it will be filtered at read time")

	return student, nil
}

// AddCourse creates a course in the course store
func (o *Orchestrator) AddCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	return o.courses.CreateCourse(ctx, req)
}

// ReviseCourse edits a course in place
func (o *Orchestrator) ReviseCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	return o.courses.UpdateCourse(ctx, id, req)
}

// RemoveCourse deletes a course. Deletion proceeds even when active
// enrollments still reference the course; they dangle and are filtered at
// read time, the same policy as student deletion.
func (o *Orchestrator) RemoveCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := o.courses.DeleteCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Int64("courseId", id).
		Msg("Course deleted; enrollments referencing it will be filtered at read time")

	return course, nil
}
