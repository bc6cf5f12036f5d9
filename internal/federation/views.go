package federation

import (
	"context"
	"fmt"

	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// ListCoursesWithEnrollmentState returns every course in catalog order. For a
// student viewer each course is annotated with whether the viewer is enrolled
// in it; membership is decided by a set built from a single ledger query, not
// by one ledger call per course.
func (o *Orchestrator) ListCoursesWithEnrollmentState(ctx context.Context, viewer Viewer) ([]CourseWithEnrollment, error) {
	courses, err := o.courses.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	enrolledCourseIDs := make(map[int64]struct{})
	if viewer.Role == RoleStudent {
		enrollments, err := o.enrollments.ListEnrollmentsByStudent(ctx, viewer.StudentID)
		if err != nil {
			return nil, fmt.Errorf("listing enrollments for viewer %d: %w", viewer.StudentID, err)
		}
		for _, enrollment := range enrollments {
			enrolledCourseIDs[enrollment.CourseID] = struct{}{}
		}
	}

	// Catalog order is preserved; annotation never reorders
	view := make([]CourseWithEnrollment, 0, len(courses))
	for _, course := range courses {
		_, enrolled := enrolledCourseIDs[course.ID]
		view = append(view, CourseWithEnrollment{Course: course, Enrolled: enrolled})
	}

	return view, nil
}

// CourseRoster assembles the roster for a course: every enrollment joined
// with its student and grade. An enrollment whose student no longer resolves
// is a dangling reference left behind by a student deletion; it is silently
// excluded rather than surfaced, which is the read-side compensation for the
// missing cross-store cascade. An absent grade keeps the entry with an empty
// grade. A transport failure on any store aborts the whole assembly; a
// partial roster is never returned.
func (o *Orchestrator) CourseRoster(ctx context.Context, courseID int64) ([]RosterEntry, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: course ID must be positive", apperrors.ErrValidationFailed)
	}

	enrollments, err := o.enrollments.ListEnrollmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments for course %d: %w", courseID, err)
	}

	studentIDs := make([]int64, 0, len(enrollments))
	for _, enrollment := range enrollments {
		studentIDs = append(studentIDs, enrollment.StudentID)
	}

	students, err := o.students.GetStudentsByIDs(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("resolving students for course %d: %w", courseID, err)
	}

	roster := make([]RosterEntry, 0, len(enrollments))
	for _, enrollment := range enrollments {
		student, ok := students[enrollment.StudentID]
		if !ok {
			o.logger.Debug().
				Int64("enrollmentId", enrollment.ID).
				Int64("studentId", enrollment.StudentID).
				Msg("Dropping roster entry with dangling student reference")
			continue
		}

		entry := RosterEntry{Enrollment: enrollment, Student: student}

		grade, err := o.enrollments.GradeByEnrollment(ctx, enrollment.ID)
		switch {
		case err == nil:
			entry.Grade = grade.Grade
		case apperrors.IsNotFound(err):
			// No grade recorded yet; the entry stays with an empty grade
		default:
			return nil, fmt.Errorf("resolving grade for enrollment %d: %w", enrollment.ID, err)
		}

		roster = append(roster, entry)
	}

	return roster, nil
}

// StudentTranscript assembles a student's enrollments joined with course info
// and grades. The student lookup itself is a single-entity read, so its
// NotFound propagates to the caller; dangling course references inside the
// join are filtered with the same policy CourseRoster applies to students.
func (o *Orchestrator) StudentTranscript(ctx context.Context, studentID int64) (*Transcript, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: student ID must be positive", apperrors.ErrValidationFailed)
	}

	student, err := o.students.GetStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrollments, err := o.enrollments.ListEnrollmentsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments for student %d: %w", studentID, err)
	}

	transcript := &Transcript{Student: student, Entries: make([]TranscriptEntry, 0, len(enrollments))}
	for _, enrollment := range enrollments {
		course, err := o.courses.GetCourse(ctx, enrollment.CourseID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				o.logger.Debug().
					Int64("enrollmentId", enrollment.ID).
					Int64("courseId", enrollment.CourseID).
					Msg("Dropping transcript entry with dangling course reference")
				continue
			}
			return nil, fmt.Errorf("resolving course for enrollment %d: %w", enrollment.ID, err)
		}

		entry := TranscriptEntry{Enrollment: enrollment, Course: course}

		grade, err := o.enrollments.GradeByEnrollment(ctx, enrollment.ID)
		switch {
		case err == nil:
			entry.Grade = grade.Grade
		case apperrors.IsNotFound(err):
		default:
			return nil, fmt.Errorf("resolving grade for enrollment %d: %w", enrollment.ID, err)
		}

		transcript.Entries = append(transcript.Entries, entry)
	}

	return transcript, nil
}
