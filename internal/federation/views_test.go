package federation

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

type orchestratorFixture struct {
	students *fakeStudentStore
	courses  *fakeCourseStore
	ledger   *fakeLedgerStore
	orch     *Orchestrator
}

func newOrchestratorFixture() *orchestratorFixture {
	f := &orchestratorFixture{
		students: newFakeStudentStore(),
		courses:  newFakeCourseStore(),
		ledger:   newFakeLedgerStore(),
	}
	f.orch = NewOrchestrator(f.students, f.courses, f.ledger, zerolog.Nop())
	return f
}

func (f *orchestratorFixture) addStudent(t *testing.T, name, email string) *models.Student {
	t.Helper()
	student, err := f.students.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:           name,
		Email:          email,
		Major:          "Computer Science",
		EnrollmentYear: 2023,
	})
	require.NoError(t, err)
	return student
}

func (f *orchestratorFixture) addCourse(t *testing.T, title string) *models.Course {
	t.Helper()
	course, err := f.courses.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Title:      title,
		Instructor: "Dr. Wijaya",
	})
	require.NoError(t, err)
	return course
}

func (f *orchestratorFixture) enroll(t *testing.T, studentID, courseID int64) *models.Enrollment {
	t.Helper()
	enrollment, err := f.ledger.Enroll(context.Background(), studentID, courseID)
	require.NoError(t, err)
	return enrollment
}

func TestCourseRosterJoinsStudentsAndGrades(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	alice := f.addStudent(t, "Alice Tan", "alice@campus.test")
	bob := f.addStudent(t, "Bob Susanto", "bob@campus.test")
	course := f.addCourse(t, "Distributed Systems")

	aliceEnrollment := f.enroll(t, alice.ID, course.ID)
	f.enroll(t, bob.ID, course.ID)

	_, err := f.ledger.CreateGrade(ctx, aliceEnrollment.ID, "A-")
	require.NoError(t, err)

	roster, err := f.orch.CourseRoster(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)

	assert.Equal(t, alice.ID, roster[0].Student.ID)
	assert.Equal(t, "A-", roster[0].Grade)
	assert.Equal(t, bob.ID, roster[1].Student.ID)
	assert.Empty(t, roster[1].Grade, "ungraded enrollment keeps an empty grade")
}

func TestCourseRosterFiltersDanglingStudent(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	alice := f.addStudent(t, "Alice Tan", "alice@campus.test")
	bob := f.addStudent(t, "Bob Susanto", "bob@campus.test")
	course := f.addCourse(t, "Distributed Systems")

	f.enroll(t, alice.ID, course.ID)
	f.enroll(t, bob.ID, course.ID)

	_, err := f.orch.RemoveStudent(ctx, alice.ID)
	require.NoError(t, err)

	roster, err := f.orch.CourseRoster(ctx, course.ID)
	require.NoError(t, err, "a dangling reference is filtered, not surfaced")
	require.Len(t, roster, 1)
	assert.Equal(t, bob.ID, roster[0].Student.ID)
}

func TestCourseRosterEmptyCourse(t *testing.T) {
	f := newOrchestratorFixture()
	course := f.addCourse(t, "Distributed Systems")

	roster, err := f.orch.CourseRoster(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestCourseRosterAbortsOnStoreOutage(t *testing.T) {
	upstreamErr := apperrors.NewUpstreamError("student", errors.New("connection refused"))

	tests := []struct {
		name  string
		setup func(f *orchestratorFixture)
	}{
		{
			name: "student store unreachable",
			setup: func(f *orchestratorFixture) {
				f.students.failOn["GetStudentsByIDs"] = upstreamErr
			},
		},
		{
			name: "grade lookup unreachable",
			setup: func(f *orchestratorFixture) {
				f.ledger.failOn["GradeByEnrollment"] = upstreamErr
			},
		},
		{
			name: "enrollment listing unreachable",
			setup: func(f *orchestratorFixture) {
				f.ledger.failOn["ListEnrollmentsByCourse"] = upstreamErr
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrchestratorFixture()
			student := f.addStudent(t, "Alice Tan", "alice@campus.test")
			course := f.addCourse(t, "Distributed Systems")
			f.enroll(t, student.ID, course.ID)

			tt.setup(f)

			roster, err := f.orch.CourseRoster(context.Background(), course.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
			assert.Nil(t, roster, "a partial roster is never returned")
		})
	}
}

func TestCourseRosterRejectsInvalidID(t *testing.T) {
	f := newOrchestratorFixture()

	_, err := f.orch.CourseRoster(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListCoursesWithEnrollmentState(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	student := f.addStudent(t, "Alice Tan", "alice@campus.test")
	algorithms := f.addCourse(t, "Algorithms")
	databases := f.addCourse(t, "Databases")
	networks := f.addCourse(t, "Computer Networks")

	f.enroll(t, student.ID, algorithms.ID)
	f.enroll(t, student.ID, networks.ID)

	viewer := Viewer{StudentID: student.ID, Role: RoleStudent}
	view, err := f.orch.ListCoursesWithEnrollmentState(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, view, 3)

	// Catalog order is preserved by the annotation pass
	assert.Equal(t, algorithms.ID, view[0].Course.ID)
	assert.True(t, view[0].Enrolled)
	assert.Equal(t, databases.ID, view[1].Course.ID)
	assert.False(t, view[1].Enrolled)
	assert.Equal(t, networks.ID, view[2].Course.ID)
	assert.True(t, view[2].Enrolled)
}

func TestListCoursesTeacherViewerSkipsLedger(t *testing.T) {
	f := newOrchestratorFixture()

	f.addCourse(t, "Algorithms")
	// Ledger failure must not matter to a teacher viewer; no per-viewer
	// membership is resolved for them
	f.ledger.failOn["ListEnrollmentsByStudent"] = apperrors.NewUpstreamError("enrollment", errors.New("down"))

	view, err := f.orch.ListCoursesWithEnrollmentState(context.Background(), Viewer{Role: RoleTeacher})
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.False(t, view[0].Enrolled)
}

func TestListCoursesStudentViewerLedgerOutage(t *testing.T) {
	f := newOrchestratorFixture()

	f.addCourse(t, "Algorithms")
	f.ledger.failOn["ListEnrollmentsByStudent"] = apperrors.NewUpstreamError("enrollment", errors.New("down"))

	_, err := f.orch.ListCoursesWithEnrollmentState(context.Background(), Viewer{StudentID: 1, Role: RoleStudent})
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestStudentTranscript(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	student := f.addStudent(t, "Alice Tan", "alice@campus.test")
	algorithms := f.addCourse(t, "Algorithms")
	databases := f.addCourse(t, "Databases")

	first := f.enroll(t, student.ID, algorithms.ID)
	f.enroll(t, student.ID, databases.ID)

	_, err := f.ledger.CreateGrade(ctx, first.ID, "B+")
	require.NoError(t, err)

	transcript, err := f.orch.StudentTranscript(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, transcript.Student.ID)
	require.Len(t, transcript.Entries, 2)

	assert.Equal(t, algorithms.ID, transcript.Entries[0].Course.ID)
	assert.Equal(t, "B+", transcript.Entries[0].Grade)
	assert.Equal(t, databases.ID, transcript.Entries[1].Course.ID)
	assert.Empty(t, transcript.Entries[1].Grade)
}

func TestStudentTranscriptFiltersDanglingCourse(t *testing.T) {
	f := newOrchestratorFixture()
	ctx := context.Background()

	student := f.addStudent(t, "Alice Tan", "alice@campus.test")
	algorithms := f.addCourse(t, "Algorithms")
	databases := f.addCourse(t, "Databases")

	f.enroll(t, student.ID, algorithms.ID)
	f.enroll(t, student.ID, databases.ID)

	_, err := f.orch.RemoveCourse(ctx, algorithms.ID)
	require.NoError(t, err)

	transcript, err := f.orch.StudentTranscript(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, transcript.Entries, 1)
	assert.Equal(t, databases.ID, transcript.Entries[0].Course.ID)
}

func TestStudentTranscriptStudentNotFound(t *testing.T) {
	f := newOrchestratorFixture()

	// The root lookup is a single-entity read; NotFound propagates instead
	// of being filtered
	_, err := f.orch.StudentTranscript(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentTranscriptAbortsOnCourseStoreOutage(t *testing.T) {
	f := newOrchestratorFixture()

	student := f.addStudent(t, "Alice Tan", "alice@campus.test")
	course := f.addCourse(t, "Algorithms")
	f.enroll(t, student.ID, course.ID)

	f.courses.failOn["GetCourse"] = apperrors.NewUpstreamError("course", errors.New("down"))

	transcript, err := f.orch.StudentTranscript(context.Background(), student.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.Nil(t, transcript)
}
