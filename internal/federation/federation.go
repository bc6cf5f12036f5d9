// Package federation assembles coherent views over the three independently
// owned stores (student, course, enrollment/grade) and coordinates writes
// that touch identifiers from more than one of them. No shared database or
// distributed transaction exists between the stores; every cross-store id is
// a weak reference resolved lazily at read time, and the orchestrator keeps
// no state of its own between requests.
package federation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
)

// Role is the viewer's role as carried in the request-scoped identity.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// Viewer is the request-scoped identity every orchestrator call receives
// explicitly. There is no ambient session state.
type Viewer struct {
	StudentID int64
	Role      Role
}

// StudentDirectory is the orchestrator's view of the student store.
type StudentDirectory interface {
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	// GetStudentsByIDs returns the students that resolve; missing ids are
	// absent from the map, not errors.
	GetStudentsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (*models.Student, error)
}

// CourseCatalog is the orchestrator's view of the course store.
type CourseCatalog interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByTitle(ctx context.Context, title string) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentLedger is the orchestrator's view of the enrollment/grade store.
type EnrollmentLedger interface {
	ListEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	ListEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error)
	GradeByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error)
	GradeByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error)
	CreateGrade(ctx context.Context, enrollmentID int64, value string) (*models.Grade, error)
	UpdateGrade(ctx context.Context, id int64, value string) (*models.Grade, error)
	DeleteGrade(ctx context.Context, id int64) (*models.Grade, error)
}

// CourseWithEnrollment annotates a course with the viewer's enrollment state.
type CourseWithEnrollment struct {
	Course   *models.Course `json:"course"`
	Enrolled bool           `json:"enrolled"`
}

// RosterEntry is one student's row in an assembled course roster. Grade is
// empty when no grade has been recorded for the enrollment yet.
type RosterEntry struct {
	Enrollment *models.Enrollment `json:"enrollment"`
	Student    *models.Student    `json:"student"`
	Grade      string             `json:"grade,omitempty"`
}

// TranscriptEntry is one course's row in a student transcript.
type TranscriptEntry struct {
	Enrollment *models.Enrollment `json:"enrollment"`
	Course     *models.Course     `json:"course"`
	Grade      string             `json:"grade,omitempty"`
}

// Transcript is a student's assembled view across all three stores.
type Transcript struct {
	Student *models.Student   `json:"student"`
	Entries []TranscriptEntry `json:"entries"`
}

// Orchestrator coordinates the three stores. It is stateless; all join
// results are request-scoped and discarded after assembly.
type Orchestrator struct {
	students    StudentDirectory
	courses     CourseCatalog
	enrollments EnrollmentLedger
	logger      zerolog.Logger
}

// NewOrchestrator creates a new orchestrator over the three store clients
func NewOrchestrator(students StudentDirectory, courses CourseCatalog, enrollments EnrollmentLedger, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
	}
}
