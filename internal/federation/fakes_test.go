package federation

import (
	"context"
	"strings"
	"time"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// In-memory store fakes implementing the three client interfaces. Each fake
// can be told to fail a named operation to simulate a transport-level store
// outage.

type fakeStudentStore struct {
	nextID   int64
	students map[int64]*models.Student
	failOn   map[string]error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		nextID:   1,
		students: make(map[int64]*models.Student),
		failOn:   make(map[string]error),
	}
}

func (s *fakeStudentStore) fail(op string) error {
	if err, ok := s.failOn[op]; ok {
		return err
	}
	return nil
}

func (s *fakeStudentStore) GetStudent(_ context.Context, id int64) (*models.Student, error) {
	if err := s.fail("GetStudent"); err != nil {
		return nil, err
	}
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *fakeStudentStore) GetStudentsByIDs(_ context.Context, ids []int64) (map[int64]*models.Student, error) {
	if err := s.fail("GetStudentsByIDs"); err != nil {
		return nil, err
	}
	out := make(map[int64]*models.Student)
	for _, id := range ids {
		if student, ok := s.students[id]; ok {
			out[id] = student
		}
	}
	return out, nil
}

func (s *fakeStudentStore) CreateStudent(_ context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.fail("CreateStudent"); err != nil {
		return nil, err
	}
	student := &models.Student{
		ID:             s.nextID,
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		Major:          req.Major,
		EnrollmentYear: req.EnrollmentYear,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	s.nextID++
	s.students[student.ID] = student
	return student, nil
}

func (s *fakeStudentStore) UpdateStudent(_ context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := s.fail("UpdateStudent"); err != nil {
		return nil, err
	}
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Email != "" {
		student.Email = strings.ToLower(req.Email)
	}
	if req.Major != "" {
		student.Major = req.Major
	}
	return student, nil
}

func (s *fakeStudentStore) DeleteStudent(_ context.Context, id int64) (*models.Student, error) {
	if err := s.fail("DeleteStudent"); err != nil {
		return nil, err
	}
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return student, nil
}

type fakeCourseStore struct {
	nextID  int64
	order   []int64
	courses map[int64]*models.Course
	failOn  map[string]error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		nextID:  1,
		courses: make(map[int64]*models.Course),
		failOn:  make(map[string]error),
	}
}

func (s *fakeCourseStore) fail(op string) error {
	if err, ok := s.failOn[op]; ok {
		return err
	}
	return nil
}

func (s *fakeCourseStore) ListCourses(_ context.Context) ([]*models.Course, error) {
	if err := s.fail("ListCourses"); err != nil {
		return nil, err
	}
	out := make([]*models.Course, 0, len(s.order))
	for _, id := range s.order {
		if course, ok := s.courses[id]; ok {
			out = append(out, course)
		}
	}
	return out, nil
}

func (s *fakeCourseStore) GetCourse(_ context.Context, id int64) (*models.Course, error) {
	if err := s.fail("GetCourse"); err != nil {
		return nil, err
	}
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (s *fakeCourseStore) GetCourseByTitle(_ context.Context, title string) (*models.Course, error) {
	if err := s.fail("GetCourseByTitle"); err != nil {
		return nil, err
	}
	for _, course := range s.courses {
		if course.Title == title {
			return course, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *fakeCourseStore) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.fail("CreateCourse"); err != nil {
		return nil, err
	}
	course := &models.Course{
		ID:          s.nextID,
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.nextID++
	s.order = append(s.order, course.ID)
	s.courses[course.ID] = course
	return course, nil
}

func (s *fakeCourseStore) UpdateCourse(_ context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.fail("UpdateCourse"); err != nil {
		return nil, err
	}
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
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
	return course, nil
}

func (s *fakeCourseStore) DeleteCourse(_ context.Context, id int64) (*models.Course, error) {
	if err := s.fail("DeleteCourse"); err != nil {
		return nil, err
	}
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return course, nil
}

type fakeLedgerStore struct {
	nextEnrollmentID int64
	nextGradeID      int64
	enrollments      map[int64]*models.Enrollment
	grades           map[int64]*models.Grade
	failOn           map[string]error
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		nextEnrollmentID: 1,
		nextGradeID:      1,
		enrollments:      make(map[int64]*models.Enrollment),
		grades:           make(map[int64]*models.Grade),
		failOn:           make(map[string]error),
	}
}

func (s *fakeLedgerStore) fail(op string) error {
	if err, ok := s.failOn[op]; ok {
		return err
	}
	return nil
}

func (s *fakeLedgerStore) ListEnrollmentsByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	if err := s.fail("ListEnrollmentsByStudent"); err != nil {
		return nil, err
	}
	var out []*models.Enrollment
	for id := int64(1); id < s.nextEnrollmentID; id++ {
		if enrollment, ok := s.enrollments[id]; ok && enrollment.StudentID == studentID {
			out = append(out, enrollment)
		}
	}
	return out, nil
}

func (s *fakeLedgerStore) ListEnrollmentsByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	if err := s.fail("ListEnrollmentsByCourse"); err != nil {
		return nil, err
	}
	var out []*models.Enrollment
	for id := int64(1); id < s.nextEnrollmentID; id++ {
		if enrollment, ok := s.enrollments[id]; ok && enrollment.CourseID == courseID {
			out = append(out, enrollment)
		}
	}
	return out, nil
}

func (s *fakeLedgerStore) Enroll(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if err := s.fail("Enroll"); err != nil {
		return nil, err
	}
	for _, existing := range s.enrollments {
		if existing.StudentID == studentID && existing.CourseID == courseID {
			return nil, apperrors.ErrEnrollmentAlreadyExists
		}
	}
	enrollment := &models.Enrollment{
		ID:        s.nextEnrollmentID,
		StudentID: studentID,
		CourseID:  courseID,
		Status:    models.EnrollmentStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.nextEnrollmentID++
	s.enrollments[enrollment.ID] = enrollment
	return enrollment, nil
}

func (s *fakeLedgerStore) UpdateEnrollmentStatus(_ context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error) {
	if err := s.fail("UpdateEnrollmentStatus"); err != nil {
		return nil, err
	}
	enrollment, ok := s.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	if !models.ValidEnrollmentStatus(status) {
		return nil, apperrors.ErrInvalidEnrollmentStatus
	}
	enrollment.Status = status
	return enrollment, nil
}

func (s *fakeLedgerStore) GradeByEnrollment(_ context.Context, enrollmentID int64) (*models.Grade, error) {
	if err := s.fail("GradeByEnrollment"); err != nil {
		return nil, err
	}
	for _, grade := range s.grades {
		if grade.EnrollmentID == enrollmentID {
			return grade, nil
		}
	}
	return nil, apperrors.ErrGradeNotFound
}

func (s *fakeLedgerStore) GradeByStudentAndCourse(_ context.Context, studentID, courseID int64) (*models.Grade, error) {
	if err := s.fail("GradeByStudentAndCourse"); err != nil {
		return nil, err
	}
	for _, grade := range s.grades {
		if grade.StudentID == studentID && grade.CourseID == courseID {
			return grade, nil
		}
	}
	return nil, apperrors.ErrGradeNotFound
}

func (s *fakeLedgerStore) CreateGrade(_ context.Context, enrollmentID int64, value string) (*models.Grade, error) {
	if err := s.fail("CreateGrade"); err != nil {
		return nil, err
	}
	enrollment, ok := s.enrollments[enrollmentID]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	for _, existing := range s.grades {
		if existing.EnrollmentID == enrollmentID {
			return nil, apperrors.ErrGradeAlreadyExists
		}
	}
	// Foreign ids are frozen from the enrollment at creation time
	grade := &models.Grade{
		ID:           s.nextGradeID,
		EnrollmentID: enrollmentID,
		StudentID:    enrollment.StudentID,
		CourseID:     enrollment.CourseID,
		Grade:        value,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.nextGradeID++
	s.grades[grade.ID] = grade
	return grade, nil
}

func (s *fakeLedgerStore) UpdateGrade(_ context.Context, id int64, value string) (*models.Grade, error) {
	if err := s.fail("UpdateGrade"); err != nil {
		return nil, err
	}
	grade, ok := s.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	grade.Grade = value
	return grade, nil
}

func (s *fakeLedgerStore) DeleteGrade(_ context.Context, id int64) (*models.Grade, error) {
	if err := s.fail("DeleteGrade"); err != nil {
		return nil, err
	}
	grade, ok := s.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	delete(s.grades, id)
	return grade, nil
}
