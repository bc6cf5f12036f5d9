package services

import (
	"context"
	"time"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the constraint behavior of the pgx
// repositories: uniqueness conflicts surface the same sentinel errors.

type fakeStudentRepo struct {
	nextID   int64
	students map[int64]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, students: make(map[int64]*models.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, existing := range r.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = r.nextID
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	r.nextID++
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for id := int64(1); id < r.nextID; id++ {
		if student, ok := r.students[id]; ok {
			copied := *student
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) GetByIDs(_ context.Context, ids []int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, id := range ids {
		if student, ok := r.students[id]; ok {
			copied := *student
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	student.UpdatedAt = time.Now()
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	delete(r.students, id)
	return student, nil
}

type fakeCourseRepo struct {
	nextID  int64
	courses map[int64]*models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{nextID: 1, courses: make(map[int64]*models.Course)}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = r.nextID
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	r.nextID++
	copied := *course
	r.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (r *fakeCourseRepo) GetByTitle(_ context.Context, title string) (*models.Course, error) {
	for _, course := range r.courses {
		if course.Title == title {
			copied := *course
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for id := int64(1); id < r.nextID; id++ {
		if course, ok := r.courses[id]; ok {
			copied := *course
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	course.UpdatedAt = time.Now()
	copied := *course
	r.courses[course.ID] = &copied
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return course, nil
}

type fakeEnrollmentRepo struct {
	nextID      int64
	enrollments map[int64]*models.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{nextID: 1, enrollments: make(map[int64]*models.Enrollment)}
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	for _, existing := range r.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrEnrollmentAlreadyExists
		}
	}
	enrollment.ID = r.nextID
	enrollment.CreatedAt = time.Now()
	enrollment.UpdatedAt = enrollment.CreatedAt
	r.nextID++
	copied := *enrollment
	r.enrollments[enrollment.ID] = &copied
	return nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	copied := *enrollment
	return &copied, nil
}

func (r *fakeEnrollmentRepo) GetByStudentID(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for id := int64(1); id < r.nextID; id++ {
		if enrollment, ok := r.enrollments[id]; ok && enrollment.StudentID == studentID {
			copied := *enrollment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for id := int64(1); id < r.nextID; id++ {
		if enrollment, ok := r.enrollments[id]; ok && enrollment.CourseID == courseID {
			copied := *enrollment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) UpdateStatus(_ context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error) {
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	enrollment.Status = status
	enrollment.UpdatedAt = time.Now()
	copied := *enrollment
	return &copied, nil
}

type fakeGradeRepo struct {
	nextID int64
	grades map[int64]*models.Grade
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{nextID: 1, grades: make(map[int64]*models.Grade)}
}

func (r *fakeGradeRepo) Create(_ context.Context, grade *models.Grade) error {
	for _, existing := range r.grades {
		if existing.EnrollmentID == grade.EnrollmentID {
			return apperrors.ErrGradeAlreadyExists
		}
	}
	grade.ID = r.nextID
	grade.CreatedAt = time.Now()
	grade.UpdatedAt = grade.CreatedAt
	r.nextID++
	copied := *grade
	r.grades[grade.ID] = &copied
	return nil
}

func (r *fakeGradeRepo) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	grade, ok := r.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	copied := *grade
	return &copied, nil
}

func (r *fakeGradeRepo) GetByEnrollmentID(_ context.Context, enrollmentID int64) (*models.Grade, error) {
	for _, grade := range r.grades {
		if grade.EnrollmentID == enrollmentID {
			copied := *grade
			return &copied, nil
		}
	}
	return nil, apperrors.ErrGradeNotFound
}

func (r *fakeGradeRepo) GetByStudentAndCourse(_ context.Context, studentID, courseID int64) (*models.Grade, error) {
	for _, grade := range r.grades {
		if grade.StudentID == studentID && grade.CourseID == courseID {
			copied := *grade
			return &copied, nil
		}
	}
	return nil, apperrors.ErrGradeNotFound
}

func (r *fakeGradeRepo) GetAll(_ context.Context) ([]*models.Grade, error) {
	var out []*models.Grade
	for id := int64(1); id < r.nextID; id++ {
		if grade, ok := r.grades[id]; ok {
			copied := *grade
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeGradeRepo) UpdateValue(_ context.Context, id int64, value string) (*models.Grade, error) {
	grade, ok := r.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	grade.Grade = value
	grade.UpdatedAt = time.Now()
	copied := *grade
	return &copied, nil
}

func (r *fakeGradeRepo) Delete(_ context.Context, id int64) (*models.Grade, error) {
	grade, ok := r.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	delete(r.grades, id)
	return grade, nil
}
