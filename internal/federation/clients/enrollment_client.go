package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/federation"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// EnrollmentClient talks to the enrollment and grade store over HTTP.
type EnrollmentClient struct {
	*storeClient
}

var _ federation.EnrollmentLedger = (*EnrollmentClient)(nil)

// NewEnrollmentClient creates an enrollment store client for the given base URL
func NewEnrollmentClient(baseURL string, timeout time.Duration) *EnrollmentClient {
	return &EnrollmentClient{storeClient: newStoreClient("enrollment", baseURL, timeout)}
}

func (c *EnrollmentClient) listEnrollments(ctx context.Context, query url.Values) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	if err := c.do(ctx, http.MethodGet, "/enrollments", query, nil, &enrollments); err != nil {
		return nil, c.mapError(err, nil, nil)
	}
	return enrollments, nil
}

func (c *EnrollmentClient) ListEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return c.listEnrollments(ctx, url.Values{"studentId": []string{strconv.FormatInt(studentID, 10)}})
}

func (c *EnrollmentClient) ListEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return c.listEnrollments(ctx, url.Values{"courseId": []string{strconv.FormatInt(courseID, 10)}})
}

func (c *EnrollmentClient) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	req := &dto.CreateEnrollmentRequest{StudentID: studentID, CourseID: courseID}
	if err := c.do(ctx, http.MethodPost, "/enrollments", nil, req, &enrollment); err != nil {
		return nil, c.mapError(err, nil, apperrors.ErrEnrollmentAlreadyExists)
	}
	return &enrollment, nil
}

func (c *EnrollmentClient) UpdateEnrollmentStatus(ctx context.Context, id int64, status models.EnrollmentStatus) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	req := &dto.UpdateEnrollmentStatusRequest{Status: string(status)}
	path := "/enrollments/" + strconv.FormatInt(id, 10) + "/status"
	if err := c.do(ctx, http.MethodPut, path, nil, req, &enrollment); err != nil {
		return nil, c.mapError(err, apperrors.ErrEnrollmentNotFound, nil)
	}
	return &enrollment, nil
}

func (c *EnrollmentClient) GradeByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	var grade models.Grade
	path := "/grades/by-enrollment/" + strconv.FormatInt(enrollmentID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &grade); err != nil {
		return nil, c.mapError(err, apperrors.ErrGradeNotFound, nil)
	}
	return &grade, nil
}

func (c *EnrollmentClient) GradeByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Grade, error) {
	var grade models.Grade
	query := url.Values{
		"studentId": []string{strconv.FormatInt(studentID, 10)},
		"courseId":  []string{strconv.FormatInt(courseID, 10)},
	}
	if err := c.do(ctx, http.MethodGet, "/grades/lookup", query, nil, &grade); err != nil {
		return nil, c.mapError(err, apperrors.ErrGradeNotFound, nil)
	}
	return &grade, nil
}

func (c *EnrollmentClient) CreateGrade(ctx context.Context, enrollmentID int64, value string) (*models.Grade, error) {
	var grade models.Grade
	req := &dto.CreateGradeRequest{EnrollmentID: enrollmentID, Grade: value}
	if err := c.do(ctx, http.MethodPost, "/grades", nil, req, &grade); err != nil {
		return nil, c.mapError(err, apperrors.ErrEnrollmentNotFound, apperrors.ErrGradeAlreadyExists)
	}
	return &grade, nil
}

func (c *EnrollmentClient) UpdateGrade(ctx context.Context, id int64, value string) (*models.Grade, error) {
	var grade models.Grade
	req := &dto.UpdateGradeRequest{Grade: value}
	if err := c.do(ctx, http.MethodPut, "/grades/"+strconv.FormatInt(id, 10), nil, req, &grade); err != nil {
		return nil, c.mapError(err, apperrors.ErrGradeNotFound, nil)
	}
	return &grade, nil
}

func (c *EnrollmentClient) DeleteGrade(ctx context.Context, id int64) (*models.Grade, error) {
	var grade models.Grade
	if err := c.do(ctx, http.MethodDelete, "/grades/"+strconv.FormatInt(id, 10), nil, nil, &grade); err != nil {
		return nil, c.mapError(err, apperrors.ErrGradeNotFound, nil)
	}
	return &grade, nil
}
