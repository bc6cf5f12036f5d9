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

// CourseClient talks to the course store over HTTP.
type CourseClient struct {
	*storeClient
}

var _ federation.CourseCatalog = (*CourseClient)(nil)

// NewCourseClient creates a course store client for the given base URL
func NewCourseClient(baseURL string, timeout time.Duration) *CourseClient {
	return &CourseClient{storeClient: newStoreClient("course", baseURL, timeout)}
}

func (c *CourseClient) ListCourses(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", nil, nil, &courses); err != nil {
		return nil, c.mapError(err, nil, nil)
	}
	return courses, nil
}

func (c *CourseClient) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/"+strconv.FormatInt(id, 10), nil, nil, &course); err != nil {
		return nil, c.mapError(err, apperrors.ErrCourseNotFound, nil)
	}
	return &course, nil
}

func (c *CourseClient) GetCourseByTitle(ctx context.Context, title string) (*models.Course, error) {
	var course models.Course
	query := url.Values{"title": []string{title}}
	if err := c.do(ctx, http.MethodGet, "/courses/by-title", query, nil, &course); err != nil {
		return nil, c.mapError(err, apperrors.ErrCourseNotFound, nil)
	}
	return &course, nil
}

func (c *CourseClient) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPost, "/courses", nil, req, &course); err != nil {
		return nil, c.mapError(err, nil, nil)
	}
	return &course, nil
}

func (c *CourseClient) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPut, "/courses/"+strconv.FormatInt(id, 10), nil, req, &course); err != nil {
		return nil, c.mapError(err, apperrors.ErrCourseNotFound, nil)
	}
	return &course, nil
}

func (c *CourseClient) DeleteCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodDelete, "/courses/"+strconv.FormatInt(id, 10), nil, nil, &course); err != nil {
		return nil, c.mapError(err, apperrors.ErrCourseNotFound, nil)
	}
	return &course, nil
}
