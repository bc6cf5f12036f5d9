package clients

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/federation"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// StudentClient talks to the student store over HTTP.
type StudentClient struct {
	*storeClient
}

var _ federation.StudentDirectory = (*StudentClient)(nil)

// NewStudentClient creates a student store client for the given base URL
func NewStudentClient(baseURL string, timeout time.Duration) *StudentClient {
	return &StudentClient{storeClient: newStoreClient("student", baseURL, timeout)}
}

func (c *StudentClient) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodGet, "/students/"+strconv.FormatInt(id, 10), nil, nil, &student); err != nil {
		return nil, c.mapError(err, apperrors.ErrStudentNotFound, nil)
	}
	return &student, nil
}

func (c *StudentClient) GetStudentsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Student, error) {
	if len(ids) == 0 {
		return map[int64]*models.Student{}, nil
	}

	var students []*models.Student
	req := &dto.BatchStudentsRequest{IDs: ids}
	if err := c.do(ctx, http.MethodPost, "/students/batch", nil, req, &students); err != nil {
		return nil, c.mapError(err, nil, nil)
	}

	out := make(map[int64]*models.Student, len(students))
	for _, student := range students {
		out[student.ID] = student
	}
	return out, nil
}

func (c *StudentClient) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodPost, "/students", nil, req, &student); err != nil {
		return nil, c.mapError(err, nil, apperrors.ErrEmailAlreadyExists)
	}
	return &student, nil
}

func (c *StudentClient) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodPut, "/students/"+strconv.FormatInt(id, 10), nil, req, &student); err != nil {
		return nil, c.mapError(err, apperrors.ErrStudentNotFound, apperrors.ErrEmailAlreadyExists)
	}
	return &student, nil
}

func (c *StudentClient) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodDelete, "/students/"+strconv.FormatInt(id, 10), nil, nil, &student); err != nil {
		return nil, c.mapError(err, apperrors.ErrStudentNotFound, nil)
	}
	return &student, nil
}
