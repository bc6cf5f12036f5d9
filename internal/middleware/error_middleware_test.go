package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"grade not found", apperrors.ErrGradeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate enrollment", apperrors.ErrEnrollmentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate grade", apperrors.ErrGradeAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid status", apperrors.ErrInvalidEnrollmentStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"validation failure", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"store outage", apperrors.NewUpstreamError("student", errors.New("connection refused")), http.StatusBadGateway, dto.ErrorCodeUpstreamUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			HandleAPIError(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	// Sentinels wrapped with context still map by errors.Is
	wrapped := apperrors.NewUpstreamError("course", errors.New("dial tcp: refused"))
	HandleAPIError(ctx, wrapped)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}
