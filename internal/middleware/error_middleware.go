package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Every
// controller funnels its errors through here so status codes and envelopes
// stay uniform across all four binaries.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Enrollment not found")
	case errors.Is(err, apperrors.ErrGradeNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Grade not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already registered")
	case errors.Is(err, apperrors.ErrEnrollmentAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student is already enrolled in this course")
	case errors.Is(err, apperrors.ErrGradeAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Grade already exists for this enrollment, use update instead")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrInvalidEnrollmentStatus):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid enrollment status")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid email address")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, validationMessage(err))
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		respondError(c, http.StatusBadGateway, dto.ErrorCodeUpstreamUnavailable, "Upstream store unavailable")
	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// validationMessage keeps the store's specific complaint when one was
// attached to the sentinel, since "Validation failed" alone is useless to a
// client fixing its payload.
func validationMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Validation failed"
}
