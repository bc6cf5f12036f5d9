package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrBadRequest       = errors.New("bad request")

	// Identity errors
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrPermissionDenied = errors.New("permission denied")

	// Federation errors
	ErrUpstreamUnavailable = errors.New("upstream store unavailable")
)

// Student Store errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course Store errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Enrollment/Grade Store errors
var (
	ErrEnrollmentNotFound      = errors.New("enrollment not found")
	ErrEnrollmentAlreadyExists = errors.New("student is already enrolled in this course")
	ErrInvalidEnrollmentStatus = errors.New("invalid enrollment status")
	ErrGradeNotFound           = errors.New("grade not found")
	ErrGradeAlreadyExists      = errors.New("grade already exists for this enrollment, use update instead")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewUpstreamError wraps a transport-level store failure. The wrapped cause is
// kept for logs; callers only ever match against ErrUpstreamUnavailable.
func NewUpstreamError(store string, err error) error {
	return &CustomError{
		Err:     ErrUpstreamUnavailable,
		Message: store + " store unavailable",
		Details: map[string]interface{}{"cause": err.Error()},
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// IsNotFound reports whether err is any of the per-entity not-found errors.
// Join assembly uses this to distinguish a dangling reference (filter the row)
// from a transport failure (abort the whole view).
func IsNotFound(err error) bool {
	return Is(err, ErrResourceNotFound,
		ErrStudentNotFound,
		ErrCourseNotFound,
		ErrEnrollmentNotFound,
		ErrGradeNotFound,
	)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
