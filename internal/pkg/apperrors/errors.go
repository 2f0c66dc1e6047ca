package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Mentor errors
var (
	ErrMentorNotFound = NewCustomError(ErrResourceNotFound, "Mentor not found")
)

// Student errors
var (
	ErrStudentNotFound = NewCustomError(ErrResourceNotFound, "Student not found")
)

// Assignment errors
var (
	// ErrNoEligibleStudents is returned when a bulk assignment matched no unassigned student
	ErrNoEligibleStudents = NewCustomError(ErrBadRequest, "No valid students available for assignment")
	// ErrMentorChangeConflict is returned when the student's mentor kept changing under us
	ErrMentorChangeConflict = NewCustomError(ErrConflict, "Student mentor was modified concurrently, please retry")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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
