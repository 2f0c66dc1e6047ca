package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	assert.ErrorIs(t, ErrMentorNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrStudentNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrNoEligibleStudents, ErrBadRequest)
	assert.ErrorIs(t, ErrMentorChangeConflict, ErrConflict)
	assert.NotErrorIs(t, ErrMentorNotFound, ErrBadRequest)

	assert.Equal(t, "Mentor not found", ErrMentorNotFound.Error())

	wrapped := fmt.Errorf("lookup failed: %w", ErrStudentNotFound)
	var custom *CustomError
	assert.True(t, errors.As(wrapped, &custom))
	assert.Equal(t, "Student not found", custom.Message)
}

func TestCustomError_FallbackMessage(t *testing.T) {
	assert.Equal(t, "conflict", NewCustomError(ErrConflict, "").Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
