package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	MentorID string `json:"mentorId" validate:"required,notblank"`
	Ignored  string `json:"-"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	Register(v)

	assert.NoError(t, v.Struct(sample{MentorID: "m1"}))

	err := v.Struct(sample{MentorID: "   "})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "mentorId", verrs[0].Field())
	assert.Equal(t, NotBlankTag, verrs[0].Tag())
}

func TestRegisterRules_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		RegisterRules()
		RegisterRules()
	})
}
