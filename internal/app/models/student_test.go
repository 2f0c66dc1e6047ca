package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_HasMentor(t *testing.T) {
	s := &Student{Name: "Bob", Course: "CS"}
	assert.False(t, s.HasMentor())

	s.CurrentMentorID = StringPtr("m1")
	assert.True(t, s.HasMentor())
}
