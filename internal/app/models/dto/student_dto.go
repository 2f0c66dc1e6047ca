package dto

import "github.com/yigit/mentorhub/internal/app/models"

// CreateStudentRequest represents the body of POST /create-student
type CreateStudentRequest struct {
	Name   string `json:"name" binding:"required,notblank" example:"Bob"`
	Course string `json:"course" binding:"required,notblank" example:"CS"`
}

// StudentResponse wraps a student with a status message
type StudentResponse struct {
	Message string          `json:"message" example:"Student created successfully"`
	Student *models.Student `json:"student"`
}

// ChangeMentorRequest represents the body of POST /change-mentor
type ChangeMentorRequest struct {
	StudentID   string `json:"studentId" binding:"required,notblank"`
	NewMentorID string `json:"newMentorId" binding:"required,notblank"`
}

// PreviousMentorResponse carries the resolved previous mentor
type PreviousMentorResponse struct {
	StudentID      string         `json:"studentId"`
	PreviousMentor *models.Mentor `json:"previousMentor"`
}

// NoPreviousMentorResponse is returned when the student has no previous mentor
type NoPreviousMentorResponse struct {
	Message   string `json:"message" example:"No previous mentor assigned"`
	StudentID string `json:"studentId"`
}
