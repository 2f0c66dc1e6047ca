package dto

import "github.com/yigit/mentorhub/internal/app/models"

// CreateMentorRequest represents the body of POST /create-mentor
type CreateMentorRequest struct {
	Name      string `json:"name" binding:"required,notblank" example:"Alice"`
	Expertise string `json:"expertise" binding:"required,notblank" example:"ML"`
}

// CreateMentorResponse represents a created mentor
type CreateMentorResponse struct {
	Message string         `json:"message" example:"Mentor created successfully"`
	Mentor  *models.Mentor `json:"mentor"`
}

// AssignStudentsRequest represents the body of POST /assign-students-to-mentor
type AssignStudentsRequest struct {
	MentorID   string   `json:"mentorId" binding:"required,notblank"`
	StudentIDs []string `json:"studentIds" binding:"required,min=1,dive,required"`
}

// AssignStudentsResponse reports a bulk assignment
type AssignStudentsResponse struct {
	Message      string   `json:"message" example:"Students assigned successfully"`
	MentorID     string   `json:"mentorId"`
	StudentIDs   []string `json:"studentIds"`
	MatchedCount int64    `json:"matchedCount" example:"2"`
}

// MentorStudentsResponse lists the students currently assigned to a mentor
type MentorStudentsResponse struct {
	MentorID string                      `json:"mentorId"`
	Students []*models.StudentWithMentor `json:"students"`
}
