package models

// Student defines the student model based on the 'students' collection/table.
// Mentor references are plain ids; resolving them is an explicit lookup.
type Student struct {
	ID               string  `json:"id" example:"665f1c2e9b1d4a0012345679"`
	Name             string  `json:"name" example:"Bob"`
	Course           string  `json:"course" example:"CS"`
	CurrentMentorID  *string `json:"currentMentor"`  // nil means unassigned
	PreviousMentorID *string `json:"previousMentor"` // nil means no prior mentor
}

// HasMentor reports whether the student is currently assigned
func (s *Student) HasMentor() bool {
	return s.CurrentMentorID != nil
}

// StudentWithMentor is a student whose current mentor reference has been resolved
type StudentWithMentor struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Course           string  `json:"course"`
	CurrentMentor    *Mentor `json:"currentMentor"`
	PreviousMentorID *string `json:"previousMentor"`
}

// NewStudentWithMentor pairs a student with its resolved current mentor (which may be nil)
func NewStudentWithMentor(s *Student, mentor *Mentor) *StudentWithMentor {
	return &StudentWithMentor{
		ID:               s.ID,
		Name:             s.Name,
		Course:           s.Course,
		CurrentMentor:    mentor,
		PreviousMentorID: s.PreviousMentorID,
	}
}
