package repositories

import (
	"context"
	"errors"

	"github.com/yigit/mentorhub/internal/app/models"
)

// Shared repository errors
var (
	// ErrNotFound is returned when a record does not exist (or its id is malformed)
	ErrNotFound = errors.New("record not found")
	// ErrMentorNotFound is returned when a referenced mentor does not exist
	ErrMentorNotFound = ErrNotFound
	// ErrStudentNotFound is returned when a student does not exist
	ErrStudentNotFound = ErrNotFound
)

// MentorRepository persists mentors
type MentorRepository interface {
	// Create inserts the mentor and sets its generated ID
	Create(ctx context.Context, mentor *models.Mentor) error
	// FindByID returns ErrMentorNotFound for unknown or malformed ids
	FindByID(ctx context.Context, id string) (*models.Mentor, error)
}

// StudentRepository persists students and their mentor references
type StudentRepository interface {
	// Create inserts the student and sets its generated ID; mentor refs are stored as given
	Create(ctx context.Context, student *models.Student) error
	// FindByID returns ErrStudentNotFound for unknown or malformed ids
	FindByID(ctx context.Context, id string) (*models.Student, error)
	// AssignUnassigned sets currentMentor on every listed student whose currentMentor
	// is null, in one atomic filtered update, and returns the matched count.
	AssignUnassigned(ctx context.Context, mentorID string, studentIDs []string) (int64, error)
	// SwapMentor moves expected into previousMentor and sets currentMentor to newMentorID,
	// only if currentMentor still equals expected. It reports whether the swap happened.
	SwapMentor(ctx context.Context, studentID string, expected *string, newMentorID string) (bool, error)
	// FindByCurrentMentor lists the students currently assigned to mentorID
	FindByCurrentMentor(ctx context.Context, mentorID string) ([]*models.Student, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Mentors  MentorRepository
	Students StudentRepository
}
