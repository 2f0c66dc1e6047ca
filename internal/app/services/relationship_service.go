package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/app/repositories"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
	"github.com/yigit/mentorhub/internal/pkg/logger"
	"github.com/yigit/mentorhub/internal/pkg/metrics"
)

// DefaultMaxChangeAttempts bounds the compare-and-set retries of ChangeMentor
const DefaultMaxChangeAttempts = 5

// NoPreviousMentorMessage is reported when a student has no resolvable previous mentor
const NoPreviousMentorMessage = "No previous mentor assigned"

// AssignResult is the outcome of a bulk assignment
type AssignResult struct {
	MentorID     string
	StudentIDs   []string
	MatchedCount int64
}

// MentorStudents lists the students currently assigned to a mentor
type MentorStudents struct {
	MentorID string
	Students []*models.StudentWithMentor
}

// PreviousMentorResult carries either the resolved previous mentor or a message
type PreviousMentorResult struct {
	StudentID      string
	PreviousMentor *models.Mentor
	Message        string
}

// RelationshipService defines the mentor/student relationship operations
type RelationshipService interface {
	CreateMentor(ctx context.Context, name, expertise string) (*models.Mentor, error)
	CreateStudent(ctx context.Context, name, course string) (*models.Student, error)
	AssignStudentsToMentor(ctx context.Context, mentorID string, studentIDs []string) (*AssignResult, error)
	ChangeMentor(ctx context.Context, studentID, newMentorID string) (*models.Student, error)
	ListStudentsForMentor(ctx context.Context, mentorID string) (*MentorStudents, error)
	GetPreviousMentor(ctx context.Context, studentID string) (*PreviousMentorResult, error)
}

// relationshipServiceImpl implements the RelationshipService interface
type relationshipServiceImpl struct {
	mentors     repositories.MentorRepository
	students    repositories.StudentRepository
	metrics     *metrics.Metrics
	maxAttempts int
}

// Option customises the relationship service
type Option func(*relationshipServiceImpl)

// WithMetrics records domain counters on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *relationshipServiceImpl) {
		s.metrics = m
	}
}

// WithMaxChangeAttempts overrides DefaultMaxChangeAttempts; values below 1 are ignored
func WithMaxChangeAttempts(n int) Option {
	return func(s *relationshipServiceImpl) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewRelationshipService creates a new relationship service instance
func NewRelationshipService(repos *repositories.Repositories, opts ...Option) RelationshipService {
	s := &relationshipServiceImpl{
		mentors:     repos.Mentors,
		students:    repos.Students,
		maxAttempts: DefaultMaxChangeAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func requireField(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field)
	}
	return value, nil
}

// CreateMentor creates a new mentor
func (s *relationshipServiceImpl) CreateMentor(ctx context.Context, name, expertise string) (*models.Mentor, error) {
	name, err := requireField("name", name)
	if err != nil {
		return nil, err
	}
	expertise, err = requireField("expertise", expertise)
	if err != nil {
		return nil, err
	}

	mentor := &models.Mentor{Name: name, Expertise: expertise}
	if err := s.mentors.Create(ctx, mentor); err != nil {
		return nil, fmt.Errorf("error creating mentor: %w", err)
	}

	logger.Info().Str("mentorID", mentor.ID).Msg("Mentor created")
	return mentor, nil
}

// CreateStudent creates a new, unassigned student
func (s *relationshipServiceImpl) CreateStudent(ctx context.Context, name, course string) (*models.Student, error) {
	name, err := requireField("name", name)
	if err != nil {
		return nil, err
	}
	course, err = requireField("course", course)
	if err != nil {
		return nil, err
	}

	student := &models.Student{Name: name, Course: course}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("studentID", student.ID).Msg("Student created")
	return student, nil
}

// findMentor maps the repository not-found error to the API error
func (s *relationshipServiceImpl) findMentor(ctx context.Context, id string) (*models.Mentor, error) {
	mentor, err := s.mentors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}
	return mentor, nil
}

func (s *relationshipServiceImpl) findStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// AssignStudentsToMentor assigns the listed students that have no mentor yet
func (s *relationshipServiceImpl) AssignStudentsToMentor(ctx context.Context, mentorID string, studentIDs []string) (*AssignResult, error) {
	if len(studentIDs) == 0 {
		return nil, fmt.Errorf("%w: studentIds cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.findMentor(ctx, mentorID); err != nil {
		return nil, err
	}

	matched, err := s.students.AssignUnassigned(ctx, mentorID, studentIDs)
	if err != nil {
		// the mentor can only vanish here if the store enforces the reference
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error assigning students: %w", err)
	}
	if matched == 0 {
		return nil, apperrors.ErrNoEligibleStudents
	}

	s.metrics.RecordAssigned(matched)
	logger.Info().
		Str("mentorID", mentorID).
		Int("requested", len(studentIDs)).
		Int64("matched", matched).
		Msg("Students assigned to mentor")

	return &AssignResult{
		MentorID:     mentorID,
		StudentIDs:   studentIDs,
		MatchedCount: matched,
	}, nil
}

// ChangeMentor moves the student's current mentor into previousMentor and
// assigns newMentorID. The write only lands if currentMentor still holds the
// value just read; otherwise the student is re-read and the swap retried.
func (s *relationshipServiceImpl) ChangeMentor(ctx context.Context, studentID, newMentorID string) (*models.Student, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	mentor, err := s.findMentor(ctx, newMentorID)
	if err != nil {
		return nil, err
	}
	// stores may normalize ids, so write and echo the stored form
	newMentorID = mentor.ID

	for attempt := 1; ; attempt++ {
		expected := student.CurrentMentorID

		swapped, err := s.students.SwapMentor(ctx, student.ID, expected, newMentorID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrMentorNotFound
			}
			return nil, fmt.Errorf("error changing mentor: %w", err)
		}
		if swapped {
			student.PreviousMentorID = expected
			student.CurrentMentorID = models.StringPtr(newMentorID)
			s.metrics.RecordMentorChange()
			logger.Info().
				Str("studentID", student.ID).
				Str("newMentorID", newMentorID).
				Int("attempt", attempt).
				Msg("Mentor changed")
			return student, nil
		}

		s.metrics.RecordMentorChangeConflict()
		if attempt >= s.maxAttempts {
			logger.Warn().Str("studentID", student.ID).Int("attempts", attempt).Msg("Giving up mentor change after repeated conflicts")
			return nil, apperrors.ErrMentorChangeConflict
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		student, err = s.findStudent(ctx, studentID)
		if err != nil {
			return nil, err
		}
	}
}

// ListStudentsForMentor lists the students currently assigned to a mentor.
// An unknown mentor yields an empty list.
func (s *relationshipServiceImpl) ListStudentsForMentor(ctx context.Context, mentorID string) (*MentorStudents, error) {
	students, err := s.students.FindByCurrentMentor(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	result := &MentorStudents{
		MentorID: mentorID,
		Students: make([]*models.StudentWithMentor, 0, len(students)),
	}
	if len(students) == 0 {
		return result, nil
	}

	// every row shares the same current mentor, so resolve it once
	mentor, err := s.mentors.FindByID(ctx, mentorID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("error resolving mentor: %w", err)
		}
		mentor = nil
	}

	for _, st := range students {
		result.Students = append(result.Students, models.NewStudentWithMentor(st, mentor))
	}
	return result, nil
}

// GetPreviousMentor resolves the student's previous mentor
func (s *relationshipServiceImpl) GetPreviousMentor(ctx context.Context, studentID string) (*PreviousMentorResult, error) {
	student, err := s.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := &PreviousMentorResult{StudentID: student.ID}
	if student.PreviousMentorID == nil {
		result.Message = NoPreviousMentorMessage
		return result, nil
	}

	mentor, err := s.mentors.FindByID(ctx, *student.PreviousMentorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			result.Message = NoPreviousMentorMessage
			return result, nil
		}
		return nil, fmt.Errorf("error resolving previous mentor: %w", err)
	}

	result.PreviousMentor = mentor
	return result, nil
}
