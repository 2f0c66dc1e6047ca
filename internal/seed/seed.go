package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appServices "github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

// DemoData reports the ids created by CreateDemoData
type DemoData struct {
	MentorIDs  []string
	StudentIDs []string
	Assigned   int64
}

var demoMentors = []struct{ name, expertise string }{
	{"Alice", "ML"},
	{"Carl", "NLP"},
}

var demoStudents = []struct{ name, course string }{
	{"Bob", "CS"},
	{"Dana", "Math"},
	{"Eve", "Physics"},
}

// CreateDemoData creates a small set of mentors and students and assigns every
// student to the first mentor. Errors are collected so one failure does not
// stop the rest.
func CreateDemoData(ctx context.Context, svc appServices.RelationshipService, lgr zerolog.Logger) (*DemoData, error) {
	lgr.Info().Msg("Creating demo mentors and students...")

	data := &DemoData{}
	var finalErr error

	for _, m := range demoMentors {
		mentor, err := svc.CreateMentor(ctx, m.name, m.expertise)
		if err != nil {
			lgr.Error().Err(err).Str("name", m.name).Msg("Error creating demo mentor")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		data.MentorIDs = append(data.MentorIDs, mentor.ID)
	}

	for _, s := range demoStudents {
		student, err := svc.CreateStudent(ctx, s.name, s.course)
		if err != nil {
			lgr.Error().Err(err).Str("name", s.name).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		data.StudentIDs = append(data.StudentIDs, student.ID)
	}

	if len(data.MentorIDs) > 0 && len(data.StudentIDs) > 0 {
		result, err := svc.AssignStudentsToMentor(ctx, data.MentorIDs[0], data.StudentIDs)
		switch {
		case err == nil:
			data.Assigned = result.MatchedCount
		case errors.Is(err, apperrors.ErrNoEligibleStudents):
			lgr.Warn().Msg("Demo students were already assigned")
		default:
			lgr.Error().Err(err).Msg("Error assigning demo students")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().
		Int("mentors", len(data.MentorIDs)).
		Int("students", len(data.StudentIDs)).
		Int64("assigned", data.Assigned).
		Msg("Demo data created")

	return data, finalErr
}
