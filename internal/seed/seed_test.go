package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/repositories"
	"github.com/yigit/mentorhub/internal/app/services"
)

func TestCreateDemoData(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRelationshipService(repositories.NewMemoryRepositories(repositories.NewMemoryStore()))

	data, err := CreateDemoData(ctx, svc, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, data.MentorIDs, 2)
	assert.Len(t, data.StudentIDs, 3)
	assert.Equal(t, int64(3), data.Assigned)

	listed, err := svc.ListStudentsForMentor(ctx, data.MentorIDs[0])
	require.NoError(t, err)
	assert.Len(t, listed.Students, 3)
}
