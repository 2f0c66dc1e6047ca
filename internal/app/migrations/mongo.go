package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the secondary indexes the students collection is queried by.
// CreateMany is idempotent for identical index specs.
func EnsureMongoIndexes(ctx context.Context, database *mongo.Database, lgr zerolog.Logger) error {
	students := database.Collection("students")

	names, err := students.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "currentMentor", Value: 1}},
			Options: options.Index().SetName("idx_students_current_mentor"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create students indexes: %w", err)
	}

	lgr.Info().Strs("indexes", names).Msg("Mongo indexes ensured")
	return nil
}
