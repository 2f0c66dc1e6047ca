package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/logger"
)

// PostgresMentorRepository handles mentor database operations on PostgreSQL
type PostgresMentorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresMentorRepository creates a new PostgresMentorRepository
func NewPostgresMentorRepository(db *pgxpool.Pool) *PostgresMentorRepository {
	return &PostgresMentorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new mentor with a freshly generated UUID
func (r *PostgresMentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	id := uuid.NewString()

	sql, args, err := r.sb.Insert("mentors").
		Columns("id", "name", "expertise").
		Values(id, mentor.Name, mentor.Expertise).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create mentor SQL")
		return fmt.Errorf("failed to build create mentor query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create mentor query")
		return fmt.Errorf("error creating mentor: %w", err)
	}

	mentor.ID = id
	return nil
}

// FindByID retrieves a mentor by ID
func (r *PostgresMentorRepository) FindByID(ctx context.Context, id string) (*models.Mentor, error) {
	mentorID, ok := parseUUID(id)
	if !ok {
		return nil, ErrMentorNotFound
	}

	sql, args, err := r.sb.Select("id", "name", "expertise").
		From("mentors").
		Where(squirrel.Eq{"id": mentorID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get mentor by ID SQL")
		return nil, fmt.Errorf("failed to build get mentor query: %w", err)
	}

	mentor := &models.Mentor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&mentor.ID, &mentor.Name, &mentor.Expertise)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMentorNotFound
		}
		logger.Error().Err(err).Str("mentorID", id).Msg("Error scanning mentor row")
		return nil, fmt.Errorf("error getting mentor by ID: %w", err)
	}
	return mentor, nil
}
