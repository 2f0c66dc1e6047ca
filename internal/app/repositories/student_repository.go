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
	"github.com/yigit/mentorhub/internal/pkg/dberrors"
	"github.com/yigit/mentorhub/internal/pkg/logger"
)

var studentColumns = []string{"id", "name", "course", "current_mentor_id", "previous_mentor_id"}

// parseUUID canonicalises an id; malformed ids can never match a row
func parseUUID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

// PostgresStudentRepository handles student database operations on PostgreSQL
type PostgresStudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresStudentRepository creates a new PostgresStudentRepository
func NewPostgresStudentRepository(db *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.Name, &student.Course, &student.CurrentMentorID, &student.PreviousMentorID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a new student with a freshly generated UUID
func (r *PostgresStudentRepository) Create(ctx context.Context, student *models.Student) error {
	id := uuid.NewString()

	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(id, student.Name, student.Course, student.CurrentMentorID, student.PreviousMentorID).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return ErrMentorNotFound
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	return nil
}

// FindByID retrieves a student by ID
func (r *PostgresStudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	studentID, ok := parseUUID(id)
	if !ok {
		return nil, ErrStudentNotFound
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// AssignUnassigned sets current_mentor_id on the listed students that have none.
// The IS NULL guard is evaluated per row by a single UPDATE statement.
func (r *PostgresStudentRepository) AssignUnassigned(ctx context.Context, mentorID string, studentIDs []string) (int64, error) {
	mentor, ok := parseUUID(mentorID)
	if !ok {
		return 0, ErrMentorNotFound
	}

	ids := make([]string, 0, len(studentIDs))
	for _, id := range studentIDs {
		if parsed, ok := parseUUID(id); ok {
			ids = append(ids, parsed)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Update("students").
		Set("current_mentor_id", mentor).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"current_mentor_id": nil}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building assign students SQL")
		return 0, fmt.Errorf("failed to build assign students query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return 0, ErrMentorNotFound
		}
		logger.Error().Err(err).Str("mentorID", mentorID).Int("students", len(ids)).Msg("Error executing assign students query")
		return 0, fmt.Errorf("error assigning students: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// SwapMentor performs the compare-and-set mentor change
func (r *PostgresStudentRepository) SwapMentor(ctx context.Context, studentID string, expected *string, newMentorID string) (bool, error) {
	student, ok := parseUUID(studentID)
	if !ok {
		return false, ErrStudentNotFound
	}
	mentor, ok := parseUUID(newMentorID)
	if !ok {
		return false, ErrMentorNotFound
	}

	sql, args, err := r.sb.Update("students").
		Set("previous_mentor_id", expected).
		Set("current_mentor_id", mentor).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": student}).
		Where(squirrel.Expr("current_mentor_id IS NOT DISTINCT FROM ?", expected)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building swap mentor SQL")
		return false, fmt.Errorf("failed to build swap mentor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return false, ErrMentorNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing swap mentor query")
		return false, fmt.Errorf("error changing mentor: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// FindByCurrentMentor lists the students assigned to a mentor
func (r *PostgresStudentRepository) FindByCurrentMentor(ctx context.Context, mentorID string) ([]*models.Student, error) {
	students := []*models.Student{}

	mentor, ok := parseUUID(mentorID)
	if !ok {
		return students, nil
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"current_mentor_id": mentor}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building students by mentor SQL")
		return nil, fmt.Errorf("failed to build students by mentor query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("mentorID", mentorID).Msg("Error executing students by mentor query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// NewPostgresRepositories wires both postgres repositories onto one pool
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Mentors:  NewPostgresMentorRepository(db),
		Students: NewPostgresStudentRepository(db),
	}
}
