package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsForeignKeyViolation(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "students_current_mentor_id_fkey"})

	assert.True(t, IsForeignKeyViolation(fk, ""))
	assert.True(t, IsForeignKeyViolation(fk, "students_current_mentor_id_fkey"))
	assert.False(t, IsForeignKeyViolation(fk, "other_fkey"))
	assert.False(t, IsForeignKeyViolation(errors.New("plain"), ""))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "schema_migrations_pkey"}

	assert.True(t, IsDuplicateConstraintError(dup, "schema_migrations_pkey"))
	assert.False(t, IsDuplicateConstraintError(dup, "mentors_pkey"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503"}, "schema_migrations_pkey"))
}
