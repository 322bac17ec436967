package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreOrderedAndNonEmpty(t *testing.T) {
	migs, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, migs)

	for i, m := range migs {
		assert.NotEmpty(t, strings.TrimSpace(m.SQL), m.Version)
		if i > 0 {
			assert.Less(t, migs[i-1].Version, m.Version)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "carts_one_active_per_owner"}

	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert cart: %w", dup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	// Text alone is not enough, a message can mention the words without the code.
	assert.False(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "x" (SQLSTATE 23505)`)))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	_, err := Open(Config{})
	require.Error(t, err)
}
