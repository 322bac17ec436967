// Package pgtest opens the integration-test database.
package pgtest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/dwikikusuma/ja-fashion/pkg/postgres"
)

// Open connects to TEST_DATABASE_URL and applies migrations. The test is
// skipped when the variable is unset.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := postgres.Open(postgres.Config{DSN: dsn})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := postgres.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
