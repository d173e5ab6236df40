package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/history"
	"github.com/footprint-tools/cmdcon/internal/history/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", history.MemoryPath)
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(context.Background(), db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a history store keeping limit entries.
func NewTestStore(t *testing.T, limit int) *history.Store {
	t.Helper()
	return history.NewWithDB(NewTestDB(t), limit, nil)
}

// SeedHistory appends lines to h, failing the test on error.
func SeedHistory(t *testing.T, h domain.HistoryStore, lines ...string) {
	t.Helper()

	for _, line := range lines {
		err := h.Append(line, true)
		require.NoError(t, err, "failed to seed line: %q", line)
	}
}
