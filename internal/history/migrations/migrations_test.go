package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdcon/internal/history/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, 1, all[0].Version)
	require.Equal(t, "history", all[0].Description)
}

func TestRunIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	require.NoError(t, migrations.Run(ctx, db))
	v1, err := migrations.CurrentVersion(ctx, db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(ctx, db))
	v2, err := migrations.CurrentVersion(ctx, db)
	require.NoError(t, err)

	require.Equal(t, v1, v2)

	pending, err := migrations.Pending(ctx, db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRunCreatesHistoryTable(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	pending, err := migrations.Pending(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, pending)

	require.NoError(t, migrations.Run(ctx, db))

	_, err = db.ExecContext(ctx,
		"INSERT INTO history (line, handled, created_at) VALUES (?, ?, ?)",
		"help", 1, "2026-01-01T00:00:00Z")
	require.NoError(t, err)
}
