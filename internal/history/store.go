package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/history/migrations"
	"github.com/footprint-tools/cmdcon/internal/log"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store is a SQLite-backed HistoryStore.
type Store struct {
	db     *sql.DB
	path   string
	limit  int
	logger domain.Logger
}

// Open opens or creates the history database at path and applies pending
// migrations. A limit of zero or less uses DefaultLimit.
func Open(path string, limit int, logger domain.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps ":memory:" databases from splitting per connection
	// and serializes writers.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := NewWithDB(db, limit, logger)
	s.path = path
	s.logger.Debug("opened %s", path)
	return s, nil
}

// NewWithDB wraps an already migrated connection.
func NewWithDB(db *sql.DB, limit int, logger domain.Logger) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{db: db, limit: limit, logger: log.Component(logger, "history")}
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// setDBPermissions restricts the database and its WAL/SHM files to the owner.
func setDBPermissions(path string) {
	if path == MemoryPath {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Append records line unless it repeats the newest entry, then trims the
// table to the configured limit.
func (s *Store) Append(line string, handled bool) error {
	var last sql.NullString
	err := s.db.QueryRow("SELECT line FROM history ORDER BY id DESC LIMIT 1").Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("read last entry: %w", err)
	}
	if last.Valid && last.String == line {
		return nil
	}

	_, err = s.db.Exec(
		`INSERT INTO history (line, handled, created_at) VALUES (?, ?, ?)`,
		line,
		handled,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	return s.trim()
}

func (s *Store) trim() error {
	result, err := s.db.Exec(
		`DELETE FROM history
		 WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)`,
		s.limit,
	)
	if err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	if n, _ := result.RowsAffected(); n > 0 {
		s.logger.Debug("trimmed %d entries", n)
	}
	return nil
}

// Recent returns up to limit entries, oldest first. A limit of zero or less
// returns everything kept.
func (s *Store) Recent(limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = s.limit
	}

	rows, err := s.db.Query(`
		SELECT id, line, handled, created_at FROM (
			SELECT id, line, handled, created_at
			FROM history
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM history")
	return err
}

func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e  domain.HistoryEntry
		ts string
	)
	if err := rows.Scan(&e.ID, &e.Line, &e.Handled, &ts); err != nil {
		return domain.HistoryEntry{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	e.Timestamp = t
	return e, nil
}

var _ domain.HistoryStore = (*Store)(nil)
