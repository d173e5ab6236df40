// Package history keeps the command lines an interpreter session has run.
//
// Memory is the session-local store. Store persists lines to SQLite so they
// survive restarts. Both trim to a fixed number of entries and collapse
// consecutive duplicates.
package history

import (
	"sync"
	"time"

	"github.com/footprint-tools/cmdcon/internal/domain"
)

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 500

// Memory is an in-process HistoryStore.
type Memory struct {
	mu      sync.Mutex
	entries []domain.HistoryEntry
	nextID  int64
	limit   int
	now     func() time.Time
}

// NewMemory creates a store keeping at most limit entries. A limit of zero
// or less uses DefaultLimit.
func NewMemory(limit int) *Memory {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Memory{limit: limit, nextID: 1, now: time.Now}
}

func (m *Memory) Append(line string, handled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n := len(m.entries); n > 0 && m.entries[n-1].Line == line {
		return nil
	}

	m.entries = append(m.entries, domain.HistoryEntry{
		ID:        m.nextID,
		Line:      line,
		Handled:   handled,
		Timestamp: m.now(),
	})
	m.nextID++

	if over := len(m.entries) - m.limit; over > 0 {
		m.entries = append(m.entries[:0], m.entries[over:]...)
	}
	return nil
}

func (m *Memory) Recent(limit int) ([]domain.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := 0
	if limit > 0 && limit < len(m.entries) {
		start = len(m.entries) - limit
	}
	out := make([]domain.HistoryEntry, len(m.entries)-start)
	copy(out, m.entries[start:])
	return out, nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }

// Lines returns the text of up to limit recent entries, oldest first.
func Lines(h domain.HistoryStore, limit int) ([]string, error) {
	entries, err := h.Recent(limit)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	return lines, nil
}

var _ domain.HistoryStore = (*Memory)(nil)
