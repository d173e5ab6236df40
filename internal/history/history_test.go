package history_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/history"
	"github.com/footprint-tools/cmdcon/internal/testutil"
)

// stores returns each HistoryStore implementation keeping limit entries.
func stores(t *testing.T, limit int) map[string]domain.HistoryStore {
	return map[string]domain.HistoryStore{
		"memory": history.NewMemory(limit),
		"sqlite": testutil.NewTestStore(t, limit),
	}
}

func TestAppendAndRecent(t *testing.T) {
	for name, h := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			testutil.SeedHistory(t, h, "help", "game/speed 3", "/stored")

			entries, err := h.Recent(2)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			require.Equal(t, "game/speed 3", entries[0].Line)
			require.Equal(t, "/stored", entries[1].Line)
			require.Less(t, entries[0].ID, entries[1].ID)
			require.True(t, entries[1].Handled)
			require.False(t, entries[1].Timestamp.IsZero())

			all, err := h.Recent(0)
			require.NoError(t, err)
			require.Len(t, all, 3)
		})
	}
}

func TestAppendCollapsesDuplicates(t *testing.T) {
	for name, h := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			testutil.SeedHistory(t, h, "a", "a", "b", "a")

			lines, err := history.Lines(h, 10)
			require.NoError(t, err)
			require.Equal(t, []string{"a", "b", "a"}, lines)
		})
	}
}

func TestAppendTrimsToLimit(t *testing.T) {
	for name, h := range stores(t, 3) {
		t.Run(name, func(t *testing.T) {
			testutil.SeedHistory(t, h, "1", "2", "3", "4", "5")

			lines, err := history.Lines(h, 0)
			require.NoError(t, err)
			require.Equal(t, []string{"3", "4", "5"}, lines)
		})
	}
}

func TestClear(t *testing.T) {
	for name, h := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			testutil.SeedHistory(t, h, "a", "b")
			require.NoError(t, h.Clear())

			entries, err := h.Recent(10)
			require.NoError(t, err)
			require.Empty(t, entries)
			require.NoError(t, h.Close())
		})
	}
}

func TestOpenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := history.Open(path, 10, nil)
	require.NoError(t, err)
	testutil.SeedHistory(t, s, "first", "second")
	require.NoError(t, s.Close())

	s, err = history.Open(path, 10, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	lines, err := history.Lines(s, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, lines)
}
