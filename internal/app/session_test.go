package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/testutil"
	"github.com/footprint-tools/cmdcon/internal/ui"
)

func newTestSession(t *testing.T, demo bool) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := NewForTesting()
	s, err := NewSession(app, ui.NewSinkTo(&out, &errOut, log.NopLogger{}, app.Styler), Options{Demo: demo})
	require.NoError(t, err)
	return s, &out, &errOut
}

func TestSession_RecordsHistory(t *testing.T) {
	s, _, _ := newTestSession(t, true)

	s.Run("game start")
	s.Run("   ")
	s.Run("bogus")
	s.Run("game volume 20")

	require.Equal(t, []string{"game start", "bogus", "game volume 20"}, s.HistoryLines(10))

	entries, err := s.App.History.Recent(10)
	require.NoError(t, err)
	require.False(t, entries[1].Handled)
	require.True(t, entries[2].Handled)
}

func TestSession_HistoryBuiltin(t *testing.T) {
	s, out, _ := newTestSession(t, false)

	s.Run("config theme")
	_, ok := s.Run("/history 5")
	require.True(t, ok)
	require.Contains(t, out.String(), "config theme")
}

func TestSession_ConfigCatalog(t *testing.T) {
	s, _, _ := newTestSession(t, false)

	got, ok := s.Run("config history_limit 50")
	require.True(t, ok)
	require.Equal(t, "50", got)

	v, _ := s.App.Config.Get("history_limit")
	require.Equal(t, "50", v)
	require.Nil(t, s.Demo)
}

func TestSession_RunScript(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		failed   int
		exitCode int
	}{
		{
			name:   "all succeed",
			script: "# setup\ngame start\n\ngame volume 10\nsay hello there\n",
		},
		{
			name:     "unknown command",
			script:   "game start\ngame begin\n",
			failed:   1,
			exitCode: 1,
		},
		{
			name:     "coercion failure wins",
			script:   "nope\ngame difficulty 5\nvec add x y\n",
			failed:   3,
			exitCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, true)

			failed, err := s.RunScript(strings.NewReader(tt.script))
			require.NoError(t, err)
			require.Equal(t, tt.failed, failed)
			require.Equal(t, tt.exitCode, s.ExitCode())
		})
	}
}

func TestSession_WarningsGoToErrOut(t *testing.T) {
	s, out, errOut := newTestSession(t, true)

	s.Run("say hello world")
	s.Run("game strat")

	require.Contains(t, out.String(), "hello, world")
	require.Contains(t, errOut.String(), "undefined command 'game strat'")
	require.Contains(t, errOut.String(), "game/start")
}

func TestSession_SQLiteHistory(t *testing.T) {
	app := NewForTesting()
	app.History = testutil.NewTestStore(t, 2)

	s, err := NewSession(app, nil, Options{})
	require.NoError(t, err)

	for _, line := range []string{"config list", "config theme", "config hint_limit"} {
		s.Run(line)
	}
	require.Equal(t, []string{"config theme", "config hint_limit"}, s.HistoryLines(0))
}

var _ domain.HistoryStore = (*recordingHistory)(nil)

type recordingHistory struct {
	domain.HistoryStore
	appended int
}

func (r *recordingHistory) Append(line string, handled bool) error {
	r.appended++
	return r.HistoryStore.Append(line, handled)
}

func TestSession_LockedLinesAreRecorded(t *testing.T) {
	app := NewForTesting()
	rec := &recordingHistory{HistoryStore: app.History}
	app.History = rec

	s, err := NewSession(app, nil, Options{Demo: true})
	require.NoError(t, err)

	s.Run("ask")
	s.Run("hard")
	require.Equal(t, 2, rec.appended)
	require.Equal(t, "hard", s.Demo.Difficulty.String())
}
