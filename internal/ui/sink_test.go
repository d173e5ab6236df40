package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

func TestSink(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	style.Init(false, nil)

	var out, errOut, logBuf bytes.Buffer
	logger := log.NewWriter(&logBuf, log.LevelDebug)

	s := NewSinkTo(&out, &errOut, logger, nil)
	s.Info("value: ", 42)
	s.Warn("undefined command 'x'")
	s.Warn("second")

	require.Equal(t, "value: 42\n", out.String())
	require.Equal(t, "undefined command 'x'\nsecond\n", errOut.String())
	require.Equal(t, 2, s.Warnings())
	require.Contains(t, logBuf.String(), "WARN: output: undefined command 'x'")
	require.Contains(t, logBuf.String(), "DEBUG: output: value: 42")

	s.ResetWarnings()
	require.Zero(t, s.Warnings())
}

func TestStyleLine(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CMDCON_NO_COLOR", "")

	require.Equal(t, "[Game]", StyleLine(style.NopStyler{}, "[Game]"))
	require.Equal(t, "plain", StyleLine(style.NopStyler{}, "plain"))

	s := style.ForColors(style.Themes["default-dark"])
	require.Equal(t, s.Header("[Game]"), StyleLine(s, "[Game]"))
	require.NotEqual(t, "[Game]", StyleLine(s, "[Game]"))
	require.Equal(t, "plain", StyleLine(s, "plain"))
}

func TestSink_UsesStyler(t *testing.T) {
	var out, errOut bytes.Buffer
	s := NewSinkTo(&out, &errOut, log.NopLogger{}, tagStyler{})

	s.Info("[Audio]")
	s.Info("volume")
	s.Warn("bad value")

	require.Equal(t, "HEADER [Audio]\nvolume\n", out.String())
	require.Equal(t, "WARN bad value\n", errOut.String())
}

type tagStyler struct{ style.NopStyler }

func (tagStyler) Enabled() bool              { return true }
func (tagStyler) Header(text string) string  { return "HEADER " + text }
func (tagStyler) Warning(text string) string { return "WARN " + text }
