package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error %d", 42)
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: debug message")
	require.Contains(t, content, "INFO: info message")
	require.Contains(t, content, "WARN: warning message")
	require.Contains(t, content, "ERROR: error 42")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	require.NotContains(t, buf.String(), "DEBUG")
	require.NotContains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "WARN: warning message")
	require.Contains(t, buf.String(), "ERROR: error message")

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	require.Contains(t, buf.String(), "DEBUG: now visible")
}

func TestLogger_FilePermissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	logPath := filepath.Join(logDir, "test.log")

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	logger.Info("test message")
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700)|os.ModeDir, dirInfo.Mode())
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	first, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	first.Info("first message")
	require.NoError(t, first.Close())

	second, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	second.Info("second message")
	require.NoError(t, second.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "first message")
	require.Contains(t, content, "second message")
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")

	require.Contains(t, buf.String(), "enabled message")
	require.NotContains(t, buf.String(), "disabled message")
	require.Contains(t, buf.String(), "enabled again")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{" Info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	n, err := logger.Writer(LevelInfo).Write([]byte("message from writer\n"))
	require.NoError(t, err)
	require.Equal(t, 20, n)
	require.Contains(t, buf.String(), "INFO: message from writer\n")
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(NewWriter(&buf, LevelDebug), "registry")

	logger.Debug("add %s", "game/speed")
	require.Contains(t, buf.String(), "DEBUG: registry: add game/speed")
	require.NoError(t, logger.Close())

	require.Equal(t, NopLogger{}, Component(nil, "x"))
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger
	require.NoError(t, logger.Close())
	require.NotPanics(t, func() {
		logger.SetEnabled(true)
		logger.SetLevel(LevelDebug)
		logger.Debug("test")
		logger.Error("test")
	})
}

func TestGlobalLogger(t *testing.T) {
	saved := defaultLogger
	defer func() { defaultLogger = saved }()

	defaultLogger = nil
	require.NotPanics(t, func() {
		Debug("test debug")
		Error("test error")
	})
	require.NoError(t, Close())
	require.Nil(t, GetLogger())
	require.Equal(t, NopLogger{}, Default())

	var buf bytes.Buffer
	defaultLogger = NewWriter(&buf, LevelDebug)

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	require.Same(t, defaultLogger, GetLogger())
	require.Contains(t, buf.String(), "debug message")
	require.Contains(t, buf.String(), "warn message")
}
