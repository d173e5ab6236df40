// Package log is a small leveled logger that writes timestamped lines to a
// file or any io.Writer. Console components log through domain.Logger so a
// NopLogger can stand in when logging is disabled.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/cmdcon/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled lines and is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	minLevel Level
	enabled  bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init sets up the global logger on logPath. Only the first call has effect.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(logPath, minLevel)
		if err == nil {
			defaultLoggerMu.Lock()
			defaultLogger = l
			defaultLoggerMu.Unlock()
		}
	})
	return err
}

// New creates a logger appending to logPath. The file and its directory are
// created owner-only.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Tighten an existing file before opening it
	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := NewWriter(file, minLevel)
	l.closer = file
	return l, nil
}

// NewWriter creates a logger on an arbitrary writer. Close does not close w.
func NewWriter(w io.Writer, minLevel Level) *Logger {
	return &Logger{
		out:      w,
		minLevel: minLevel,
		enabled:  true,
	}
}

// Close closes the underlying file, if the logger owns one.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closer.Close()
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// SetLevel changes the minimum level written.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s: %s\n", timestamp, level.String(), strings.TrimRight(message, "\n"))

	if _, err := io.WriteString(l.out, line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Writer returns an io.Writer that logs each write at level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", string(p))
	return len(p), nil
}

// Component returns a logger that prefixes every message with name.
func Component(parent domain.Logger, name string) domain.Logger {
	if parent == nil {
		return NopLogger{}
	}
	return componentLogger{parent: parent, prefix: name + ": "}
}

type componentLogger struct {
	parent domain.Logger
	prefix string
}

func (c componentLogger) Debug(format string, args ...any) { c.parent.Debug(c.prefix+format, args...) }
func (c componentLogger) Info(format string, args ...any)  { c.parent.Info(c.prefix+format, args...) }
func (c componentLogger) Warn(format string, args ...any)  { c.parent.Warn(c.prefix+format, args...) }
func (c componentLogger) Error(format string, args ...any) { c.parent.Error(c.prefix+format, args...) }
func (c componentLogger) Close() error                     { return nil }

// Global logger helpers

func Debug(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Debug(format, args...)
	}
}

func Info(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Info(format, args...)
	}
}

func Warn(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Warn(format, args...)
	}
}

func Error(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Error(format, args...)
	}
}

// Close closes the global logger.
func Close() error {
	if l := GetLogger(); l != nil {
		return l.Close()
	}
	return nil
}

// GetLogger returns the global logger, or nil before Init.
func GetLogger() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Default returns the global logger as a domain.Logger, or a NopLogger
// before Init.
func Default() domain.Logger {
	if l := GetLogger(); l != nil {
		return l
	}
	return NopLogger{}
}

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
	_ domain.Logger = componentLogger{}
)
