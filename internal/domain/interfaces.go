package domain

import (
	"time"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// HistoryEntry is one line the interpreter accepted.
type HistoryEntry struct {
	ID        int64
	Line      string
	Handled   bool
	Timestamp time.Time
}

// HistoryStore keeps previously entered command lines.
type HistoryStore interface {
	// Append records a line. Consecutive duplicates may be collapsed.
	Append(line string, handled bool) error

	// Recent returns up to limit entries, oldest first.
	Recent(limit int) ([]HistoryEntry, error)

	// Clear removes every entry.
	Clear() error

	// Close releases the underlying storage.
	Close() error
}

// Styler renders output roles. Implementations return text unchanged when
// styling is off.
type Styler interface {
	Enabled() bool

	// Warning styles failure feedback.
	Warning(text string) string

	// Header styles "[Section]" lines.
	Header(text string) string

	Muted(text string) string
	Prompt(text string) string
	Hint(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config  ConfigProvider
	Logger  Logger
	History HistoryStore
	Styler  Styler
}
