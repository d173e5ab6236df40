package logs

import (
	"regexp"

	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

// Entry is one parsed log line.
type Entry struct {
	Raw       string `json:"-"`
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

// entryRegex matches lines like:
//
//	[2026-01-29 10:30:45] INFO: interpreter: run "game start"
//
// The component is the optional lowercase word written by log.Component.
var entryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s?(?:([a-z][a-z0-9_-]*):\s)?(.*)$`)

func parseEntry(raw string) Entry {
	m := entryRegex.FindStringSubmatch(raw)
	if m == nil {
		return Entry{Raw: raw, Message: raw}
	}
	return Entry{
		Raw:       raw,
		Timestamp: m[1],
		Level:     m[2],
		Component: m[3],
		Message:   m[4],
	}
}

// passes reports whether e is at or above min. Lines without a level always
// pass.
func (e Entry) passes(min log.Level) bool {
	if e.Level == "" {
		return true
	}
	return log.ParseLevel(e.Level) >= min
}

// colorize styles a raw line by its level.
func colorize(e Entry) string {
	switch e.Level {
	case "ERROR":
		return style.Error(e.Raw)
	case "WARN":
		return style.Warning(e.Raw)
	case "INFO":
		return style.Info(e.Raw)
	case "DEBUG":
		return style.Muted(e.Raw)
	}
	return e.Raw
}
