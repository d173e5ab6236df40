// Package dispatchers routes lines of operator input to registered command
// items and produces completion hints from the same registries.
//
// An Interpreter owns the session state: stored objects, the scope object,
// the locked item and the list of command sources. Registries are attached as
// sources with AddRegistry; a separate built-in registry answers lines that
// start with '/'.
package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cmdcon/internal/parser"
)

// Output receives user-facing feedback. Parts are joined the way fmt.Sprint
// joins operands.
type Output interface {
	Info(parts ...any)
	Warn(parts ...any)
}

// Context is the per-invocation state for one line.
type Context struct {
	Input string
	// Index is the byte offset of input consumed so far.
	Index int

	Out    Output
	Result any
	Stored *StoredObjects
	Types  *parser.Types
}

// Rest returns the unconsumed input.
func (c *Context) Rest() string {
	if c.Index >= len(c.Input) {
		return ""
	}
	return c.Input[c.Index:]
}

// Hint is one completion suggestion. Text is appended at the end of the
// input; Offset is minus the length of the already-typed stem it completes.
type Hint struct {
	Text    string
	Tooltip string
	Offset  int
}

// Apply returns input with the hint spliced in.
func (h Hint) Apply(input string) string {
	return input + h.Text
}

// Label returns the stem plus completion, i.e. the full name being offered.
func (h Hint) Label(input string) string {
	start := len(input) + h.Offset
	if start < 0 || start > len(input) {
		start = len(input)
	}
	return input[start:] + h.Text
}

// HintContext is the per-keystroke state for hint generation.
type HintContext struct {
	Input string
	Index int
	Types *parser.Types

	hints []Hint
}

// Add appends a hint.
func (h *HintContext) Add(text, tooltip string, offset int) {
	h.hints = append(h.hints, Hint{Text: text, Tooltip: tooltip, Offset: offset})
}

// Hints returns the collected hints in insertion order.
func (h *HintContext) Hints() []Hint {
	return h.hints
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '/'
}

// skipSpace returns the first index at or after i that is not a space or tab.
func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// wordEnd returns the index of the first separator at or after start, or -1.
func wordEnd(s string, start int) int {
	for i := start; i < len(s); i++ {
		if isSeparator(s[i]) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
