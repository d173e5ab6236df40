package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/footprint-tools/cmdcon/internal/domain"
)

// Styler renders the semantic roles the interpreter output needs from one
// color configuration. A disabled Styler returns text unchanged.
type Styler struct {
	enabled bool
	warning lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	prompt  lipgloss.Style
	hint    lipgloss.Style
}

// NewStyler snapshots the state set by Init.
func NewStyler() *Styler {
	if !enabled {
		return &Styler{}
	}
	return ForColors(colors)
}

// ForColors builds an enabled styler for c regardless of Init.
func ForColors(c ColorConfig) *Styler {
	lipgloss.SetColorProfile(termenv.ANSI256)
	return &Styler{
		enabled: true,
		warning: makeStyle(c.Warning),
		header:  makeStyle(c.Header),
		muted:   makeStyle(c.Muted),
		prompt:  makeStyle(c.Prompt).Bold(true),
		hint:    makeStyle(c.Hint),
	}
}

func (s *Styler) Enabled() bool { return s.enabled }

func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }
func (s *Styler) Header(text string) string  { return s.render(s.header, text) }
func (s *Styler) Muted(text string) string   { return s.render(s.muted, text) }
func (s *Styler) Prompt(text string) string  { return s.render(s.prompt, text) }
func (s *Styler) Hint(text string) string    { return s.render(s.hint, text) }

func (s *Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return st.Render(text)
}

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Header(text string) string  { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Prompt(text string) string  { return text }
func (NopStyler) Hint(text string) string    { return text }

var (
	_ domain.Styler = (*Styler)(nil)
	_ domain.Styler = NopStyler{}
)
