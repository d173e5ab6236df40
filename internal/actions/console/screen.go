package console

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/ui"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

const maxScreenLines = 2000

// screen is the part of the model shared by pointer: interpreter output
// produced during Update lands here, as does the exit request.
type screen struct {
	styler domain.Styler
	lines  []string
	quit   bool
}

func newScreen(styler domain.Styler) *screen {
	if styler == nil {
		styler = style.NopStyler{}
	}
	return &screen{styler: styler}
}

func (s *screen) Info(parts ...any) {
	for _, line := range split(fmt.Sprint(parts...)) {
		s.append(ui.StyleLine(s.styler, line))
	}
}

func (s *screen) Warn(parts ...any) {
	for _, line := range split(fmt.Sprint(parts...)) {
		s.append(s.styler.Warning(line))
	}
}

func (s *screen) echo(prompt, line string) {
	s.append(s.styler.Prompt(prompt) + line)
}

func (s *screen) clear() {
	s.lines = nil
}

func (s *screen) append(line string) {
	s.lines = append(s.lines, line)
	if over := len(s.lines) - maxScreenLines; over > 0 {
		s.lines = s.lines[over:]
	}
}

func (s *screen) content() string {
	return strings.Join(s.lines, "\n")
}

func split(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
