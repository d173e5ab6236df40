// Package ui renders interpreter feedback for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

// Sink writes info lines to one writer and warnings to another, styling
// them and mirroring both to the log. It satisfies dispatchers.Output.
type Sink struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	logger   domain.Logger
	styler   domain.Styler
	warnings int
}

// NewSinkTo creates a sink on the given writers. A nil styler leaves text
// unstyled.
func NewSinkTo(out, errOut io.Writer, logger domain.Logger, styler domain.Styler) *Sink {
	if styler == nil {
		styler = style.NopStyler{}
	}
	return &Sink{
		out:    out,
		errOut: errOut,
		logger: log.Component(logger, "output"),
		styler: styler,
	}
}

func (s *Sink) Info(parts ...any) {
	line := fmt.Sprint(parts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, StyleLine(s.styler, line))
	s.logger.Debug("%s", line)
}

func (s *Sink) Warn(parts ...any) {
	line := fmt.Sprint(parts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings++
	_, _ = fmt.Fprintln(s.errOut, s.styler.Warning(line))
	s.logger.Warn("%s", line)
}

// Warnings returns how many warnings were written since the last reset.
func (s *Sink) Warnings() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warnings
}

// ResetWarnings zeroes the warning count.
func (s *Sink) ResetWarnings() {
	s.mu.Lock()
	s.warnings = 0
	s.mu.Unlock()
}

// StyleLine applies header styling to "[Section]" lines and leaves others
// unchanged.
func StyleLine(styler domain.Styler, line string) string {
	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		return styler.Header(line)
	}
	return line
}
