package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/catalogs"
	"github.com/footprint-tools/cmdcon/internal/dispatchers"
	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/history"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/registry"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

// Session is one interpreter wired to an Application: a command registry
// holding the shipped catalogs, and history recording of every line run.
type Session struct {
	App         *domain.Application
	Interpreter *dispatchers.Interpreter
	Registry    *registry.Registry
	Demo        *catalogs.DemoState

	logger   domain.Logger
	exitCode int
}

// NewSession creates a session writing feedback to out.
func NewSession(app *domain.Application, out dispatchers.Output, opts Options) (*Session, error) {
	logger := app.Logger
	if logger == nil {
		logger = log.NopLogger{}
	}

	in := dispatchers.New(dispatchers.Options{
		Output:    out,
		Logger:    logger,
		History:   app.History,
		HintLimit: opts.HintLimit,
	})

	reg := registry.New(logger)
	in.AddRegistry("commands", reg)

	s := &Session{
		App:         app,
		Interpreter: in,
		Registry:    reg,
		logger:      log.Component(logger, "session"),
	}

	if app.Config != nil {
		catalogs.Config(reg.NewCatalog("config"), app.Config, logger)
	}

	if opts.Demo {
		catalogs.RegisterDemoTypes(in.Types())
		d, err := catalogs.Demo(reg.NewCatalog("demo"))
		if err != nil {
			return nil, fmt.Errorf("register demo: %w", err)
		}
		s.Demo = d
	}

	in.OnRun(s.record)
	in.OnError(s.fail)
	return s, nil
}

// Run interprets one line.
func (s *Session) Run(line string) (any, bool) {
	return s.Interpreter.Run(line)
}

// RunScript runs every line of r, skipping blanks and '#' comments, and
// returns how many lines failed.
func (s *Session) RunScript(r io.Reader) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := s.Run(line); !ok {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("read script: %w", err)
	}
	return failed, nil
}

// ExitCode is the highest exit code among failures so far, 0 if none.
func (s *Session) ExitCode() int {
	return s.exitCode
}

// HistoryLines returns up to limit recent lines, oldest first.
func (s *Session) HistoryLines(limit int) []string {
	if s.App.History == nil {
		return nil
	}
	lines, err := history.Lines(s.App.History, limit)
	if err != nil {
		s.logger.Warn("read history: %v", err)
	}
	return lines
}

func (s *Session) record(input string, handled bool) {
	line := strings.TrimSpace(input)
	if line == "" || s.App.History == nil {
		return
	}
	if err := s.App.History.Append(line, handled); err != nil {
		s.logger.Warn("append history: %v", err)
	}
}

func (s *Session) fail(err error) {
	code := 1
	if ue, ok := usage.As(err); ok {
		code = ue.GetExitCode()
	}
	s.exitCode = max(s.exitCode, code)
}
