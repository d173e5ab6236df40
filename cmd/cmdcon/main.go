package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/cmdcon/internal/actions"
	configaction "github.com/footprint-tools/cmdcon/internal/actions/config"
	"github.com/footprint-tools/cmdcon/internal/actions/console"
	"github.com/footprint-tools/cmdcon/internal/actions/logs"
	"github.com/footprint-tools/cmdcon/internal/app"
	"github.com/footprint-tools/cmdcon/internal/cli"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/ui"
	"github.com/footprint-tools/cmdcon/internal/usage"
)

// env is the process surroundings main runs in.
type env struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive bool // stdin and stdout are terminals
	color       bool // stdout is a terminal
	options     func() app.Options
	console     func(*app.Session) error
}

func main() {
	os.Exit(run(os.Args[1:], env{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		color:       term.IsTerminal(int(os.Stdout.Fd())),
		options:     app.DefaultOptions,
		console:     console.Run,
	}))
}

func run(args []string, e env) int {
	flags, rest, err := cli.Parse(args)
	if err != nil {
		return fail(e, err)
	}

	if flags.Has("--help") {
		_, _ = fmt.Fprint(e.stdout, cli.Usage())
		return 0
	}

	opts := e.options()
	opts.StyleEnabled = e.color && !flags.Has("--no-color")
	if level := flags.String("--log-level", ""); level != "" {
		opts.LogLevel = log.ParseLevel(level)
	}
	if path := flags.String("--history", ""); path != "" {
		opts.HistoryPath = path
	}
	if flags.Has("--no-history") {
		opts.HistoryPath = ""
	}
	opts.Demo = flags.Has("--demo")

	if len(rest) > 0 {
		return subcommand(rest, flags, opts, e)
	}

	a, err := app.New(opts)
	if err != nil {
		return fail(e, err)
	}
	defer app.Close(a)

	session, err := app.NewSession(a, ui.NewSinkTo(e.stdout, e.stderr, a.Logger, a.Styler), opts)
	if err != nil {
		return fail(e, err)
	}

	if lines := flags.Strings("--command"); len(lines) > 0 {
		for _, line := range lines {
			session.Run(line)
		}
		return session.ExitCode()
	}

	if !e.interactive {
		if _, err := session.RunScript(e.stdin); err != nil {
			return fail(e, err)
		}
		return session.ExitCode()
	}

	if err := e.console(session); err != nil {
		return fail(e, err)
	}
	return 0
}

// subcommand runs one of the non-console actions. They log through the
// package-level logger.
func subcommand(rest []string, flags *cli.ParsedFlags, opts app.Options, e env) int {
	if opts.LogEnabled && opts.LogPath != "" {
		if err := log.Init(opts.LogPath, opts.LogLevel); err == nil {
			defer func() { _ = log.Close() }()
		}
	}
	log.Debug("main: subcommand %s %v", rest[0], rest[1:])

	var err error
	switch rest[0] {
	case "version":
		err = actions.ShowVersion(rest[1:], flags)
	case "logs":
		err = logs.Run(rest[1:], flags)
	case "config":
		err = configaction.Run(rest[1:], flags)
	default:
		err = usage.Commandf("unknown subcommand '%s'. Run 'cmdcon --help' for usage", rest[0])
	}
	if err != nil {
		log.Warn("main: %s: %v", rest[0], err)
		return fail(e, err)
	}
	return 0
}

func fail(e env, err error) int {
	_, _ = fmt.Fprintln(e.stderr, err.Error())
	if ue, ok := usage.As(err); ok {
		return ue.GetExitCode()
	}
	return 1
}
