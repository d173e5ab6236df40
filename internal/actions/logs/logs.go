package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/footprint-tools/cmdcon/internal/cli"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

const (
	defaultLogLimit = 50
	pollInterval    = 500 * time.Millisecond
)

// Run dispatches "cmdcon logs" on its flags.
func Run(args []string, flags *cli.ParsedFlags) error {
	switch {
	case flags.Has("--clear"):
		return Clear(args, flags)
	case flags.Has("--follow"):
		return Tail(args, flags)
	case flags.Has("--interactive"):
		return Interactive(args, flags)
	}
	return View(args, flags)
}

// View shows the last N lines of the log file
func View(args []string, flags *cli.ParsedFlags) error {
	return view(args, flags, DefaultDeps())
}

func view(_ []string, flags *cli.ParsedFlags, deps Deps) error {
	jsonOutput := flags.Has("--json")
	logPath := deps.LogFilePath()

	// Check if log file exists
	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	minLevel := levelFlag(flags)
	var entries []Entry
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		if e := parseEntry(line); e.passes(minLevel) {
			entries = append(entries, e)
		}
	}

	limit := flags.Int("--limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	if jsonOutput {
		return viewJSON(entries, deps)
	}

	for _, e := range entries {
		_, _ = deps.Println(colorize(e))
	}
	return nil
}

func viewJSON(entries []Entry, deps Deps) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// levelFlag returns the --level minimum, or debug when the flag is absent.
func levelFlag(flags *cli.ParsedFlags) log.Level {
	if v := flags.String("--level", ""); v != "" {
		return log.ParseLevel(v)
	}
	return log.LevelDebug
}

// Tail follows the log file in real time
func Tail(args []string, flags *cli.ParsedFlags) error {
	return tail(args, flags, DefaultDeps())
}

func tail(_ []string, flags *cli.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err = file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(style.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println("")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	minLevel := levelFlag(flags)
	return follow(ctx, bufio.NewReader(file), ticker.C, func(e Entry) {
		if e.passes(minLevel) {
			_, _ = deps.Println(colorize(e))
		}
	})
}

// follow emits every complete line read from r, waiting for tick at EOF,
// until ctx is done.
func follow(ctx context.Context, r *bufio.Reader, tick <-chan time.Time, emit func(Entry)) error {
	var partial string
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		partial += line

		if err == io.EOF {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
				continue
			}
		}

		emit(parseEntry(strings.TrimSuffix(partial, "\n")))
		partial = ""
	}
}

// Clear empties the log file
func Clear(args []string, flags *cli.ParsedFlags) error {
	return clear(args, flags, DefaultDeps())
}

func clear(_ []string, _ *cli.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}
