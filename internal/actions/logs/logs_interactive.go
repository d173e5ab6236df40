package logs

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/cmdcon/internal/cli"
)

// Interactive runs the interactive log browser
func Interactive(args []string, flags *cli.ParsedFlags) error {
	return interactive(args, flags, DefaultDeps())
}

func interactive(_ []string, flags *cli.ParsedFlags, deps Deps) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive logs requires an interactive terminal")
	}

	m := newLogsModel(deps.LogFilePath(), levelFlag(flags))

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
