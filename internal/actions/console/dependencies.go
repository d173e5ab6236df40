package console

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type Deps struct {
	IsTerminal func() bool
	RunProgram func(tea.Model) error
}

func DefaultDeps() Deps {
	return Deps{
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunProgram: func(m tea.Model) error {
			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err := p.Run()
			return err
		},
	}
}
