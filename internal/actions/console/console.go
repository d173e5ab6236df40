// Package console is the full-screen interactive front end of the
// interpreter.
package console

import (
	"errors"

	"github.com/footprint-tools/cmdcon/internal/app"
)

// ErrNotTerminal is returned when the console is started without a TTY.
var ErrNotTerminal = errors.New("console requires an interactive terminal")

// Run starts the console on session and blocks until the user leaves.
func Run(session *app.Session) error {
	return run(session, DefaultDeps())
}

func run(session *app.Session, deps Deps) error {
	if !deps.IsTerminal() {
		return ErrNotTerminal
	}

	m := newConsoleModel(session)
	defer m.close()

	return deps.RunProgram(m)
}
