package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cmdcon/internal/app"
	"github.com/footprint-tools/cmdcon/internal/dispatchers"
	"github.com/footprint-tools/cmdcon/internal/items"
	"github.com/footprint-tools/cmdcon/internal/registry"
)

const (
	maxHintRows  = 5
	footerHeight = 2
	basePrompt   = "> "
)

type keyMap struct {
	Run      key.Binding
	Complete key.Binding
	Prev     key.Binding
	Next     key.Binding
	Cancel   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Run:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "run")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "complete")),
		Prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "history")),
		Next:     key.NewBinding(key.WithKeys("down")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "cancel")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp/PgDn", "scroll")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Complete, k.Prev, k.Cancel, k.PageUp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// consoleModel is the Bubble Tea model for the interactive console.
type consoleModel struct {
	session *app.Session
	screen  *screen
	catalog *registry.Catalog

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	hints   []dispatchers.Hint
	history []string
	histPos int
	draft   string

	width  int
	height int
}

func newConsoleModel(session *app.Session) consoleModel {
	sc := newScreen(session.App.Styler)
	session.Interpreter.SetOutput(sc)

	cat := session.Registry.NewCatalog("console")
	cat.Add("exit", items.NewButton(func() { sc.quit = true }).
		WithTooltip("Leave the console"))
	cat.Add("clear", items.NewButton(sc.clear).
		WithTooltip("Clear the screen").
		WithKey("ctrl+l"))

	input := textinput.New()
	input.Prompt = sc.styler.Prompt(basePrompt)
	input.Placeholder = "type a command, or help"
	input.Focus()

	history := session.HistoryLines(0)

	return consoleModel{
		session:  session,
		screen:   sc,
		catalog:  cat,
		input:    input,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeys(),
		history:  history,
		histPos:  len(history),
	}
}

// close removes the console's own items from the session registry.
func (m consoleModel) close() {
	m.catalog.RemoveAll()
}

// Init implements tea.Model
func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(basePrompt) - 1
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m consoleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.session.Interpreter

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Run):
		return m.submit()

	case key.Matches(msg, m.keys.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.recall(-1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.recall(1)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if !in.Cancel() {
			m.input.SetValue("")
		}
		m.updateHints()
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if event := msg.String(); isChord(event) && in.FindKey(event) != nil {
		in.RunKey(event)
		m.updateHints()
		m.refresh()
		m.viewport.GotoBottom()
		if m.screen.quit {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.updateHints()
	m.refresh()
	return m, cmd
}

// submit runs the input line and resets history navigation.
func (m consoleModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	m.screen.echo(m.promptText(), line)
	if strings.TrimSpace(line) != "" {
		if n := len(m.history); n == 0 || m.history[n-1] != line {
			m.history = append(m.history, line)
		}
	}
	m.histPos = len(m.history)
	m.draft = ""

	m.session.Run(line)

	m.updateHints()
	m.refresh()
	m.viewport.GotoBottom()
	if m.screen.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *consoleModel) complete() {
	if len(m.hints) == 0 {
		return
	}
	m.input.SetValue(m.hints[0].Apply(m.input.Value()))
	m.input.CursorEnd()
	m.updateHints()
	m.refresh()
}

// recall walks the history; dir is -1 for older, 1 for newer. The line
// being typed is kept as a draft and restored past the newest entry.
func (m *consoleModel) recall(dir int) {
	if len(m.history) == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}

	pos := m.histPos + dir
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.history) {
		pos = len(m.history)
	}
	m.histPos = pos

	if pos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[pos])
	}
	m.input.CursorEnd()
	m.updateHints()
	m.refresh()
}

func (m *consoleModel) updateHints() {
	m.hints = m.session.Interpreter.FillHints(m.input.Value())
}

// refresh syncs the prompt and viewport with the interpreter state.
func (m *consoleModel) refresh() {
	m.input.Prompt = m.screen.styler.Prompt(m.promptText())

	height := m.height - footerHeight - m.hintRows() - 1
	if height < 1 {
		height = 1
	}
	m.viewport.Height = height
	m.viewport.SetContent(m.screen.content())
}

func (m consoleModel) promptText() string {
	if name := m.lockedName(); name != "" {
		return name + basePrompt
	}
	return basePrompt
}

func (m consoleModel) lockedName() string {
	it := m.session.Interpreter.Locked()
	if it == nil {
		return ""
	}
	if it.Path != "" {
		return it.Path
	}
	return it.Name
}

// hintRows is the height of the hint block, including the overflow line.
func (m consoleModel) hintRows() int {
	if len(m.hints) > maxHintRows {
		return maxHintRows + 1
	}
	return len(m.hints)
}

// isChord reports whether event carries a modifier, so plain typing never
// triggers item bindings.
func isChord(event string) bool {
	return strings.HasPrefix(event, "ctrl+") || strings.HasPrefix(event, "alt+")
}
