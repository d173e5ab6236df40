package logs

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

const (
	maxLogLines  = 1000
	headerHeight = 2
	footerHeight = 2
)

// levelKeys set the minimum level shown.
var levelKeys = map[string]log.Level{
	"d": log.LevelDebug,
	"i": log.LevelInfo,
	"w": log.LevelWarn,
	"e": log.LevelError,
}

type tickMsg time.Time

// chunkMsg carries the complete lines appended since the last read. reset
// is set when the file shrank, i.e. it was cleared or rotated.
type chunkMsg struct {
	entries []Entry
	offset  int64
	reset   bool
}

// logsModel is the Bubble Tea model for the interactive log browser.
type logsModel struct {
	logPath string
	offset  int64
	entries []Entry
	counts  map[string]int

	minLevel  log.Level
	search    textinput.Model
	searching bool
	paused    bool

	viewport viewport.Model
	width    int
	height   int

	colors style.ColorConfig
}

func newLogsModel(logPath string, minLevel log.Level) logsModel {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"

	return logsModel{
		logPath:  logPath,
		counts:   make(map[string]int),
		minLevel: minLevel,
		search:   search,
		viewport: viewport.New(0, 0),
		colors:   style.GetColors(),
	}
}

// Init implements tea.Model
func (m logsModel) Init() tea.Cmd {
	return tea.Batch(m.read(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (m logsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)

	case tickMsg:
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(m.read(), tickCmd())

	case chunkMsg:
		m.apply(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m logsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		if msg.Type == tea.KeyEsc {
			m.search.SetValue("")
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m logsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.search.Value() != "" || m.minLevel != log.LevelDebug {
			m.search.SetValue("")
			m.minLevel = log.LevelDebug
			m.refresh()
			return m, nil
		}
		return m, tea.Quit
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "p":
		m.paused = !m.paused
		return m, nil
	case "d", "i", "w", "e":
		m.minLevel = levelKeys[msg.String()]
		m.refresh()
		return m, nil
	case "g":
		m.viewport.GotoTop()
		return m, nil
	case "G":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// apply adds a chunk, keeping at most maxLogLines and staying at the
// bottom if the view was already there.
func (m *logsModel) apply(msg chunkMsg) {
	if msg.reset {
		m.entries = nil
		m.counts = make(map[string]int)
	}
	m.offset = msg.offset
	if len(msg.entries) == 0 && !msg.reset {
		return
	}

	for _, e := range msg.entries {
		m.counts[e.Level]++
	}
	m.entries = append(m.entries, msg.entries...)
	if over := len(m.entries) - maxLogLines; over > 0 {
		m.entries = m.entries[over:]
	}

	atBottom := m.viewport.AtBottom()
	m.refresh()
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *logsModel) refresh() {
	visible := m.visible()
	lines := make([]string, len(visible))
	for i, e := range visible {
		lines[i] = m.renderEntry(e)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// visible returns the entries passing the level and search filters.
func (m logsModel) visible() []Entry {
	query := strings.ToLower(m.search.Value())

	var out []Entry
	for _, e := range m.entries {
		if !e.passes(m.minLevel) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Raw), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (m logsModel) read() tea.Cmd {
	path, offset := m.logPath, m.offset
	return func() tea.Msg {
		msg, err := readChunk(path, offset)
		if err != nil {
			return nil
		}
		return msg
	}
}

// readChunk reads the complete lines of path past offset.
func readChunk(path string, offset int64) (chunkMsg, error) {
	f, err := os.Open(path)
	if err != nil {
		return chunkMsg{}, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return chunkMsg{}, err
	}

	msg := chunkMsg{offset: offset}
	if info.Size() < offset {
		msg.reset = true
		msg.offset = 0
	}
	if info.Size() == msg.offset {
		return msg, nil
	}

	if _, err := f.Seek(msg.offset, io.SeekStart); err != nil {
		return chunkMsg{}, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return chunkMsg{}, err
	}

	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return msg, nil
	}
	for _, line := range strings.Split(string(data[:end]), "\n") {
		msg.entries = append(msg.entries, parseEntry(line))
	}
	msg.offset += int64(end + 1)
	return msg, nil
}
