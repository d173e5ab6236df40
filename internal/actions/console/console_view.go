package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m consoleModel) View() string {
	parts := []string{m.viewport.View()}
	if hints := m.renderHints(); hints != "" {
		parts = append(parts, hints)
	}
	parts = append(parts, m.input.View(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m consoleModel) renderHints() string {
	rows := min(len(m.hints), maxHintRows)
	if rows == 0 {
		return ""
	}

	styler := m.screen.styler
	value := m.input.Value()

	var b strings.Builder
	for i, h := range m.hints[:rows] {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := "  " + styler.Hint(h.Label(value))
		if h.Tooltip != "" {
			label += "  " + styler.Muted(h.Tooltip)
		}
		b.WriteString(label)
	}
	if more := len(m.hints) - rows; more > 0 {
		b.WriteString("\n  " + styler.Muted(fmt.Sprintf("+%d more", more)))
	}
	return b.String()
}

func (m consoleModel) renderFooter() string {
	status := ""
	if name := m.lockedName(); name != "" {
		status = m.screen.styler.Warning("locked: "+name) + "  "
	}
	return "\n" + status + m.screen.styler.Muted(m.help.View(m.keys))
}
