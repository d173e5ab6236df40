package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

// View implements tea.Model
func (m logsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m logsModel) renderHeader() string {
	muted := style.Color(m.colors.Muted)
	title := style.Color(m.colors.Header).Bold(true).Render("cmdcon logs")

	parts := []string{title}
	for _, level := range []string{"ERROR", "WARN", "INFO", "DEBUG"} {
		parts = append(parts, m.levelStyle(level).Render(fmt.Sprintf("%s %d", level, m.counts[level])))
	}
	parts = append(parts, muted.Render("min ")+m.levelStyle(m.minLevel.String()).Render(m.minLevel.String()))

	if q := m.search.Value(); q != "" && !m.searching {
		parts = append(parts, muted.Render("search ")+q)
	}
	if m.paused {
		parts = append(parts, style.Color(m.colors.Warning).Render("PAUSED"))
	}

	header := strings.Join(parts, muted.Render(" | "))
	rule := muted.Render(strings.Repeat("─", m.width))
	return lipgloss.NewStyle().Width(m.width).Render(header) + "\n" + rule
}

func (m logsModel) renderFooter() string {
	muted := style.Color(m.colors.Muted)
	if m.searching {
		return muted.Render(strings.Repeat("─", m.width)) + "\n" + m.search.View()
	}

	keys := "d/i/w/e level  / search  p pause  g/G top/bottom  esc reset  q quit"
	pos := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	gap := max(m.width-lipgloss.Width(keys)-lipgloss.Width(pos), 1)

	return muted.Render(strings.Repeat("─", m.width)) + "\n" +
		muted.Render(keys+strings.Repeat(" ", gap)+pos)
}

func (m logsModel) renderEntry(e Entry) string {
	if e.Level == "" {
		return e.Raw
	}

	muted := style.Color(m.colors.Muted)
	line := muted.Render(e.Timestamp) + " " + m.levelStyle(e.Level).Render(fmt.Sprintf("%-5s", e.Level)) + " "
	if e.Component != "" {
		line += style.Color(m.colors.Hint).Render(e.Component) + " "
	}
	return line + e.Message
}

func (m logsModel) levelStyle(level string) lipgloss.Style {
	switch log.ParseLevel(level) {
	case log.LevelError:
		return style.Color(m.colors.Error)
	case log.LevelWarn:
		return style.Color(m.colors.Warning)
	case log.LevelInfo:
		return style.Color(m.colors.Info)
	}
	return style.Color(m.colors.Muted)
}
