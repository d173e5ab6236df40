// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Muted) rather than
// visual. When disabled, every helper returns its input unchanged with no
// ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	// Only used when enabled is true.
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init sets whether styling is enabled and loads the theme and color
// overrides from cfg (nil uses the default theme). NO_COLOR or
// CMDCON_NO_COLOR set to any non-empty value disables styling regardless of
// enable.
//
// Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDCON_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

// initStyles creates the lipgloss styles from the given color configuration.
// Uses ANSI 256-color palette to support both basic and extended colors.
func initStyles(colors ColorConfig) {
	// ANSI256 regardless of TTY detection; themes use the 256-color palette.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Color returns a style for one ColorConfig value, or a plain style when
// styling is disabled or value is empty.
func Color(value string) lipgloss.Style {
	if !enabled || value == "" {
		return lipgloss.NewStyle()
	}
	return makeStyle(value)
}
