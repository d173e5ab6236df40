package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Prompt  string
	Hint    string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		Prompt:  "12",  // bright blue
		Hint:    "243", // dim gray
	},

	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		Header:  "bold",
		Prompt:  "25",  // navy
		Hint:    "246", // light gray
	},

	// Grayscale with a single cyan accent.
	"mono-dark": {
		Success: "50",  // cyan
		Warning: "229", // pale yellow
		Error:   "210", // light red
		Info:    "50",  // cyan
		Muted:   "245", // gray
		Header:  "bold",
		Prompt:  "255", // white
		Hint:    "242", // dim gray
	},

	"mono-light": {
		Success: "30",  // dark teal
		Warning: "136", // amber
		Error:   "124", // dark red
		Info:    "30",  // dark teal
		Muted:   "244", // gray
		Header:  "bold",
		Prompt:  "235", // near black
		Hint:    "247", // light gray
	},

	"ocean-dark": {
		Success: "43",  // turquoise
		Warning: "221", // light gold
		Error:   "174", // light coral
		Info:    "75",  // sky blue
		Muted:   "245", // gray
		Header:  "bold",
		Prompt:  "80",  // medium turquoise
		Hint:    "67",  // steel blue
	},

	"ocean-light": {
		Success: "30",  // dark cyan
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "25",  // dark blue
		Muted:   "244", // gray
		Header:  "bold",
		Prompt:  "17",  // navy
		Hint:    "66",  // grayish cyan
	},
}

// colorConfigKeys lists the keys that override a theme color. Prompt and
// hint colors have no rc entry but can be set from the environment.
var colorConfigKeys = []string{
	"color_success",
	"color_warning",
	"color_error",
	"color_info",
	"color_muted",
	"color_header",
	"color_prompt",
	"color_hint",
}

// field returns the ColorConfig slot for a color_* key, or nil.
func (c *ColorConfig) field(key string) *string {
	switch key {
	case "color_success":
		return &c.Success
	case "color_warning":
		return &c.Warning
	case "color_error":
		return &c.Error
	case "color_info":
		return &c.Info
	case "color_muted":
		return &c.Muted
	case "color_header":
		return &c.Header
	case "color_prompt":
		return &c.Prompt
	case "color_hint":
		return &c.Hint
	}
	return nil
}

// IsDarkBackground reports whether the terminal has a dark background.
// Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are returned
// unchanged.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from cfg.
// Resolution priority:
// 1. Environment variable (CMDCON_COLOR_*)
// 2. Config value (color_*)
// 3. Theme (CMDCON_THEME or the theme key)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("CMDCON_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme
	for _, key := range colorConfigKeys {
		slot := result.field(key)

		if envVal := os.Getenv("CMDCON_" + strings.ToUpper(key)); envVal != "" {
			*slot = envVal
			continue
		}
		if cfgVal, ok := cfg[key]; ok && cfgVal != "" {
			*slot = cfgVal
		}
	}

	return result
}
