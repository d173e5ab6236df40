package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping (Console, Logging, Colors)
	Hidden      bool   // Hidden keys are not listed
	HideIfEmpty bool   // Only listed if explicitly set
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in the console's config group.
var ConfigKeys = []ConfigKey{
	// Console
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean",
		Section:     "Console",
	},
	{
		Name:        "hint_limit",
		Default:     "100",
		Description: "Maximum number of completion hints",
		Section:     "Console",
	},
	{
		Name:        "history_limit",
		Default:     "500",
		Description: "Maximum number of remembered command lines",
		Section:     "Console",
	},
	{
		Name:        "history_path",
		Default:     "", // computed by config.Defaults
		Description: "Path to the history database (set empty to keep history in memory)",
		Section:     "Console",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Color Overrides - override specific colors from the current theme (ANSI 0-255)
	{
		Name:        "color_success",
		Description: "Override success color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Override header style from current theme (ANSI 0-255 or 'bold')",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}
