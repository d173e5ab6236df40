package config

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/paths"
)

// Defaults holds values computed at runtime. Keys not listed here use the
// static default from domain.ConfigKeys.
var Defaults = map[string]func() string{
	"history_path": paths.HistoryFilePath,
}

// DefaultValue returns the default for key, or "" for unknown keys.
func DefaultValue(key string) string {
	if fn, ok := Defaults[key]; ok {
		return fn()
	}
	v, _ := domain.GetDefaultValue(key)
	return v
}

// Get returns the value for a config key from the rc file, falling back to
// its default. found is false only for keys that are neither set nor known.
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err == nil {
		if cfg, err := Parse(lines); err == nil {
			if value, exists := cfg[key]; exists {
				return value, true
			}
		}
	}

	if !domain.IsValidConfigKey(key) {
		return "", false
	}
	return DefaultValue(key), true
}

// GetAll returns every known key's default overlaid with the rc file.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = DefaultValue(key.Name)
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// Int reads key from p as an integer, returning def when it is unset or
// malformed.
func Int(p domain.ConfigProvider, key string, def int) int {
	v, ok := p.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// Bool reads key from p as a boolean, returning def when it is unset or
// malformed.
func Bool(p domain.ConfigProvider, key string, def bool) bool {
	v, ok := p.Get(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
