package config

import "strings"

// Set rewrites the line for key in place, keeping any trailing comment, or
// appends a new line. It reports whether an existing line was changed.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}

	for i, line := range lines {
		k, old, ok := keyOf(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(old, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(old[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line assigning key and reports whether any was found.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := keyOf(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// keyOf splits an assignment line. Comments and blank lines report false.
func keyOf(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, value, ok = strings.Cut(trimmed, "=")
	return strings.TrimSpace(key), value, ok
}
