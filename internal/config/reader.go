package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/paths"
)

// ReadLines returns the raw lines of the rc file. A missing or empty file is
// created and seeded with the visible defaults.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	var lines []string

	lines = append(lines, "# cmdcon configuration")
	lines = append(lines, "# Edit values below or from the console: config/<key> <value>")

	section := ""
	for _, key := range domain.VisibleConfigKeys() {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := DefaultValue(key.Name)
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		// Optional overrides stay commented out.
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
