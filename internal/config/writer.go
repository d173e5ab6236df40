package config

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/footprint-tools/cmdcon/internal/paths"
)

// WriteLines replaces the rc file atomically via a temp file and rename.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	tmpFile, err := os.CreateTemp(dir, ".cmdconrc.tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmpFile.Chmod(0600); err != nil {
		return err
	}

	writer := bufio.NewWriter(tmpFile)

	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		return err
	}

	success = true
	return nil
}
