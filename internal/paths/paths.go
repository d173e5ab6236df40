package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "cmdcon"

// AppDataDir returns the directory holding the log file, creating it if
// needed. Uses os.UserConfigDir():
//   - macOS: ~/Library/Application Support/cmdcon
//   - Linux: $XDG_CONFIG_HOME/cmdcon or ~/.config/cmdcon
//   - Windows: %AppData%\cmdcon
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// AppLocalDataDir returns the OS-appropriate directory for session data such
// as command history.
//   - macOS: ~/Library/Application Support/cmdcon
//   - Linux: $XDG_DATA_HOME/cmdcon or ~/.local/share/cmdcon
//   - Windows: %LOCALAPPDATA%\cmdcon
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// HistoryFilePath returns the default history database path. The directory
// is created on demand.
func HistoryFilePath() string {
	dir := AppLocalDataDir()
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "history.db")
}

// ConfigFilePath returns ~/.cmdconrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cmdconrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cmdcon.log")
}
