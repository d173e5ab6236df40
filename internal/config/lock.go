package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/footprint-tools/cmdcon/internal/paths"
)

const (
	lockFileName     = ".cmdconrc.lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

var (
	// ErrLockTimeout is returned when we cannot acquire the lock within the timeout period.
	ErrLockTimeout = errors.New("config: lock timeout")
)

// WithLock runs fn while holding an exclusive lock file next to the rc file.
func WithLock(fn func() error) error {
	lockPath, err := getLockPath()
	if err != nil {
		return err
	}

	lockFile, err := acquireLock(lockPath)
	if err != nil {
		return err
	}

	defer releaseLock(lockFile, lockPath)

	return fn()
}

func getLockPath() (string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), lockFileName), nil
}

// acquireLock polls until the lock file can be created exclusively or the
// timeout passes. Locks older than staleLockTimeout are broken.
func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)

	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}

		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	if f != nil {
		_ = f.Close()
	}
	_ = os.Remove(lockPath)
}
