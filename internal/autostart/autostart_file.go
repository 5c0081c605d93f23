//go:build linux || darwin

package autostart

import (
	"os"
	"path/filepath"
)

// Linux and macOS both use a file dropped in a per-user directory.

func IsEnabled() (bool, error) {
	_, err := os.Stat(entryPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

func Enable() error {
	exePath, err := executable()
	if err != nil {
		return err
	}
	path := entryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, entryContent(exePath), 0644)
}

func Disable() error {
	err := os.Remove(entryPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
