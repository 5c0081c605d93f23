//go:build linux

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

const desktopEntry = `[Desktop Entry]
Type=Application
Name=JOR Task Manager
Exec="%s" %s
Icon=jortask-app
Hidden=false
NoDisplay=false
X-GNOME-Autostart-enabled=true
Comment=JOR Task Manager dashboard in the system tray
`

// entryPath is the XDG autostart desktop file.
func entryPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "autostart", "jortask-app.desktop")
}

func entryContent(exePath string) []byte {
	return []byte(fmt.Sprintf(desktopEntry, exePath, HiddenFlag))
}
