//go:build darwin

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
)

const launchAgentLabel = "com.jortaskmanager.app"

const plistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
        <string>%s</string>
        <string>%s</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`

func entryPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "LaunchAgents", launchAgentLabel+".plist")
}

func entryContent(exePath string) []byte {
	return []byte(fmt.Sprintf(plistTemplate, launchAgentLabel, exePath, HiddenFlag))
}
