// Package assets holds the application icon shared by the window and the tray.
package assets

import (
	_ "embed"
	"runtime"
)

//go:embed appicon.png
var AppIcon []byte

//go:embed trayicon.png
var trayPNG []byte

// Windows tray icons must be ICO.
//
//go:embed icon.ico
var trayICO []byte

// DefaultIcon returns the default application icon in the format the
// tray of the current OS accepts.
func DefaultIcon() []byte {
	if runtime.GOOS == "windows" {
		return trayICO
	}
	return trayPNG
}
