// Package autostart registers the shell to launch hidden at login.
package autostart

import "os"

// HiddenFlag is passed to the login launch so the window starts in the tray.
const HiddenFlag = "--hidden"

// Sync makes the OS entry match the launch_on_startup setting.
func Sync(enabled bool) error {
	on, err := IsEnabled()
	if err == nil && on == enabled {
		return nil
	}
	if enabled {
		return Enable()
	}
	return Disable()
}

// executable is swapped in tests.
var executable = os.Executable
