//go:build !linux && !darwin && !windows

package autostart

import "errors"

var errUnsupported = errors.New("launch on startup is not supported on this platform")

func IsEnabled() (bool, error) { return false, nil }
func Enable() error            { return errUnsupported }
func Disable() error           { return nil }
