//go:build !windows

package window

func focusNative(title string) error { return nil }

func hideNative(title string) error { return nil }
