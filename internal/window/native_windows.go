//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW         = user32.NewProc("FindWindowW")
	procShowWindow          = user32.NewProc("ShowWindow")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
)

const (
	swHide    = 0
	swRestore = 9
)

func findWindow(title string) (uintptr, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		return 0, fmt.Errorf("window not found: %s", title)
	}
	return hwnd, nil
}

// focusNative brings the window to the foreground. Windows refuses this
// when another process owns the foreground lock.
func focusNative(title string) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}
	procShowWindow.Call(hwnd, swRestore)
	ok, _, _ := procSetForegroundWindow.Call(hwnd)
	if ok == 0 {
		return fmt.Errorf("SetForegroundWindow refused for %s", title)
	}
	return nil
}

// hideNative is more reliable than runtime.WindowHide during early startup.
func hideNative(title string) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}
	procShowWindow.Call(hwnd, swHide)
	return nil
}
