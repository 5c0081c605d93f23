//go:build cgo || windows

package tray

import (
	"os"
	"runtime"
	"time"

	"github.com/energye/systray"
)

// readyTimeout bounds the wait for the tray thread to come up.
const readyTimeout = 5 * time.Second

type systraySurface struct {
	title string
}

// NewSurface returns the energye/systray-backed tray surface.
func NewSurface(title string) Surface {
	return &systraySurface{title: title}
}

func (s *systraySurface) Register(menu Menu, icon []byte, tooltip string, onEvent func(id string)) error {
	if runtime.GOOS == "linux" && os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		return ErrTrayUnavailable
	}

	ready := make(chan struct{})
	// The hidden tray window and its message loop must share one OS
	// thread; RunWithExternalLoop splits them and breaks dispatch.
	go func() {
		runtime.LockOSThread()
		systray.Run(func() {
			s.onReady(menu, icon, tooltip, onEvent)
			close(ready)
		}, nil)
	}()

	select {
	case <-ready:
		return nil
	case <-time.After(readyTimeout):
		return ErrTrayUnavailable
	}
}

func (s *systraySurface) onReady(menu Menu, icon []byte, tooltip string, onEvent func(id string)) {
	systray.SetIcon(icon)
	systray.SetTitle(s.title)
	systray.SetTooltip(tooltip)

	// Left-click / double-click open the dashboard like the menu item.
	systray.SetOnClick(func(systray.IMenu) { onEvent(IDShow) })
	systray.SetOnDClick(func(systray.IMenu) { onEvent(IDShow) })
	systray.SetOnRClick(func(m systray.IMenu) { m.ShowMenu() })

	for _, it := range menu {
		if it.Separator {
			systray.AddSeparator()
			continue
		}
		id := it.ID
		item := systray.AddMenuItem(it.Label, it.Tooltip)
		item.Click(func() { onEvent(id) })
	}
}

func (s *systraySurface) Quit() {
	systray.Quit()
}
