//go:build !(cgo || windows)

package tray

type unavailableSurface struct{}

// NewSurface returns a surface that always reports the tray as missing;
// energye/systray needs cgo outside Windows.
func NewSurface(title string) Surface { return unavailableSurface{} }

func (unavailableSurface) Register(Menu, []byte, string, func(string)) error {
	return ErrTrayUnavailable
}

func (unavailableSurface) Quit() {}
