package window

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"
)

// MainName is the logical name of the only application window.
const MainName = "main"

var ErrAlreadyCreated = errors.New("main window already created")

// State is the visibility of the main window as last requested by the shell.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Size is in logical pixels.
type Size struct {
	Width  int
	Height int
}

// Options describe the window handed to the windowing capability.
type Options struct {
	Name     string
	Endpoint *url.URL
	Title    string
	Size     Size
}

// Capability is the native windowing facility the manager drives.
type Capability interface {
	Create(opts Options) error
	Show()
	Hide()
	// Focus may be refused by the OS; the manager ignores the error.
	Focus() error
}

// Handle identifies the window created by CreateMainWindow.
type Handle struct {
	Name     string
	Endpoint *url.URL
	Title    string
	Size     Size
}

// CreationError is returned when no usable window could be created.
type CreationError struct {
	Name string
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("create window %q: %v", e.Name, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// Manager owns the single application window.
type Manager struct {
	mu     sync.Mutex
	native Capability
	handle *Handle
	state  State
}

func NewManager(native Capability) *Manager {
	return &Manager{native: native}
}

// CreateMainWindow creates the window named "main" pointed at endpoint.
// It may succeed only once per Manager. The window starts visible.
func (m *Manager) CreateMainWindow(endpoint *url.URL, title string, size Size) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle != nil {
		return nil, &CreationError{Name: MainName, Err: ErrAlreadyCreated}
	}
	if endpoint == nil || !endpoint.IsAbs() {
		return nil, &CreationError{Name: MainName, Err: errors.New("endpoint must be an absolute URL")}
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, &CreationError{Name: MainName, Err: fmt.Errorf("invalid size %dx%d", size.Width, size.Height)}
	}

	opts := Options{Name: MainName, Endpoint: endpoint, Title: title, Size: size}
	if err := m.native.Create(opts); err != nil {
		return nil, &CreationError{Name: MainName, Err: err}
	}

	m.handle = &Handle{Name: MainName, Endpoint: endpoint, Title: title, Size: size}
	m.state = Visible
	log.Info().Str("window", MainName).Str("endpoint", endpoint.String()).
		Int("width", size.Width).Int("height", size.Height).Msg("Main window created")
	return m.handle, nil
}

// Show makes the window visible. No-op when it already is.
// Native calls run outside m.mu: Wails marshals them onto the UI thread,
// which may itself be waiting on the manager.
func (m *Manager) Show(h *Handle) {
	if !m.transition(h, Visible) {
		return
	}
	m.native.Show()
}

// Focus requests input focus. A refusal by the OS is logged and dropped.
func (m *Manager) Focus(h *Handle) {
	if !m.owns(h) {
		return
	}
	if err := m.native.Focus(); err != nil {
		log.Debug().Err(err).Str("window", h.Name).Msg("Focus request denied")
	}
}

// Hide is used for start-hidden and close-to-tray; no menu item hides.
func (m *Manager) Hide(h *Handle) {
	if !m.transition(h, Hidden) {
		return
	}
	m.native.Hide()
}

// transition records the new state and reports whether it changed.
func (m *Manager) transition(h *Handle, to State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h == nil || h != m.handle || m.state == to {
		return false
	}
	m.state = to
	return true
}

// ShowAndFocus always leaves the window Visible.
func (m *Manager) ShowAndFocus(h *Handle) {
	m.Show(h)
	m.Focus(h)
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Main returns the main window handle, or nil before CreateMainWindow.
func (m *Manager) Main() *Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle
}

func (m *Manager) owns(h *Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return h != nil && h == m.handle
}
