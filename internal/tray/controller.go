package tray

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrTrayUnavailable = errors.New("system tray is not available")
	ErrAlreadyBuilt    = errors.New("tray icon already built")
)

// CreationError means the tray icon could not be registered.
type CreationError struct {
	Err error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("create tray icon: %v", e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// Surface is the OS status area. Register must return once the icon is
// live or has failed; onEvent then receives menu item ids.
type Surface interface {
	Register(menu Menu, icon []byte, tooltip string, onEvent func(id string)) error
	Quit()
}

// Handle identifies the registered tray icon.
type Handle struct {
	Menu Menu
}

// Controller owns the tray icon and its menu.
type Controller struct {
	mu      sync.Mutex
	surface Surface
	handle  *Handle
	tooltip string
}

func NewController(surface Surface, tooltip string) *Controller {
	return &Controller{surface: surface, tooltip: tooltip}
}

// BuildTrayIcon registers the one tray icon. Events are delivered to
// onEvent as raw ids; callers map them with OnMenuEvent.
func (c *Controller) BuildTrayIcon(menu Menu, icon []byte, onEvent func(id string)) (*Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle != nil {
		return nil, &CreationError{Err: ErrAlreadyBuilt}
	}
	if len(icon) == 0 {
		return nil, &CreationError{Err: errors.New("empty icon")}
	}
	if err := c.surface.Register(menu, icon, c.tooltip, onEvent); err != nil {
		return nil, &CreationError{Err: err}
	}
	c.handle = &Handle{Menu: menu}
	log.Info().Strs("menu", menu.IDs()).Msg("Tray icon registered")
	return c.handle, nil
}

// Close removes the tray icon, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == nil {
		return
	}
	c.surface.Quit()
	c.handle = nil
}
