// Package shell wires the endpoint, the main window and the tray together
// and dispatches tray actions for the lifetime of the process.
package shell

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"

	"jortask-app/internal/endpoint"
	"jortask-app/internal/tray"
	"jortask-app/internal/window"
)

const (
	Title  = "JOR Task Manager"
	Width  = 1100
	Height = 750
)

// ExitFunc terminates the process with the given code.
type ExitFunc func(code int)

type Options struct {
	Mode endpoint.Mode
	Icon []byte
	// StartHidden hides the window right after creation; the tray reveals it.
	StartHidden bool
	// CloseToTray makes the window close button hide instead of quit.
	CloseToTray bool
}

// Shell owns the main window and the tray icon.
type Shell struct {
	opts    Options
	windows *window.Manager
	tray    *tray.Controller
	exit    ExitFunc

	mu       sync.Mutex
	endpoint *url.URL
	main     *window.Handle
	icon     *tray.Handle
	exiting  bool
}

func New(opts Options, windows *window.Manager, trayCtl *tray.Controller, exit ExitFunc) *Shell {
	return &Shell{
		opts:    opts,
		windows: windows,
		tray:    trayCtl,
		exit:    exit,
	}
}

// Setup resolves the endpoint, creates the main window, then the tray.
// Any error is fatal: the shell is unusable without either.
func (s *Shell) Setup() error {
	u, err := endpoint.Resolve(s.opts.Mode)
	if err != nil {
		return fmt.Errorf("resolve endpoint: %w", err)
	}
	log.Info().Str("mode", s.opts.Mode.String()).Str("endpoint", u.String()).Msg("Endpoint resolved")

	main, err := s.windows.CreateMainWindow(u, Title, window.Size{Width: Width, Height: Height})
	if err != nil {
		return fmt.Errorf("create main window: %w", err)
	}
	if s.opts.StartHidden {
		s.windows.Hide(main)
		log.Info().Msg("Starting hidden in tray")
	}

	s.mu.Lock()
	s.endpoint = u
	s.main = main
	s.mu.Unlock()

	icon, err := s.tray.BuildTrayIcon(tray.BuildMenu(), s.opts.Icon, s.HandleMenuEvent)
	if err != nil {
		return fmt.Errorf("build tray: %w", err)
	}

	s.mu.Lock()
	s.icon = icon
	s.mu.Unlock()
	return nil
}

// HandleMenuEvent is the tray callback.
func (s *Shell) HandleMenuEvent(id string) {
	log.Debug().Str("id", id).Msg("Tray menu event")
	s.Dispatch(tray.OnMenuEvent(id))
}

// Dispatch performs an action. Actions arriving before the tray exists
// or after termination started are dropped.
func (s *Shell) Dispatch(a tray.Action) {
	s.mu.Lock()
	if s.icon == nil || s.exiting {
		s.mu.Unlock()
		log.Debug().Msgf("Dropping %T: shell not running", a)
		return
	}
	main := s.main
	if _, ok := a.(tray.TerminateProcess); ok {
		s.exiting = true
	}
	s.mu.Unlock()

	switch a := a.(type) {
	case tray.ShowAndFocusMainWindow:
		s.windows.ShowAndFocus(main)
	case tray.TerminateProcess:
		log.Info().Int("code", a.Code).Msg("Quit requested from tray")
		s.exit(a.Code)
	case tray.NoOp:
	default:
		log.Warn().Msgf("Unhandled tray action %T", a)
	}
}

// BeforeClose decides what the window close button does. It returns true
// to keep the process running.
func (s *Shell) BeforeClose() (prevent bool) {
	s.mu.Lock()
	if s.exiting || s.main == nil {
		s.mu.Unlock()
		return false
	}
	if !s.opts.CloseToTray || s.icon == nil {
		s.exiting = true
		s.mu.Unlock()
		return false
	}
	main := s.main
	s.mu.Unlock()

	// BeforeClose runs on the UI thread; no lock is held across the
	// native hide.
	s.windows.Hide(main)
	log.Info().Msg("Window hidden to tray")
	return true
}

// Endpoint is the resolved endpoint, nil before Setup.
func (s *Shell) Endpoint() *url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endpoint
}

// Close removes the tray icon on shutdown.
func (s *Shell) Close() {
	s.tray.Close()
}
