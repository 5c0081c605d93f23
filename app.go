package main

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"jortask-app/internal/assets"
	"jortask-app/internal/config"
	"jortask-app/internal/endpoint"
	"jortask-app/internal/shell"
	"jortask-app/internal/singleinstance"
	"jortask-app/internal/tray"
	"jortask-app/internal/window"
)

// quitGrace is how long the Wails runtime gets to exit before os.Exit.
const quitGrace = 3 * time.Second

type App struct {
	ctx      context.Context
	version  string
	mode     endpoint.Mode
	settings config.Settings
	native   atomic.Pointer[window.WailsCapability]
	shell    *shell.Shell
	requests *singleinstance.ShowRequests
	exitCode atomic.Int32
	setupErr atomic.Pointer[error]
}

func NewApp(mode endpoint.Mode, settings config.Settings, requests *singleinstance.ShowRequests) *App {
	return &App{mode: mode, settings: settings, requests: requests}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	native := window.NewWailsCapability(ctx)
	a.native.Store(native)

	a.shell = shell.New(
		shell.Options{
			Mode:        a.mode,
			Icon:        assets.DefaultIcon(),
			StartHidden: a.settings.StartHidden,
			CloseToTray: a.settings.CloseToTray,
		},
		window.NewManager(native),
		tray.NewController(tray.NewSurface(shell.Title), shell.Title),
		a.exit,
	)

	if err := a.shell.Setup(); err != nil {
		// Leave through wails.Run so main releases the lock and log file.
		a.setupErr.Store(&err)
		a.exitCode.Store(1)
		runtime.Quit(ctx)
		return
	}

	if a.requests != nil {
		a.requests.Listen(a.showFromSignal)
	}

	if a.mode == endpoint.Debug {
		go a.probeEndpoint()
	}
}

func (a *App) beforeClose(ctx context.Context) (prevent bool) {
	if a.shell == nil {
		return false
	}
	return a.shell.BeforeClose()
}

func (a *App) shutdown(ctx context.Context) {
	if a.shell != nil {
		a.shell.Close()
	}
}

// Endpoint is called by the loader page to find where to navigate.
func (a *App) Endpoint() string {
	native := a.native.Load()
	if native == nil {
		return ""
	}
	return native.Endpoint()
}

// setupError is the fatal error that aborted startup, if any.
func (a *App) setupError() error {
	if err := a.setupErr.Load(); err != nil {
		return *err
	}
	return nil
}

func (a *App) exitStatus() int {
	return int(a.exitCode.Load())
}

// showFromSignal handles a second instance asking for the window.
func (a *App) showFromSignal() {
	a.shell.Dispatch(tray.ShowAndFocusMainWindow{})
}

func (a *App) exit(code int) {
	a.exitCode.Store(int32(code))
	a.shell.Close()
	runtime.Quit(a.ctx)
	// Fallback: force exit if Quit() didn't work
	time.AfterFunc(quitGrace, func() {
		os.Exit(code)
	})
}

func (a *App) probeEndpoint() {
	u := a.shell.Endpoint()
	if u == nil {
		return
	}
	if err := endpoint.Probe(a.ctx, u, 3*time.Second); err != nil {
		log.Warn().Err(err).Str("endpoint", u.String()).Msg("Development server not reachable, is `npm run dev` running?")
	}
}
