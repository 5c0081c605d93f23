package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"jortask-app/frontend"
	"jortask-app/internal/assets"
	"jortask-app/internal/autostart"
	"jortask-app/internal/cli"
	"jortask-app/internal/config"
	"jortask-app/internal/endpoint"
	"jortask-app/internal/logging"
	"jortask-app/internal/shell"
	"jortask-app/internal/singleinstance"
	"jortask-app/internal/window"
)

var version = "1.0.0"

func main() {
	// Extract --hidden flag before routing to CLI or GUI
	hidden := false
	isBindings := false
	filteredArgs := []string{os.Args[0]}
	for _, arg := range os.Args[1:] {
		if arg == "--hidden" {
			hidden = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
		if arg == "--bindings" || arg == "-bindings" {
			isBindings = true
		}
	}
	os.Args = filteredArgs

	mode, err := endpoint.ParseMode(buildMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && !isBindings {
		runCLI(mode)
		return
	}

	// Skip single-instance check during Wails binding generation
	var (
		lock     *singleinstance.Lock
		requests *singleinstance.ShowRequests
	)
	if !isBindings {
		// Catch show requests before Acquire publishes our PID.
		requests, err = singleinstance.WatchShowRequests()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		lock, err = singleinstance.Acquire()
		if errors.Is(err, singleinstance.ErrAlreadyRunning) {
			if err := singleinstance.SignalExisting(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(0)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	code := runGUI(mode, hidden, requests)
	if requests != nil {
		requests.Stop()
	}
	if lock != nil {
		lock.Release()
	}
	os.Exit(code)
}

func runCLI(mode endpoint.Mode) {
	cli.SetVersion(version)
	cli.SetBuildMode(mode)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runGUI(mode endpoint.Mode, hidden bool, requests *singleinstance.ShowRequests) int {
	settings, err := config.Load(config.Get())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		settings = config.Defaults()
	}
	if hidden {
		settings.StartHidden = true
	}

	closer := logging.Setup(settings.LogLevel, config.GetConfigDir())
	defer closer.Close()

	log.Info().Str("version", version).Str("mode", mode.String()).Msg("Starting JOR Task Manager")

	if err := autostart.Sync(settings.LaunchOnStartup); err != nil {
		log.Warn().Err(err).Msg("Failed to sync launch on startup")
	}

	app := NewApp(mode, settings, requests)
	app.version = version

	err = wails.Run(&options.App{
		Title:       shell.Title,
		Width:       shell.Width,
		Height:      shell.Height,
		StartHidden: settings.StartHidden,
		AssetServer: &assetserver.Options{
			Assets: frontend.Assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		WindowStartState: options.Normal,
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		OnBeforeClose:    app.beforeClose,
		Bind: []interface{}{
			app,
		},
		Windows: &windows.Options{
			Theme: windows.SystemDefault,
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   shell.Title,
				Message: "Your tasks, goals and routines in one dashboard",
				Icon:    assets.AppIcon,
			},
		},
		Linux: &linux.Options{
			Icon:        assets.AppIcon,
			ProgramName: shell.Title,
		},
	})

	if err != nil {
		// Wails allocates the native window itself; failing here means
		// there is no window to drive.
		log.Error().Err(&window.CreationError{Name: window.MainName, Err: err}).Msg("Shell failed")
		return 1
	}
	if err := app.setupError(); err != nil {
		log.Error().Err(err).Msg("Shell setup failed")
		return 1
	}
	return app.exitStatus()
}
