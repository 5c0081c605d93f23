package cli

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jortask-app/internal/autostart"
	"jortask-app/internal/config"
	"jortask-app/internal/endpoint"
	"jortask-app/internal/singleinstance"
)

const probeTimeout = 3 * time.Second

var (
	appVersion = "1.0.0"
	buildMode  = endpoint.Debug

	// swapped in tests
	loadConfig     = config.Get
	signalExisting = singleinstance.SignalExisting
)

func SetVersion(v string) {
	appVersion = v
}

func SetBuildMode(m endpoint.Mode) {
	buildMode = m
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jortask",
		Short:         "JOR Task Manager desktop shell",
		Long:          "Runs the JOR Task Manager dashboard in a native window with a tray icon.\nRun without arguments to start the app.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newEndpointCmd(),
		newConfigCmd(),
		newAutostartCmd(),
		newShowCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "JOR Task Manager v%s\n", appVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "Build:    %s\n", buildMode)
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}

func newEndpointCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "endpoint",
		Short: "Print the URL the window loads",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := endpoint.Resolve(buildMode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.String())
			if probe {
				if err := endpoint.Probe(cmd.Context(), u, probeTimeout); err != nil {
					return fmt.Errorf("endpoint not reachable: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "reachable")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Check that the endpoint accepts connections")
	return cmd
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.NormalizeKey(args[0])
			value := args[1]

			cfg := loadConfig()
			if err := config.Set(cfg, key, value); err != nil {
				return err
			}
			if err := cfg.WriteConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			if key == "launch_on_startup" {
				if err := syncAutostart(cfg); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config set: %s = %s\n", key, value)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show all config values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration")
			fmt.Fprintln(cmd.OutOrStdout(), "─────────────")
			for _, key := range config.Keys() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", key+":", cfg.GetString(key))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", "config_file:", cfg.ConfigFileUsed())
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := config.CheckKey(args[0])
			if err != nil {
				return err
			}
			cfg := loadConfig()
			fmt.Fprintln(cmd.OutOrStdout(), cfg.GetString(key))
			return nil
		},
	}

	configCmd.AddCommand(setCmd, showCmd, getCmd)
	return configCmd
}

func newAutostartCmd() *cobra.Command {
	autostartCmd := &cobra.Command{
		Use:   "autostart",
		Short: "Launch the app hidden at login",
	}

	toggle := func(use, short string, enabled bool) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := loadConfig()
				cfg.Set("launch_on_startup", enabled)
				if err := cfg.WriteConfig(); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				if err := syncAutostart(cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Launch on startup: %v\n", enabled)
				return nil
			},
		}
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the login entry exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := autostart.IsEnabled()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Launch on startup: %v\n", enabled)
			return nil
		},
	}

	autostartCmd.AddCommand(
		toggle("enable", "Create the login entry", true),
		toggle("disable", "Remove the login entry", false),
		statusCmd,
	)
	return autostartCmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the window of the running instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signalExisting(); err != nil {
				return fmt.Errorf("no running instance: %w", err)
			}
			return nil
		},
	}
}

func syncAutostart(cfg *viper.Viper) error {
	if err := autostart.Sync(cfg.GetBool("launch_on_startup")); err != nil {
		return fmt.Errorf("failed to update login entry: %w", err)
	}
	return nil
}
