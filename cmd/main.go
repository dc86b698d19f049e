package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"progresscountdown/internal/config"
	"progresscountdown/internal/storage"
	"progresscountdown/internal/ui/preferences"
)

const (
	appName = "ProgressCountdown"
	appID   = "com.progresscountdown.app"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// runtime is what every command needs once flags and config are resolved.
type runtime struct {
	settings preferences.Settings
	store    *storage.Store
	logger   *slog.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configFile string
		verbose    bool
		rt         runtime
	)

	root := &cobra.Command{
		Use:          "progresscountdown",
		Short:        "Circular countdown timer",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rt.logger = newLogger(verbose)
			slog.SetDefault(rt.logger)

			store, err := storage.NewStore(appName)
			if err != nil {
				return err
			}
			if configFile != "" {
				store.UseSettingsFile(configFile)
			}

			loader := config.New()
			if err := loader.BindFlags(cmd); err != nil {
				return err
			}
			settings, err := loader.Load(store.SettingsPath())
			if err != nil {
				return err
			}
			if used := loader.ConfigFileUsed(); used != "" {
				rt.logger.Debug("settings loaded", "path", used)
			}

			rt.settings = settings
			rt.store = store
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDesktop(rt)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "settings file (default is the user config directory)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	config.AddFlags(root)

	root.AddCommand(
		newTUICommand(&rt),
		newPreviewCommand(&rt),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:              "version",
		Short:            "Print the version",
		Args:             cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
