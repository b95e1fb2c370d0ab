// Package cli implements the command-line interface for neonfocus.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"neonfocus/internal/storage"
	"neonfocus/internal/ui/preferences"
)

// AppName names the settings directory and the single-instance lock.
const AppName = "NeonFocus"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

type options struct {
	configPath   string
	focusMinutes int
	breakMinutes int
}

// Runners are the long-running frontends started by the commands.
type Runners struct {
	Desktop  func(settings preferences.Settings, configPath string) error
	Terminal func(settings preferences.Settings, out io.Writer) error
}

// Execute runs the root command with the real frontends.
func Execute() error {
	return NewRootCmd(Runners{
		Desktop:  runDesktop,
		Terminal: runTerminal,
	}).Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd(runners Runners) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "neonfocus",
		Short: "Pomodoro focus timer",
		Long: `NeonFocus counts down a focus interval, then cycles through short and long
breaks, tracks completed sessions and keeps a small task checklist.

Without a subcommand it opens the desktop window and tray icon.`,
		Version:      fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd, opts)
			if err != nil {
				return err
			}
			if runners.Desktop == nil {
				return fmt.Errorf("desktop frontend unavailable")
			}
			return runners.Desktop(settings, opts.configPath)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Settings file (default: <user config dir>/NeonFocus/settings.yaml)")
	flags.IntVarP(&opts.focusMinutes, "focus", "f", 0, "Focus length in minutes (overrides the settings file)")
	flags.IntVarP(&opts.breakMinutes, "break", "b", 0, "Short break length in minutes (overrides the settings file)")

	rootCmd.AddCommand(newTUICmd(opts, runners))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolveSettings applies defaults, then the settings file, then explicit flags.
func resolveSettings(cmd *cobra.Command, opts *options) (preferences.Settings, error) {
	settings, err := storage.LoadSettings(AppName, opts.configPath)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if cmd.Flags().Changed("focus") {
		if opts.focusMinutes <= 0 {
			return settings, fmt.Errorf("--focus must be positive, got %d", opts.focusMinutes)
		}
		settings.FocusMinutes = opts.focusMinutes
	}
	if cmd.Flags().Changed("break") {
		if opts.breakMinutes <= 0 {
			return settings, fmt.Errorf("--break must be positive, got %d", opts.breakMinutes)
		}
		settings.BreakMinutes = opts.breakMinutes
	}
	return settings, nil
}
