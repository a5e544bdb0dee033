// Package cmd provides the CLI commands for FastPilot.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/config"
	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/logging"
	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/output"
	"github.com/manav03panchal/fastpilot/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// reqCtx carries the request id for the current invocation.
var reqCtx = context.Background()

// ctxClosed guards against closing the runtime twice when a command fails
// and post-run is skipped.
var ctxClosed bool

// nowFunc is the clock handed to the runtime context.
var nowFunc = time.Now

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fastpilot",
	Short: "An intermittent fasting tracker for the terminal",
	Long: `FastPilot tracks intermittent fasts from the command line: start a
fast, end it when you eat, and review streaks, scores and calendars.

Examples:
  fastpilot start
  fastpilot start --method 18-6 --at '8pm yesterday'
  fastpilot end
  fastpilot stats month
  fastpilot calendar 2025-03`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setupContext,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeContext() },
	RunE:               runStatus,
}

// skipsContext reports whether cmd runs without a database.
func skipsContext(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "completion", "help", "version":
		return true
	}
	return false
}

func setupContext(cmd *cobra.Command, args []string) error {
	if skipsContext(cmd) {
		return nil
	}

	if flagDebug {
		logging.InitDebug()
	} else {
		logging.Init(logging.Config{
			Level:  logging.ParseLevel(config.Global.Logging.Level, slog.LevelError),
			Output: cmd.ErrOrStderr(),
		})
	}

	prefs := config.LoadPrefs(config.DefaultPrefsPath())

	format, err := resolveFormat(cmd, prefs.Format)
	if err != nil {
		return err
	}
	colorMode, err := resolveColor(cmd, prefs.Color)
	if err != nil {
		return err
	}

	opts := runtime.DefaultOptions()
	opts.Format = format
	opts.ColorMode = colorMode
	opts.Debug = flagDebug
	opts.Prefs = &prefs

	c, err := runtime.New(opts)
	if err != nil {
		return err
	}
	c.Formatter.Writer = cmd.OutOrStdout()
	c.Now = nowFunc

	ctx = c
	ctxClosed = false
	reqCtx = logging.NewRequestContext()
	logging.FromContext(reqCtx).Debug("command started",
		logging.KeyOperation, cmd.Name(),
		"format", string(format))
	return nil
}

// resolveFormat picks the output format. An explicit flag must be valid; a bad
// value in the preferences file falls back to the default.
func resolveFormat(cmd *cobra.Command, pref string) (output.Format, error) {
	if cmd.Flags().Changed("format") {
		return output.ParseFormat(flagFormat)
	}
	format, err := output.ParseFormat(pref)
	if err != nil {
		logging.Warn("ignoring format from config file", "value", pref)
		return output.FormatCLI, nil
	}
	return format, nil
}

func resolveColor(cmd *cobra.Command, pref string) (output.ColorMode, error) {
	if cmd.Flags().Changed("color") {
		return output.ParseColorMode(flagColor)
	}
	mode, err := output.ParseColorMode(pref)
	if err != nil {
		logging.Warn("ignoring color from config file", "value", pref)
		return output.ColorAuto, nil
	}
	return mode, nil
}

func closeContext() error {
	if ctx == nil || ctxClosed {
		return nil
	}
	ctxClosed = true
	return ctx.Close()
}

// runStatus shows the active fast and the quick stats.
func runStatus(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()

	active, err := ctx.Tracker.Active()
	if err != nil {
		return err
	}
	quick, err := quickStats(now)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(active, now, quick)
	}

	cli := ctx.CLIFormatter()
	cli.PrintStatus(active, now, quick)

	onboarded, err := ctx.Gateway.Onboarding.IsOnboarded()
	if err == nil && !onboarded && active == nil {
		cli.Println()
		cli.Muted("New here? Run 'fastpilot init' to pick a method and weekly goal.")
	}
	return nil
}

func quickStats(now time.Time) (metrics.QuickStats, error) {
	fasts, err := ctx.Gateway.Fasts.All()
	if err != nil {
		return metrics.QuickStats{}, err
	}
	settings, err := ctx.Gateway.Settings.Get()
	if err != nil {
		return metrics.QuickStats{}, err
	}
	return metrics.Quick(fasts, now, settings.WeeklyGoal), nil
}

// Execute runs the root command, prints any error and releases the runtime.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	if cerr := closeContext(); cerr != nil && err == nil {
		err = cerr
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// printError writes err as a JSON error object in JSON mode, otherwise as
// "Error: ..." followed by a suggestion when one is known.
func printError(w io.Writer, err error) {
	suggestion := errors.GetSuggestion(err)

	if ctx != nil && ctx.IsJSON() {
		status := "error"
		if errors.Classify(err) == errors.CategoryUser {
			status = "invalid"
		}
		if jerr := ctx.JSONFormatter().PrintError(status, err.Error(), suggestion); jerr == nil {
			return
		}
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
	if suggestion != "" {
		fmt.Fprintf(w, "  %s\n", suggestion)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion("cli", "json", "plain"))
	rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion("auto", "always", "never"))

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fastpilot %s\n", Version)
		fmt.Fprintf(out, "  commit: %s\n", Commit)
		fmt.Fprintf(out, "  built: %s\n", BuildTime)
	},
}
