package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// Start command flags.
var (
	startFlagMethod string
	startFlagAt     string
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s", "begin"},
	Short:   "Start a fast",
	Long: `Start a fast using your default method, or the one given with --method.
The fast's target is fixed when it starts; changing settings later does not
move it.

Examples:
  fastpilot start
  fastpilot start --method 18-6
  fastpilot start --at '8pm yesterday'
  fastpilot start --at -2h`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startFlagMethod, "method", "m", "", "Fasting method id (default from settings)")
	startCmd.Flags().StringVar(&startFlagAt, "at", "", "When the fast began (e.g. '2 hours ago')")

	startCmd.RegisterFlagCompletionFunc("method", completeMethods)

	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()
	methodID := strings.TrimSpace(startFlagMethod)
	if err := checkMethod(methodID); err != nil {
		return err
	}

	var (
		active *model.ActiveFast
		err    error
	)
	if startFlagAt != "" {
		start, perr := parseTime(startFlagAt, now)
		if perr != nil {
			return perr
		}
		active, err = ctx.Tracker.StartRetroactive(methodID, start, now)
	} else {
		active, err = ctx.Tracker.Start(methodID, now)
	}
	if err != nil {
		return ctx.Check(err, "start")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStarted(active, now)
	}

	ctx.CLIFormatter().PrintStarted(active)
	return nil
}
