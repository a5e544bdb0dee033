package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/output"
)

var cancelFlagYes bool

// cancelCmd represents the cancel command.
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the active fast without recording it",
	Long: `Discard the active fast. Nothing is added to your history.

Examples:
  fastpilot cancel
  fastpilot cancel --yes`,
	Args: cobra.NoArgs,
	RunE: runCancel,
}

func init() {
	cancelCmd.Flags().BoolVarP(&cancelFlagYes, "yes", "y", false, "Skip confirmation prompt")

	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()

	active, err := ctx.Tracker.Active()
	if err != nil {
		return err
	}
	if active == nil {
		return errors.ErrNoActiveFast
	}

	if !cancelFlagYes && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Printf("Active: %s, started %s (%s elapsed)\n",
			cli.MethodName(active.MethodName),
			output.FormatTime(active.StartTime),
			output.FormatDuration(active.Elapsed(now)))
	}
	ok, err := confirm(cmd, cancelFlagYes, fmt.Sprintf("Discard this %s fast? (y/N): ", active.MethodName))
	if err != nil {
		return err
	}
	if !ok {
		ctx.CLIFormatter().Muted("Kept the active fast")
		return nil
	}

	cancelled, err := ctx.Tracker.Cancel()
	if err != nil {
		return ctx.Check(err, "cancel")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCancelled(cancelled, now)
	}

	ctx.CLIFormatter().PrintCancelled(cancelled)
	return nil
}
