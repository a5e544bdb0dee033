package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/metrics"
)

// milestonesCmd represents the milestones command.
var milestonesCmd = &cobra.Command{
	Use:     "milestones",
	Aliases: []string{"badges", "achievements"},
	Short:   "Show fasting milestones",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fasts, err := ctx.Gateway.Fasts.All()
		if err != nil {
			return err
		}

		ms := metrics.Milestones(fasts, ctx.Clock().Location())

		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintMilestones(ms)
		}

		ctx.CLIFormatter().PrintMilestones(ms)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
}
