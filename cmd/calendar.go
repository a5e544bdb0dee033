package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/parser"
)

// calendarCmd represents the calendar command.
var calendarCmd = &cobra.Command{
	Use:     "calendar [MONTH]",
	Aliases: []string{"cal"},
	Short:   "Show a month of fasting days",
	Long: `Show a Sunday-first month grid marking completed and partial fast days,
with the month's totals against your monthly goal (weekly goal times the
number of weeks in the month). MONTH defaults to the current month.

Examples:
  fastpilot calendar
  fastpilot calendar 2025-03
  fastpilot calendar 'March 2025'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()

	var input string
	if len(args) > 0 {
		input = args[0]
	}
	year, month, err := parser.ParseMonth(input, now)
	if err != nil {
		return parser.AsUserError(err)
	}

	fasts, err := ctx.Gateway.Fasts.All()
	if err != nil {
		return err
	}
	settings, err := ctx.Gateway.Settings.Get()
	if err != nil {
		return err
	}

	view := metrics.BuildMonth(fasts, year, month, now, settings.WeeklyGoal)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCalendar(view)
	}

	ctx.CLIFormatter().PrintCalendar(view)
	return nil
}
