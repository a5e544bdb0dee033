package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/output"
)

// maxConsistencyWeeks bounds the weekly consistency table for long periods.
const maxConsistencyWeeks = 12

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats [PERIOD]",
	Aliases: []string{"analytics", "score"},
	Short:   "Show analytics and the fasting score for a period",
	Long: `Show analytics for a period: totals, completion rate, fasting score,
streaks, weekday averages, start-hour histogram, methods used and weekly
consistency. PERIOD is one of week, month, quarter, year or all. The default
comes from the 'period' key in config.toml.

Examples:
  fastpilot stats
  fastpilot stats month
  fastpilot stats all --format json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: periodNames(),
	RunE:      runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()

	name := ctx.Prefs.Period
	if len(args) > 0 {
		name = args[0]
	}
	period, err := metrics.ParsePeriod(name)
	if err != nil {
		return err
	}

	fasts, err := ctx.Gateway.Fasts.All()
	if err != nil {
		return err
	}
	settings, err := ctx.Gateway.Settings.Get()
	if err != nil {
		return err
	}

	report := buildStatsReport(fasts, period, now, settings.WeeklyGoal)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStats(report)
	}

	ctx.CLIFormatter().PrintStats(report)
	return nil
}

// buildStatsReport computes every analytic for period from the full history.
// Streaks always use the full history; the rest use fasts started in the period.
func buildStatsReport(fasts []model.FastRecord, period metrics.Period, now time.Time, weeklyGoal int) output.StatsReport {
	loc := now.Location()
	start, end := period.Range(now)
	inPeriod := model.FilterByStart(fasts, start, end)
	streak := metrics.CurrentStreak(fasts, now)

	consistencyStart := start
	if earliest := metrics.WeekStart(now).AddDate(0, 0, -7*(maxConsistencyWeeks-1)); consistencyStart.Before(earliest) {
		consistencyStart = earliest
	}

	return output.StatsReport{
		Period:      period,
		Start:       start,
		End:         end,
		Summary:     metrics.Summarize(inPeriod),
		Score:       metrics.FastingScoreWithCap(inPeriod, streak, ctx.Config.Metrics.StreakCapDays, ctx.Catalog),
		Streak:      streak,
		BestStreak:  metrics.BestStreak(fasts, loc),
		Weekdays:    metrics.WeekdayAverages(inPeriod, loc),
		StartHours:  metrics.StartHourHistogram(inPeriod, loc),
		Methods:     metrics.MethodCounts(inPeriod, ctx.Catalog),
		Consistency: metrics.WeeklyConsistency(fasts, consistencyStart, end, weeklyGoal),
	}
}

func periodNames() []string {
	names := make([]string, len(metrics.Periods))
	for i, p := range metrics.Periods {
		names[i] = string(p)
	}
	return names
}
