package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// History command flags.
var (
	historyFlagMethod string
	historyFlagStatus string
	historyFlagLimit  int
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h", "list", "ls"},
	Short:   "List recorded fasts, newest first",
	Long: `List recorded fasts, newest first.

Examples:
  fastpilot history
  fastpilot history --status completed
  fastpilot history --method 18-6 --limit 5
  fastpilot history --limit 0`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFlagMethod, "method", "m", "", "Only fasts with this method id")
	historyCmd.Flags().StringVar(&historyFlagStatus, "status", "", "Only fasts with this status: completed, partial, cancelled")
	historyCmd.Flags().IntVarP(&historyFlagLimit, "limit", "n", 20, "Maximum fasts to show (0 for all)")

	historyCmd.RegisterFlagCompletionFunc("method", completeMethods)
	historyCmd.RegisterFlagCompletionFunc("status", fixedCompletion("completed", "partial", "cancelled"))

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	methodID := strings.TrimSpace(historyFlagMethod)
	if err := checkMethod(methodID); err != nil {
		return err
	}

	status := model.Status(strings.ToLower(strings.TrimSpace(historyFlagStatus)))
	if status != "" && !status.Valid() {
		return errors.NewUserErrorWithField("status", historyFlagStatus,
			"unknown status",
			"Use one of: completed, partial, cancelled.")
	}
	if historyFlagLimit < 0 {
		return errors.NewUserErrorWithField("limit", "negative",
			"limit cannot be negative",
			"Use 0 to show every fast.")
	}

	fasts, err := ctx.Gateway.Fasts.All()
	if err != nil {
		return err
	}

	fasts = filterHistory(fasts, methodID, status)
	model.SortNewestFirst(fasts)

	total := len(fasts)
	if historyFlagLimit > 0 && len(fasts) > historyFlagLimit {
		fasts = fasts[:historyFlagLimit]
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintHistory(fasts, total)
	}

	ctx.CLIFormatter().PrintHistory(fasts, total)
	return nil
}

// filterHistory keeps fasts matching methodID and status; empty values match all.
func filterHistory(fasts []model.FastRecord, methodID string, status model.Status) []model.FastRecord {
	if status != "" {
		fasts = model.FilterByStatus(fasts, status)
	}
	if methodID == "" {
		return fasts
	}

	var result []model.FastRecord
	for _, f := range fasts {
		if f.MethodID == methodID {
			result = append(result, f)
		}
	}
	return result
}
