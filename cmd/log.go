package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// Log command flags.
var (
	logFlagStart  string
	logFlagEnd    string
	logFlagMethod string
	logFlagNote   string
)

// logCmd represents the log command.
var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"add", "record"},
	Short:   "Record a past fast",
	Long: `Record a fast you did not time live. The record is marked as manual and
its status is computed against the method's target.

Examples:
  fastpilot log --start 'yesterday 8pm' --end 'today 12:00'
  fastpilot log --start '2025-03-01 20:00' --end '2025-03-02 14:00' --method 18-6
  fastpilot log --start -20h --note 'travel day'`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logFlagStart, "start", "s", "", "When the fast began (required)")
	logCmd.Flags().StringVarP(&logFlagEnd, "end", "e", "now", "When the fast ended")
	logCmd.Flags().StringVarP(&logFlagMethod, "method", "m", "", "Fasting method id (default from settings)")
	logCmd.Flags().StringVarP(&logFlagNote, "note", "n", "", "Note to attach to the fast")

	logCmd.MarkFlagRequired("start")
	logCmd.RegisterFlagCompletionFunc("method", completeMethods)

	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()
	methodID := strings.TrimSpace(logFlagMethod)
	if err := checkMethod(methodID); err != nil {
		return err
	}

	note, err := cleanNote(logFlagNote)
	if err != nil {
		return err
	}

	start, err := parsePastTime("start", logFlagStart, now)
	if err != nil {
		return err
	}
	end, err := parsePastTime("end", logFlagEnd, now)
	if err != nil {
		return err
	}

	rec, err := ctx.Tracker.RecordManual(methodID, start, end, note)
	if err != nil {
		return ctx.Check(err, "log")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintFast("logged", &rec)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Fast recorded")
	cli.PrintFast(&rec)
	return nil
}
