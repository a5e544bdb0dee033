package cmd

import (
	"github.com/spf13/cobra"
)

// End command flags.
var (
	endFlagAt   string
	endFlagNote string
)

// endCmd represents the end command.
var endCmd = &cobra.Command{
	Use:     "end",
	Aliases: []string{"stop", "e"},
	Short:   "End the active fast",
	Long: `End the active fast and add it to your history. A fast that reached its
target is recorded as completed, otherwise as partial.

Examples:
  fastpilot end
  fastpilot end --at '30 minutes ago'
  fastpilot end --note 'broke fast with eggs'`,
	Args: cobra.NoArgs,
	RunE: runEnd,
}

func init() {
	endCmd.Flags().StringVar(&endFlagAt, "at", "", "When the fast ended (default now)")
	endCmd.Flags().StringVarP(&endFlagNote, "note", "n", "", "Note to attach to the fast")

	rootCmd.AddCommand(endCmd)
}

func runEnd(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()

	note, err := cleanNote(endFlagNote)
	if err != nil {
		return err
	}

	end := now
	if endFlagAt != "" {
		if end, err = parsePastTime("end", endFlagAt, now); err != nil {
			return err
		}
	}

	rec, err := ctx.Tracker.EndWithNotes(end, note)
	if err != nil {
		return ctx.Check(err, "end")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintFast("ended", &rec)
	}

	ctx.CLIFormatter().PrintEnded(&rec)
	return nil
}
