package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// Edit command flags.
var (
	editFlagEnd  string
	editFlagNote string
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Correct the end time or note of a recorded fast",
	Long: `Correct a recorded fast. Moving the end time recomputes its hours and
status against the target it was started with. ID may be the full id or a
unique part of it, as shown by 'fastpilot history'.

Examples:
  fastpilot edit 3f9a12c4 --end 'today 11:30'
  fastpilot edit 3f9a12c4 --note 'felt great'`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editFlagEnd, "end", "e", "", "New end time")
	editCmd.Flags().StringVarP(&editFlagNote, "note", "n", "", "Replace the note")

	editCmd.ValidArgsFunction = completeFastIDs

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()

	endChanged := cmd.Flags().Changed("end")
	noteChanged := cmd.Flags().Changed("note")
	if !endChanged && !noteChanged {
		return errors.NewUserError(
			"nothing to change",
			"Pass --end and/or --note.")
	}

	id, err := resolveFastID(args[0])
	if err != nil {
		return err
	}

	var note string
	if noteChanged {
		if note, err = cleanNote(editFlagNote); err != nil {
			return err
		}
	}

	var rec model.FastRecord
	if endChanged {
		end, perr := parsePastTime("end", editFlagEnd, now)
		if perr != nil {
			return perr
		}
		if rec, err = ctx.Tracker.AdjustEndTime(id, end); err != nil {
			return ctx.Check(err, "edit")
		}
	}
	if noteChanged {
		if rec, err = ctx.Tracker.UpdateNotes(id, note); err != nil {
			return ctx.Check(err, "edit")
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintFast("updated", &rec)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Fast updated")
	cli.PrintFast(&rec)
	return nil
}
