package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/output"
)

var deleteFlagYes bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a recorded fast",
	Long: `Delete a fast from your history. ID may be the full id or a unique part
of it, as shown by 'fastpilot history'.

Examples:
  fastpilot delete 3f9a12c4
  fastpilot delete 3f9a12c4 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteFlagYes, "yes", "y", false, "Skip confirmation prompt")

	deleteCmd.ValidArgsFunction = completeFastIDs

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := resolveFastID(args[0])
	if err != nil {
		return err
	}

	rec, err := ctx.Gateway.Fasts.Get(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.ErrFastNotFound
	}

	if !deleteFlagYes && !ctx.IsJSON() {
		ctx.CLIFormatter().PrintFast(rec)
	}
	ok, err := confirm(cmd, deleteFlagYes, "Delete this fast? (y/N): ")
	if err != nil {
		return err
	}
	if !ok {
		ctx.CLIFormatter().Muted("Cancelled")
		return nil
	}

	if _, err := ctx.Tracker.Delete(id); err != nil {
		return ctx.Check(err, "delete")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintFast("deleted", rec)
	}

	ctx.CLIFormatter().Success("Deleted fast " + output.ShortID(id))
	return nil
}
