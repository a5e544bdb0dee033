package cmd

import (
	"github.com/spf13/cobra"
)

var clearFlagYes bool

// clearCmd represents the clear command.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all FastPilot data",
	Long: `Erase your settings, fast history, active fast and setup state. Export
first if you may want the data back.

Examples:
  fastpilot export -o fasts.json && fastpilot clear --yes`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearFlagYes, "yes", "y", false, "Skip confirmation prompt")

	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	ok, err := confirm(cmd, clearFlagYes, "Erase all data? This cannot be undone. (y/N): ")
	if err != nil {
		return err
	}
	if !ok {
		ctx.CLIFormatter().Muted("Nothing was erased")
		return nil
	}

	if err := ctx.Gateway.ClearAll(); err != nil {
		return ctx.Check(err, "clear")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "cleared"})
	}

	ctx.CLIFormatter().Success("All data erased")
	return nil
}
