package cmd

import (
	"github.com/spf13/cobra"
)

// methodsCmd represents the methods command.
var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the available fasting methods",
	Long: `List the fasting methods grouped into daily, weekly and extended
protocols. The current default is marked.`,
	Args: cobra.NoArgs,
	RunE: runMethods,
}

func init() {
	rootCmd.AddCommand(methodsCmd)
}

func runMethods(cmd *cobra.Command, args []string) error {
	settings, err := ctx.Gateway.Settings.Get()
	if err != nil {
		return err
	}

	groups := ctx.Catalog.Groups()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintMethods(groups, settings.MethodID)
	}

	ctx.CLIFormatter().PrintMethods(groups, settings.MethodID)
	return nil
}
