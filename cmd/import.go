package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/errors"
	"github.com/manav03panchal/fastpilot/internal/logging"
)

var importFlagYes bool

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"restore"},
	Short:   "Import settings and history from an export",
	Long: `Replace your fast history, and your settings when the file has them,
with the contents of a file written by 'fastpilot export'. The active fast is
not touched. Use '-' to read from standard input. A file that is not a
FastPilot export is rejected and nothing changes.

Examples:
  fastpilot import fasts.json
  cat fasts.json | fastpilot import - --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importFlagYes, "yes", "y", false, "Skip confirmation prompt")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := readImport(cmd, args[0])
	if err != nil {
		return err
	}

	existing, err := ctx.Gateway.Fasts.All()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		// stdin is already consumed by the document
		skip := importFlagYes || args[0] == "-"
		prompt := fmt.Sprintf("Replace %d recorded fasts? (y/N): ", len(existing))
		ok, err := confirm(cmd, skip, prompt)
		if err != nil {
			return err
		}
		if !ok {
			ctx.CLIFormatter().Muted("Import cancelled")
			return nil
		}
	}

	imported, err := ctx.Gateway.ImportJSON(data)
	if err != nil {
		return ctx.Check(err, "import")
	}
	if !imported {
		return errors.ErrInvalidImport
	}

	fasts, err := ctx.Gateway.Fasts.All()
	if err != nil {
		return err
	}
	logging.FromContext(reqCtx).Info("history imported", logging.KeyCount, len(fasts))

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "imported",
			"count":  len(fasts),
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Imported %d fasts", len(fasts)))
	return nil
}

func readImport(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewUserErrorWithField("file", path,
				"import file not found",
				"Check the path, or pass '-' to read from standard input.")
		}
		return nil, err
	}
	return data, nil
}
