package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/output"
	"github.com/manav03panchal/fastpilot/internal/validate"
)

// Export command flags.
var (
	exportFlagOutput string
	exportFlagCSV    bool
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup", "dump"},
	Short:   "Export settings and fast history",
	Long: `Export your settings and full fast history as a JSON document that
'fastpilot import' can read back. With --csv, only the history is written,
one fast per row. When --output names a directory, a dated file is created
inside it.

Examples:
  fastpilot export > fasts.json
  fastpilot export -o fasts.json
  fastpilot export -o ~/Backups
  fastpilot export --csv -o fasts.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file or directory (stdout if omitted)")
	exportCmd.Flags().BoolVar(&exportFlagCSV, "csv", false, "Write the history as CSV")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	now := ctx.Clock()

	doc, err := ctx.Gateway.ExportAll(now)
	if err != nil {
		return err
	}

	if exportFlagOutput == "" || exportFlagOutput == "-" {
		return writeExport(cmd.OutOrStdout(), doc)
	}

	path := exportPath(exportFlagOutput, now)
	f, err := os.Create(path)
	if err != nil {
		return ctx.Check(err, "export")
	}
	if err := writeExport(f, doc); err != nil {
		f.Close()
		return ctx.Check(err, "export")
	}
	if err := f.Close(); err != nil {
		return ctx.Check(err, "export")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "exported",
			"path":   path,
			"count":  len(doc.Fasts),
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Exported %d fasts to %s", len(doc.Fasts), path))
	return nil
}

// exportPath returns target, or a dated file inside it when target is a directory.
func exportPath(target string, now time.Time) string {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return target
	}
	ext := ".json"
	if exportFlagCSV {
		ext = ".csv"
	}
	name := validate.SafeFilename("fastpilot-export-" + now.Format("2006-01-02") + ext)
	return filepath.Join(target, name)
}

func writeExport(w io.Writer, doc *model.ExportDocument) error {
	if exportFlagCSV {
		return exportCSV(w, doc.Fasts)
	}
	return exportJSON(w, doc)
}

func exportJSON(w io.Writer, doc *model.ExportDocument) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func exportCSV(w io.Writer, fasts []model.FastRecord) error {
	writer := csv.NewWriter(w)

	// Write header
	if err := writer.Write([]string{
		"id", "method_id", "method_name", "target_hours", "start_time", "end_time",
		"actual_hours", "status", "notes", "manual",
	}); err != nil {
		return err
	}

	// Write rows
	for i := range fasts {
		row := output.NewFastOutput(&fasts[i])
		if err := writer.Write([]string{
			row.ID,
			row.MethodID,
			row.MethodName,
			formatFloat(row.TargetHours),
			row.StartTime,
			row.EndTime,
			formatFloat(row.ActualHours),
			row.Status,
			row.Notes,
			strconv.FormatBool(row.Manual),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
