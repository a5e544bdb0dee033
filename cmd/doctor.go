package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/storage"
)

// Doctor command flags.
var (
	doctorFlagRepair  bool
	doctorFlagBackup  bool
	doctorFlagDir     string
	doctorFlagRestore string
	doctorFlagYes     bool
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check stored data and manage database backups",
	Long: `Check that every stored value can be read. Unreadable values already fall
back to defaults when read; --repair removes them for good. --backup writes a
full database backup, into --dir or a backups directory next to the
database, and --restore loads one back.

Examples:
  fastpilot doctor
  fastpilot doctor --repair
  fastpilot doctor --backup --dir ~/Backups
  fastpilot doctor --restore ~/Backups/db-backup-20250301-120000.bak`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorFlagRepair, "repair", false, "Remove values that cannot be read")
	doctorCmd.Flags().BoolVar(&doctorFlagBackup, "backup", false, "Write a full database backup")
	doctorCmd.Flags().StringVar(&doctorFlagDir, "dir", "", "Backup directory (default: backups next to the database)")
	doctorCmd.Flags().StringVar(&doctorFlagRestore, "restore", "", "Load a database backup from this file")
	doctorCmd.Flags().BoolVarP(&doctorFlagYes, "yes", "y", false, "Skip confirmation prompts")

	doctorCmd.MarkFlagsMutuallyExclusive("backup", "restore")

	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	if cmd.Flags().Changed("restore") {
		ok, err := confirm(cmd, doctorFlagYes, "Restoring loads the backup over your current data. Continue? (y/N): ")
		if err != nil {
			return err
		}
		if !ok {
			cli.Muted("Nothing was restored")
			return nil
		}
		if err := storage.RestoreBackup(ctx.DB, doctorFlagRestore); err != nil {
			return ctx.Check(err, "restore")
		}
		if !ctx.IsJSON() {
			cli.Success("Backup restored from " + doctorFlagRestore)
		}
	}

	var backupPath string
	if doctorFlagBackup {
		path, err := storage.CreateBackup(ctx.DB, doctorFlagDir)
		if err != nil {
			return ctx.Check(err, "backup")
		}
		backupPath = path
		if !ctx.IsJSON() {
			cli.Success("Backup written to " + path)
		}
	}

	status := storage.CheckDatabaseIntegrity(ctx.DB)

	var removed []string
	if doctorFlagRepair && !status.Healthy {
		var err error
		if removed, err = storage.RepairCorruptKeys(ctx.DB); err != nil {
			return ctx.Check(err, "repair")
		}
		status = storage.CheckDatabaseIntegrity(ctx.DB)
	}
	status.BackupPath = backupPath

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(struct {
			*storage.RecoveryStatus
			Repaired []string `json:"repaired,omitempty"`
		}{status, removed})
	}

	cli.Title("Database")
	if path := ctx.DB.Path(); path != "" {
		cli.Printf("  Path: %s\n", path)
	} else {
		cli.Printf("  Path: (in memory)\n")
	}
	for _, ks := range status.Keys {
		state := "ok"
		switch {
		case !ks.Valid:
			state = "unreadable: " + ks.Error
		case !ks.Present:
			state = "not set"
		}
		cli.Printf("  %-24s %s\n", ks.Key, state)
	}
	cli.Println()

	for _, key := range removed {
		cli.Warning("Removed unreadable " + key)
	}
	if status.Healthy {
		cli.Success("All stored data is readable")
		return nil
	}
	cli.Error(fmt.Sprintf("%d value(s) cannot be read; they are treated as defaults", status.ErrorCount))
	cli.Muted("Run 'fastpilot doctor --repair' to remove them.")
	return nil
}
