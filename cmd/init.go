package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/validate"
)

// Init command flags.
var (
	initFlagMethod     string
	initFlagWeeklyGoal int
	initFlagForce      bool
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"setup", "onboard"},
	Short:   "Set up FastPilot with a method and weekly goal",
	Long: `Pick your default fasting method and how many days a week you aim to
fast. Run 'fastpilot methods' to see the choices.

Examples:
  fastpilot init
  fastpilot init --method 18-6 --weekly-goal 4`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initFlagMethod, "method", "m", model.DefaultMethodID, "Default fasting method id")
	initCmd.Flags().IntVar(&initFlagWeeklyGoal, "weekly-goal", model.DefaultWeeklyGoal, "Fasting days per week (0-7)")
	initCmd.Flags().BoolVar(&initFlagForce, "force", false, "Run setup again even if already done")

	initCmd.RegisterFlagCompletionFunc("method", completeMethods)

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	onboarded, err := ctx.Gateway.Onboarding.IsOnboarded()
	if err != nil {
		return err
	}
	if onboarded && !initFlagForce {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]any{"status": "already_onboarded", "onboarded": true})
		}
		ctx.CLIFormatter().Muted("FastPilot is already set up. Use 'fastpilot settings' to change it, or --force to redo setup.")
		return nil
	}

	methodID := strings.TrimSpace(initFlagMethod)
	if err := checkMethod(methodID); err != nil {
		return err
	}
	if err := validate.WeeklyGoal(initFlagWeeklyGoal); err != nil {
		return err
	}

	settings, err := ctx.Gateway.Settings.Get()
	if err != nil {
		return err
	}
	if methodID != settings.MethodID {
		if settings, err = ctx.Tracker.SwitchMethod(methodID); err != nil {
			return ctx.Check(err, "init")
		}
	}
	settings.WeeklyGoal = initFlagWeeklyGoal
	if err := ctx.Gateway.Settings.Save(settings); err != nil {
		return ctx.Check(err, "init")
	}
	if err := ctx.Gateway.Onboarding.SetOnboarded(true); err != nil {
		return ctx.Check(err, "init")
	}

	method, err := ctx.Tracker.ResolveMethod(settings.MethodID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(settings, method)
	}

	cli := ctx.CLIFormatter()
	cli.Success("FastPilot is ready")
	cli.PrintSettings(settings, method)
	cli.Println()
	cli.Muted("Start your first fast with 'fastpilot start'.")
	return nil
}
