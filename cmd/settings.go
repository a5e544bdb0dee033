package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/parser"
	"github.com/manav03panchal/fastpilot/internal/validate"
)

// Settings command flags.
var (
	settingsFlagMethod        string
	settingsFlagStartTime     string
	settingsFlagWeeklyGoal    int
	settingsFlagNotifications bool
	settingsFlagCustomFast    string
	settingsFlagCustomEat     string
)

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config", "prefs"},
	Short:   "Show or change your settings",
	Long: `Show your settings, or change them with flags. The default method cannot
be switched while a fast is running.

Examples:
  fastpilot settings
  fastpilot settings --method 18-6
  fastpilot settings --weekly-goal 6 --start-time 19:30
  fastpilot settings --method custom --custom-fast 17h --custom-eat 7h`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringVarP(&settingsFlagMethod, "method", "m", "", "Default fasting method id")
	settingsCmd.Flags().StringVar(&settingsFlagStartTime, "start-time", "", "Usual fast start time (HH:MM)")
	settingsCmd.Flags().IntVar(&settingsFlagWeeklyGoal, "weekly-goal", model.DefaultWeeklyGoal, "Fasting days per week (0-7)")
	settingsCmd.Flags().BoolVar(&settingsFlagNotifications, "notifications", false, "Enable notifications")
	settingsCmd.Flags().StringVar(&settingsFlagCustomFast, "custom-fast", "", "Fasting window of the custom method (e.g. 17h)")
	settingsCmd.Flags().StringVar(&settingsFlagCustomEat, "custom-eat", "", "Eating window of the custom method (e.g. 7h, 0)")

	settingsCmd.RegisterFlagCompletionFunc("method", completeMethods)

	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := ctx.Gateway.Settings.Get()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	changed := flags.Changed("method") || flags.Changed("start-time") || flags.Changed("weekly-goal") ||
		flags.Changed("notifications") || flags.Changed("custom-fast") || flags.Changed("custom-eat")

	if changed {
		if settings, err = applySettings(cmd, settings); err != nil {
			return err
		}
	}

	method, err := ctx.Tracker.ResolveMethod(settings.MethodID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(settings, method)
	}

	cli := ctx.CLIFormatter()
	if changed {
		cli.Success("Settings saved")
	}
	cli.PrintSettings(settings, method)
	return nil
}

// applySettings validates every changed field before saving anything, then
// switches the method (refused while a fast runs) and saves the rest.
func applySettings(cmd *cobra.Command, s model.Settings) (model.Settings, error) {
	flags := cmd.Flags()

	if flags.Changed("start-time") {
		s.StartTime = strings.TrimSpace(settingsFlagStartTime)
	}
	if flags.Changed("weekly-goal") {
		s.WeeklyGoal = settingsFlagWeeklyGoal
	}
	if flags.Changed("notifications") {
		s.Notifications = settingsFlagNotifications
	}
	if flags.Changed("custom-fast") {
		h, err := parseWindow(settingsFlagCustomFast)
		if err != nil {
			return s, err
		}
		s.CustomFastHours = h
	}
	if flags.Changed("custom-eat") {
		h, err := parseWindow(settingsFlagCustomEat)
		if err != nil {
			return s, err
		}
		s.CustomEatHours = h
	}
	if err := validate.Settings(ctx.Catalog, s); err != nil {
		return s, err
	}

	if flags.Changed("method") {
		methodID := strings.TrimSpace(settingsFlagMethod)
		if err := checkMethod(methodID); err != nil {
			return s, err
		}
		if methodID != s.MethodID {
			switched, err := ctx.Tracker.SwitchMethod(methodID)
			if err != nil {
				return s, ctx.Check(err, "settings")
			}
			s.MethodID = switched.MethodID
		}
	}

	if err := ctx.Gateway.Settings.Save(s); err != nil {
		return s, ctx.Check(err, "settings")
	}
	return s, nil
}

// parseWindow parses a window length in hours. "0" is allowed for eating windows.
func parseWindow(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "0" || input == "0h" {
		return 0, nil
	}
	h, err := parser.ParseHours(input)
	if err != nil {
		return 0, parser.AsUserError(err)
	}
	return h, nil
}
