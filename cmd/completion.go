package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/output"
	"github.com/manav03panchal/fastpilot/internal/runtime"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for fastpilot.

To load completions:

Bash:
  $ source <(fastpilot completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ fastpilot completion zsh > "${fpath[1]}/_fastpilot"

Fish:
  $ fastpilot completion fish > ~/.config/fish/completions/fastpilot.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// fixedCompletion completes from a fixed list of values.
func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				matches = append(matches, v)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeMethods completes method ids with their names.
func completeMethods(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, m := range catalog.New().All() {
		if strings.HasPrefix(m.ID, toComplete) {
			completions = append(completions, m.ID+"\t"+m.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeFastIDs completes the short ids of recorded fasts. Completion runs
// without the pre-run hook, so it opens its own runtime.
func completeFastIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	c, err := runtime.New(runtime.DefaultOptions())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer c.Close()

	fasts, err := c.Gateway.Fasts.All()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	model.SortNewestFirst(fasts)

	var completions []string
	for _, f := range fasts {
		short := output.ShortID(f.ID)
		if strings.HasPrefix(short, toComplete) {
			completions = append(completions, short+"\t"+f.MethodName+" "+output.FormatTime(f.StartTime))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
