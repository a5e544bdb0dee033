package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/fastpilot/internal/logging"
	"github.com/manav03panchal/fastpilot/internal/output"
	"github.com/manav03panchal/fastpilot/internal/timer"
	"github.com/manav03panchal/fastpilot/internal/tui"
)

var watchFlagOnce bool

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"dashboard", "timer", "w"},
	Short:   "Show a live timer for the active fast",
	Long: `Show a live dashboard for the active fast, refreshed every second. In an
interactive terminal it opens a full-screen dashboard where you can start,
end or cancel fasts. Otherwise it redraws a plain countdown until
interrupted; --once prints it a single time.

Keys (dashboard):
  s  start a fast      e  end the fast
  c  cancel (twice)    r  refresh
  ?  help              q  quit`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchFlagOnce, "once", false, "Print the timer once and exit")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !watchFlagOnce && !ctx.IsJSON() && ctx.Formatter.IsTerminal() {
		return tui.Run(reqCtx, tui.DashboardConfig{
			Tracker:         ctx.Tracker,
			Gateway:         ctx.Gateway,
			Now:             ctx.Clock,
			RefreshInterval: ctx.Config.Timer.RefreshInterval,
			MaxRecent:       5,
			Ticker:          ctx.Ticker,
		})
	}

	render := countdownRenderer(cmd)
	if watchFlagOnce {
		return render(ctx.Clock())
	}

	sigCtx, stop := signal.NotifyContext(reqCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var renderErr error
	ctx.Ticker.Start(sigCtx, func(time.Time) {
		if err := render(ctx.Clock()); err != nil {
			renderErr = err
			stop()
		}
	})
	<-sigCtx.Done()
	ctx.Ticker.Stop()
	<-ctx.Ticker.Done()

	if renderErr != nil {
		return renderErr
	}
	logging.FromContext(reqCtx).Debug("watch stopped", logging.KeyOperation, "watch")
	return nil
}

// countdownRenderer returns a function that draws the active fast once: as a
// JSON object, or as a plain countdown that clears the screen on a terminal.
func countdownRenderer(cmd *cobra.Command) func(now time.Time) error {
	display := &timer.CountdownDisplay{
		Writer:   cmd.OutOrStdout(),
		UseColor: ctx.Formatter.IsColorEnabled(),
		BarWidth: output.BarWidth(8),
	}
	redraw := ctx.Formatter.IsTerminal() && !watchFlagOnce

	return func(now time.Time) error {
		active, err := ctx.Tracker.Active()
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			resp := output.ActiveResponse{Status: "idle"}
			if active != nil {
				resp.Status = "fasting"
				resp.Active = output.NewActiveOutput(active, now)
			}
			return ctx.Formatter.JSON(resp)
		}

		if redraw {
			display.Draw(active, now)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), display.Render(active, now))
		return nil
	}
}
