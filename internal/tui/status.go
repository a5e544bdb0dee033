package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/output"
	"github.com/manav03panchal/fastpilot/internal/timer"
)

// StatusComponent displays the active fast.
type StatusComponent struct {
	Active *model.ActiveFast
	Now    time.Time
	Bar    progress.Model
	Width  int
}

// View renders the status component.
func (sc *StatusComponent) View() string {
	var content strings.Builder

	if sc.Active == nil {
		content.WriteString(StyleInactive.Render("Not fasting"))
		content.WriteString("\n\n")
		content.WriteString(StyleSubtitle.Render("Press 's' to start a fast"))

		return StyleStatusBox.Width(boxWidth(sc.Width)).Render(content.String())
	}

	p := timer.Compute(sc.Active, sc.Now)

	content.WriteString(StyleActive.Render("● FASTING"))
	content.WriteString("  ")
	content.WriteString(StyleMethod.Render(sc.Active.MethodName))
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf(" (%s target)", timer.FormatHours(sc.Active.TargetHours))))
	content.WriteString("\n\n")

	content.WriteString(StyleClock.Render(timer.FormatClock(p.Elapsed)))
	content.WriteString("\n\n")

	content.WriteString(sc.Bar.ViewAs(p.Fraction))
	content.WriteString("\n")

	if p.GoalReached {
		content.WriteString(StyleSuccess.Render(fmt.Sprintf("Goal reached! +%s beyond goal", timer.FormatClock(p.Overtime))))
	} else {
		content.WriteString(StyleSubtitle.Render(fmt.Sprintf("%s remaining", timer.FormatClock(p.Remaining))))
	}
	content.WriteString("\n\n")

	content.WriteString(StylePhase.Render(p.Phase.Name))
	content.WriteString(StyleSubtitle.Render(" - " + p.Phase.Description))
	if next, ok := timer.NextPhase(p.Elapsed.Hours()); ok {
		until := time.Duration(next.StartHour*float64(time.Hour)) - p.Elapsed
		content.WriteString("\n")
		content.WriteString(StyleSubtitle.Render(fmt.Sprintf("%s in %s", next.Name, timer.FormatClock(until))))
	}
	content.WriteString("\n\n")

	content.WriteString(StyleSubtitle.Render(fmt.Sprintf("Started %s  ·  Goal at %s",
		output.FormatTime(sc.Active.StartTime),
		output.FormatTime(sc.Active.StartTime.Add(sc.Active.Target())))))

	return StyleActiveStatusBox.Width(boxWidth(sc.Width)).Render(content.String())
}

// SummaryComponent displays quick stats and weekly goal progress.
type SummaryComponent struct {
	Quick metrics.QuickStats
	Width int
}

// View renders the summary component.
func (s *SummaryComponent) View() string {
	var content strings.Builder
	q := s.Quick

	content.WriteString(fmt.Sprintf("Streak %s   Best %d   Completed %d   Avg %s",
		StyleActive.Render(fmt.Sprintf("%dd", q.Streak)),
		q.BestStreak,
		q.CompletedFasts,
		timer.FormatHours(q.AverageCompleted)))

	if q.WeeklyGoal > 0 {
		pct := float64(q.CompletedThisWeek) / float64(q.WeeklyGoal) * 100
		barWidth := boxWidth(s.Width) - 24
		if barWidth < 10 {
			barWidth = 10
		}
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("This week %s %d/%d", ProgressBar(pct, barWidth), q.CompletedThisWeek, q.WeeklyGoal))
	}

	return StyleListBox.Width(boxWidth(s.Width)).Render(content.String())
}

// RecentComponent displays the latest history records.
type RecentComponent struct {
	Fasts []model.FastRecord
	Width int
}

// View renders the recent fasts.
func (rc *RecentComponent) View() string {
	var content strings.Builder
	content.WriteString(StyleTitle.Render("Recent Fasts"))
	content.WriteString("\n")

	if len(rc.Fasts) == 0 {
		content.WriteString(StyleMuted.Render("No fasts yet"))
	}
	for i, f := range rc.Fasts {
		if i > 0 {
			content.WriteString("\n")
		}
		status := StyleWarning.Render(f.Status.Label())
		if f.IsCompleted() {
			status = StyleSuccess.Render(f.Status.Label())
		}
		content.WriteString(fmt.Sprintf("%s  %-8s %6s  %s",
			StyleSubtitle.Render(output.FormatTime(f.StartTime)),
			f.MethodName,
			output.FormatHours(f.ActualHours),
			status))
	}

	return StyleListBox.Width(boxWidth(rc.Width)).Render(content.String())
}

func boxWidth(width int) int {
	if width-4 < 20 {
		return 20
	}
	return width - 4
}
