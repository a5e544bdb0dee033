package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/timer"
)

// Styles for CLI output.
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorAccent    = lipgloss.Color("#3B82F6") // Blue

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleMethod = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleHours = lipgloss.NewStyle().
			Bold(true)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)

	styleCompleted = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	stylePartial = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// CLIFormatter provides human-readable formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// MethodName formats a method name.
func (c *CLIFormatter) MethodName(name string) string {
	return c.render(styleMethod, name)
}

// Hours formats an hour count.
func (c *CLIFormatter) Hours(h float64) string {
	return c.render(styleHours, FormatHours(h))
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	return c.render(styleNote, text)
}

// StatusLabel formats a record status.
func (c *CLIFormatter) StatusLabel(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return c.render(styleCompleted, s.Label())
	case model.StatusPartial:
		return c.render(stylePartial, s.Label())
	default:
		return c.render(styleMuted, s.Label())
	}
}

// PrintStatus prints the active fast, or a hint when idle.
func (c *CLIFormatter) PrintStatus(active *model.ActiveFast, now time.Time, quick metrics.QuickStats) {
	if active == nil {
		c.Muted("No active fast.")
		c.Muted("Use 'fastpilot start' to begin.")
	} else {
		p := timer.Compute(active, now)
		c.Printf("Fasting: %s (%s target)\n", c.MethodName(active.MethodName), FormatHours(active.TargetHours))
		c.Printf("  Started:  %s\n", FormatTime(active.StartTime))
		c.Printf("  Elapsed:  %s\n", c.render(styleHours, timer.FormatClock(p.Elapsed)))
		if p.GoalReached {
			c.Printf("  %s\n", c.render(styleCompleted, "Goal reached! +"+timer.FormatClock(p.Overtime)+" beyond goal"))
		} else {
			c.Printf("  Remaining: %s\n", timer.FormatClock(p.Remaining))
		}
		c.Printf("  Progress: %s\n", progressBar(p.Fraction, 20))
		c.Printf("  Phase:    %s\n", p.Phase.Name)
	}

	c.Println()
	c.Printf("Streak: %d day(s)  Completed: %d  Avg: %s  This week: %d/%d\n",
		quick.Streak, quick.CompletedFasts, FormatHours(quick.AverageCompleted),
		quick.CompletedThisWeek, quick.WeeklyGoal)
}

// PrintStarted prints a fast started message.
func (c *CLIFormatter) PrintStarted(active *model.ActiveFast) {
	c.Success(fmt.Sprintf("Started %s fast", active.MethodName))
	c.Printf("  Target:  %s\n", c.Hours(active.TargetHours))
	c.Printf("  Started: %s\n", FormatTime(active.StartTime))
	c.Printf("  Goal at: %s\n", FormatTime(active.StartTime.Add(active.Target())))
}

// PrintEnded prints the record produced by ending a fast.
func (c *CLIFormatter) PrintEnded(rec *model.FastRecord) {
	if rec.Status == model.StatusCompleted {
		c.Success(fmt.Sprintf("Fast completed: %s of %s", FormatHours(rec.ActualHours), FormatHours(rec.TargetHours)))
	} else {
		c.Warning(fmt.Sprintf("Fast ended early: %s of %s", FormatHours(rec.ActualHours), FormatHours(rec.TargetHours)))
	}
	c.PrintFast(rec)
}

// PrintCancelled prints a cancellation message.
func (c *CLIFormatter) PrintCancelled(active *model.ActiveFast) {
	c.Warning(fmt.Sprintf("Cancelled %s fast started %s", active.MethodName, FormatTime(active.StartTime)))
	c.Muted("Nothing was recorded.")
}

// PrintFast prints one history record.
func (c *CLIFormatter) PrintFast(rec *model.FastRecord) {
	c.Printf("  ID:      %s\n", rec.ID)
	c.Printf("  Method:  %s\n", c.MethodName(rec.MethodName))
	c.Printf("  Start:   %s\n", FormatTime(rec.StartTime))
	if rec.EndTime != nil {
		c.Printf("  End:     %s\n", FormatTime(*rec.EndTime))
	}
	c.Printf("  Hours:   %s / %s\n", c.Hours(rec.ActualHours), FormatHours(rec.TargetHours))
	c.Printf("  Status:  %s\n", c.StatusLabel(rec.Status))
	if rec.Manual {
		c.Printf("  Source:  %s\n", c.render(styleMuted, "manual entry"))
	}
	if rec.Notes != "" {
		c.Printf("  Notes:   %s\n", c.Note(rec.Notes))
	}
}

// PrintHistory prints history rows, newest first.
func (c *CLIFormatter) PrintHistory(fasts []model.FastRecord, total int) {
	if len(fasts) == 0 {
		c.Muted("No fasts recorded.")
		return
	}

	for _, f := range fasts {
		line := fmt.Sprintf("%s  %s  %-8s %6s / %-6s %s",
			ShortID(f.ID),
			FormatTime(f.StartTime),
			f.MethodName,
			FormatHours(f.ActualHours),
			FormatHours(f.TargetHours),
			c.StatusLabel(f.Status),
		)
		if f.Manual {
			line += c.render(styleMuted, " (manual)")
		}
		c.Println(line)
		if f.Notes != "" {
			c.Printf("          %s\n", c.Note(f.Notes))
		}
	}

	if total > len(fasts) {
		c.Muted(fmt.Sprintf("Showing %d of %d fasts.", len(fasts), total))
	}
}

// StatsReport is everything the stats view shows for one period.
type StatsReport struct {
	Period      metrics.Period
	Start       time.Time
	End         time.Time
	Summary     metrics.Stats
	Score       metrics.Score
	Streak      int
	BestStreak  int
	Weekdays    [7]float64
	StartHours  [24]int
	Methods     []metrics.MethodCount
	Consistency []metrics.WeekConsistency
}

// PrintStats prints the analytics report.
func (c *CLIFormatter) PrintStats(r StatsReport) {
	c.Title(fmt.Sprintf("%s (%s - %s)", r.Period.Label(), FormatDate(r.Start), FormatDate(r.End)))
	c.Println()

	c.Printf("Fasting score:   %s\n", c.render(styleTitle, fmt.Sprintf("%d/100", r.Score.Value)))
	c.Printf("  completion %.0f  streak %.0f  accuracy %.0f\n",
		r.Score.CompletionPoints, r.Score.StreakPoints, r.Score.AccuracyPoints)
	c.Printf("Current streak:  %d day(s)\n", r.Streak)
	c.Printf("Best streak:     %d day(s)\n", r.BestStreak)
	c.Println()

	s := r.Summary
	c.Printf("Total fasts:     %d (%d completed, %d partial)\n", s.Total, s.Completed, s.Partial)
	c.Printf("Completion rate: %d%%\n", s.CompletionRate)
	c.Printf("Total hours:     %s\n", c.Hours(s.TotalHours))
	c.Printf("Average fast:    %s\n", FormatHours(s.AverageHours))
	c.Printf("Longest fast:    %s\n", FormatHours(s.LongestFast))

	if s.Total == 0 {
		return
	}

	c.Println()
	c.Title("By weekday")
	maxAvg := 0.0
	for _, h := range r.Weekdays {
		if h > maxAvg {
			maxAvg = h
		}
	}
	width := BarWidth(12)
	for i, h := range r.Weekdays {
		frac := 0.0
		if maxAvg > 0 {
			frac = h / maxAvg
		}
		c.Printf("  %s %s %s\n", time.Weekday(i).String()[:3], bar(frac, width), FormatHours(h))
	}

	c.Println()
	c.Title("Start times")
	maxCount := 0
	for _, n := range r.StartHours {
		if n > maxCount {
			maxCount = n
		}
	}
	for h, n := range r.StartHours {
		if n == 0 {
			continue
		}
		c.Printf("  %02d:00 %s %d\n", h, bar(float64(n)/float64(maxCount), width), n)
	}

	if len(r.Methods) > 0 {
		c.Println()
		c.Title("Methods")
		for _, m := range r.Methods {
			c.Printf("  %-12s %d\n", m.Name, m.Count)
		}
	}

	if len(r.Consistency) > 0 {
		c.Println()
		c.Title("Weekly consistency")
		for _, w := range r.Consistency {
			mark := c.render(styleMuted, "·")
			if w.Met {
				mark = c.render(styleCompleted, "✓")
			}
			c.Printf("  %s  %d/%d %s\n", FormatDate(w.WeekStart), w.DaysFasted, w.Goal, mark)
		}
	}
}

// PrintCalendar prints a Sunday-first month grid.
func (c *CLIFormatter) PrintCalendar(v metrics.MonthView) {
	c.Title(fmt.Sprintf("%s %d", v.Month, v.Year))
	c.Println(c.render(styleMuted, " Su  Mo  Tu  We  Th  Fr  Sa"))

	var line strings.Builder
	col := 0
	for i := 0; i < v.Leading; i++ {
		line.WriteString("    ")
		col++
	}
	for _, d := range v.Days {
		cell := fmt.Sprintf("%3d", d.Day)
		switch d.Status {
		case metrics.DayCompleted:
			cell = c.render(styleCompleted, cell)
		case metrics.DayPartial:
			cell = c.render(stylePartial, cell)
		default:
			if d.Future {
				cell = c.render(styleMuted, cell)
			}
		}
		marker := " "
		if d.Today {
			marker = "*"
		} else if !c.IsColorEnabled() {
			switch d.Status {
			case metrics.DayCompleted:
				marker = "+"
			case metrics.DayPartial:
				marker = "~"
			}
		}
		line.WriteString(cell + marker)
		col++
		if col == 7 {
			c.Println(strings.TrimRight(line.String(), " "))
			line.Reset()
			col = 0
		}
	}
	if line.Len() > 0 {
		c.Println(strings.TrimRight(line.String(), " "))
	}

	s := v.Summary
	c.Println()
	c.Printf("Fasts: %d (%d completed)  Hours: %s  Days fasted: %d/%d\n",
		s.TotalFasts, s.Completed, FormatHours(s.TotalHours), s.DaysFasted, s.MonthlyGoal)
	if !c.IsColorEnabled() {
		c.Muted("+ completed  ~ partial  * today")
	}
}

// PrintMilestones prints the milestone checklist.
func (c *CLIFormatter) PrintMilestones(ms []metrics.Milestone) {
	c.Title(fmt.Sprintf("Milestones (%d/%d)", metrics.AchievedCount(ms), len(ms)))
	for _, m := range ms {
		if m.Achieved {
			c.Printf("  %s %s\n", m.Icon, c.render(styleCompleted, m.Label))
		} else {
			c.Printf("  %s %s\n", c.render(styleMuted, "○"), c.render(styleMuted, m.Label))
		}
	}
}

// PrintMethods prints the catalog grouped by category.
func (c *CLIFormatter) PrintMethods(groups []catalog.Group, currentID string) {
	for i, g := range groups {
		if i > 0 {
			c.Println()
		}
		c.Title(g.Label)
		for _, m := range g.Methods {
			marker := "  "
			if m.ID == currentID {
				marker = c.render(styleSuccess, "▸ ")
			}
			c.Printf("%s%s %-10s %s  %s\n", marker, m.Icon, m.ID, c.MethodName(m.Name), c.render(styleMuted, m.Subtitle))
			c.Printf("     %s fast / %s eat  %s\n", FormatHours(m.FastHours), FormatHours(m.EatHours), c.render(styleMuted, m.Difficulty))
		}
	}
}

// PrintSettings prints the current settings.
func (c *CLIFormatter) PrintSettings(s model.Settings, method catalog.Method) {
	c.Title("Settings")
	c.Printf("  Method:        %s (%s)\n", c.MethodName(method.Name), s.MethodID)
	c.Printf("  Start time:    %s\n", s.StartTime)
	c.Printf("  Weekly goal:   %d day(s)\n", s.WeeklyGoal)
	c.Printf("  Notifications: %t\n", s.Notifications)
	c.Printf("  Custom fast:   %s\n", FormatHours(s.CustomFastHours))
	c.Printf("  Custom eat:    %s\n", FormatHours(s.CustomEatHours))
}

func bar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func progressBar(fraction float64, width int) string {
	if fraction > 1 {
		fraction = 1
	}
	return fmt.Sprintf("[%s] %d%%", bar(fraction, width), int(fraction*100))
}
