package timer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// CountdownDisplay renders an active fast as plain terminal text.
// It is used by watch when no interactive terminal is available.
type CountdownDisplay struct {
	Writer   io.Writer
	UseColor bool
	BarWidth int
}

// NewCountdownDisplay creates a display writing to stdout.
func NewCountdownDisplay() *CountdownDisplay {
	return &CountdownDisplay{
		Writer:   os.Stdout,
		UseColor: true,
		BarWidth: 30,
	}
}

var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	methodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")) // Blue

	goalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")) // Yellow

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

func (cd *CountdownDisplay) style(s lipgloss.Style, text string) string {
	if cd.UseColor {
		return s.Render(text)
	}
	return text
}

// Render renders the active fast at now.
func (cd *CountdownDisplay) Render(active *model.ActiveFast, now time.Time) string {
	if active == nil {
		return cd.style(hintStyle, "No active fast. Start one with: fastpilot start")
	}

	p := Compute(active, now)
	var b strings.Builder

	header := fmt.Sprintf("%s  (%s target)", active.MethodName, FormatHours(active.TargetHours))
	b.WriteString(cd.style(methodStyle, header))
	b.WriteString("\n\n")

	b.WriteString(cd.style(clockStyle, FormatClock(p.Elapsed)))
	b.WriteString("\n\n")

	b.WriteString(cd.style(barStyle, cd.renderProgressBar(p.Fraction)))
	b.WriteString("\n\n")

	if p.GoalReached {
		msg := fmt.Sprintf("Goal reached! +%s beyond goal", FormatClock(p.Overtime))
		b.WriteString(cd.style(goalStyle, msg))
	} else {
		b.WriteString(fmt.Sprintf("%s remaining", FormatClock(p.Remaining)))
	}
	b.WriteString("\n")

	phase := fmt.Sprintf("Phase: %s - %s", p.Phase.Name, p.Phase.Description)
	b.WriteString(cd.style(phaseStyle, phase))
	if next, ok := NextPhase(p.Elapsed.Hours()); ok {
		until := time.Duration(next.StartHour*float64(time.Hour)) - p.Elapsed
		b.WriteString("\n")
		b.WriteString(cd.style(hintStyle, fmt.Sprintf("%s in %s", next.Name, FormatClock(until))))
	}

	return b.String()
}

// renderProgressBar renders a fraction in [0,1] as a block bar with a percentage.
func (cd *CountdownDisplay) renderProgressBar(fraction float64) string {
	width := cd.BarWidth
	if width <= 0 {
		width = 30
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(fraction*100))
}

// ClearScreen clears the terminal screen.
func (cd *CountdownDisplay) ClearScreen() {
	fmt.Fprint(cd.Writer, "\033[H\033[2J")
}

// Draw clears the screen and writes the rendered fast.
func (cd *CountdownDisplay) Draw(active *model.ActiveFast, now time.Time) {
	cd.ClearScreen()
	fmt.Fprintln(cd.Writer, cd.Render(active, now))
}
