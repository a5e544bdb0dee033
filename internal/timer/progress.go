// Package timer computes live progress for an active fast and drives the
// periodic refresh of its display.
package timer

import (
	"fmt"
	"time"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// Phase is a metabolic stage reached after a number of fasting hours.
type Phase struct {
	Name        string
	StartHour   float64
	Description string
}

// Phases lists the fasting stages in ascending order of start hour.
var Phases = []Phase{
	{Name: "Anabolic", StartHour: 0, Description: "Digesting and absorbing the last meal"},
	{Name: "Catabolic", StartHour: 4, Description: "Blood sugar falls, glycogen in use"},
	{Name: "Fat Burning", StartHour: 8, Description: "Glycogen runs low, fat becomes fuel"},
	{Name: "Ketosis", StartHour: 12, Description: "Ketone production rises"},
	{Name: "Autophagy", StartHour: 18, Description: "Cellular cleanup ramps up"},
	{Name: "Deep Repair", StartHour: 24, Description: "Extended fasting benefits"},
}

// PhaseAt returns the phase reached after the given number of hours.
func PhaseAt(hours float64) Phase {
	current := Phases[0]
	for _, p := range Phases {
		if hours >= p.StartHour {
			current = p
		}
	}
	return current
}

// NextPhase returns the phase after hours, or false when the last phase is reached.
func NextPhase(hours float64) (Phase, bool) {
	for _, p := range Phases {
		if p.StartHour > hours {
			return p, true
		}
	}
	return Phase{}, false
}

// Progress is a snapshot of an active fast at one instant.
type Progress struct {
	Elapsed     time.Duration
	Remaining   time.Duration
	Target      time.Duration
	Overtime    time.Duration
	Fraction    float64
	GoalReached bool
	Phase       Phase
}

// Compute derives the progress of active at now. A nil active fast yields
// the zero Progress.
func Compute(active *model.ActiveFast, now time.Time) Progress {
	if active == nil {
		return Progress{Phase: Phases[0]}
	}

	elapsed := active.Elapsed(now)
	if elapsed < 0 {
		elapsed = 0
	}
	target := active.Target()

	p := Progress{
		Elapsed: elapsed,
		Target:  target,
		Phase:   PhaseAt(elapsed.Hours()),
	}

	if target <= 0 {
		p.Fraction = 1
		p.GoalReached = true
		p.Overtime = elapsed
		return p
	}

	p.GoalReached = elapsed >= target
	if p.GoalReached {
		p.Overtime = elapsed - target
		p.Fraction = 1
	} else {
		p.Remaining = target - elapsed
		p.Fraction = float64(elapsed) / float64(target)
	}
	return p
}

// FormatClock formats a duration as HH:MM:SS. Hours are not wrapped at 24.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalSeconds := int64(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatHours renders fractional hours as "16h 30m".
func FormatHours(hours float64) string {
	if hours < 0 {
		hours = 0
	}
	total := int64(hours*60 + 0.5)
	h := total / 60
	m := total % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
