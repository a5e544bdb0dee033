package metrics

import (
	"time"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// Milestone is an achievement evaluated against the full history.
type Milestone struct {
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Achieved bool   `json:"achieved"`
}

type historyFacts struct {
	total      int
	completed  int
	hours      float64
	bestStreak int
	longest    float64
}

type milestoneRule struct {
	icon  string
	label string
	met   func(h historyFacts) bool
}

func atLeastFasts(n int) func(historyFacts) bool {
	return func(h historyFacts) bool { return h.completed >= n }
}

func atLeastHours(n float64) func(historyFacts) bool {
	return func(h historyFacts) bool { return h.hours >= n }
}

func atLeastStreak(n int) func(historyFacts) bool {
	return func(h historyFacts) bool { return h.bestStreak >= n }
}

func longestAtLeast(n float64) func(historyFacts) bool {
	return func(h historyFacts) bool { return h.longest >= n }
}

var milestoneRules = []milestoneRule{
	{"🌟", "First Fast", func(h historyFacts) bool { return h.total >= 1 }},
	{"🔥", "5 Fasts Completed", atLeastFasts(5)},
	{"💪", "10 Fasts Completed", atLeastFasts(10)},
	{"🏆", "25 Fasts Completed", atLeastFasts(25)},
	{"💎", "50 Fasts Completed", atLeastFasts(50)},
	{"🚀", "100 Fasts Completed", atLeastFasts(100)},
	{"⏰", "100 Hours Fasted", atLeastHours(100)},
	{"⭐", "500 Hours Fasted", atLeastHours(500)},
	{"🌞", "1000 Hours Fasted", atLeastHours(1000)},
	{"🔥", "7-Day Streak", atLeastStreak(7)},
	{"⚡", "14-Day Streak", atLeastStreak(14)},
	{"🏅", "30-Day Streak", atLeastStreak(30)},
	{"🧬", "First 24h+ Fast", longestAtLeast(24)},
	{"🧊", "First 48h+ Fast", longestAtLeast(48)},
}

// Milestones evaluates every achievement in order. Streaks are measured in loc.
func Milestones(fasts []model.FastRecord, loc *time.Location) []Milestone {
	facts := historyFacts{
		total:      len(fasts),
		completed:  len(model.FilterByStatus(fasts, model.StatusCompleted)),
		hours:      TotalHours(fasts),
		bestStreak: BestStreak(fasts, loc),
		longest:    LongestFast(fasts),
	}

	result := make([]Milestone, len(milestoneRules))
	for i, rule := range milestoneRules {
		result[i] = Milestone{Icon: rule.icon, Label: rule.label, Achieved: rule.met(facts)}
	}
	return result
}

// AchievedCount returns how many milestones are achieved.
func AchievedCount(ms []Milestone) int {
	n := 0
	for _, m := range ms {
		if m.Achieved {
			n++
		}
	}
	return n
}
