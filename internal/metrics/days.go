// Package metrics derives streaks, scores and aggregate statistics from the
// fast history. Every function is pure and returns zero values for empty input.
package metrics

import (
	"sort"
	"time"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// civilDay returns t's calendar date in loc as a UTC midnight, so that day
// arithmetic is unaffected by DST transitions in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfDay returns local midnight of t's date in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last nanosecond of t's date in t's location.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// completedDays returns the set of local start dates that carry at least one
// completed fast.
func completedDays(fasts []model.FastRecord, loc *time.Location) map[time.Time]bool {
	days := make(map[time.Time]bool)
	for _, f := range fasts {
		if f.Status == model.StatusCompleted {
			days[civilDay(f.StartTime, loc)] = true
		}
	}
	return days
}

func sortedDays(set map[time.Time]bool) []time.Time {
	days := make([]time.Time, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
