package metrics

import (
	"time"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// WeekConsistency compares the days fasted in one Sunday-first week with the goal.
type WeekConsistency struct {
	WeekStart  time.Time `json:"week_start"`
	DaysFasted int       `json:"days_fasted"`
	Goal       int       `json:"goal"`
	Met        bool      `json:"met"`
}

// WeeklyConsistency splits [start, end] into Sunday-first weeks and counts,
// per week, the distinct days on which a fast of any status started.
func WeeklyConsistency(fasts []model.FastRecord, start, end time.Time, goal int) []WeekConsistency {
	if end.Before(start) {
		return nil
	}

	loc := start.Location()
	var weeks []WeekConsistency
	for ws := WeekStart(start); !ws.After(end); ws = ws.AddDate(0, 0, 7) {
		we := ws.AddDate(0, 0, 7)
		days := make(map[time.Weekday]bool)
		for _, f := range fasts {
			if f.StartTime.Before(ws) || !f.StartTime.Before(we) {
				continue
			}
			days[f.StartTime.In(loc).Weekday()] = true
		}
		weeks = append(weeks, WeekConsistency{
			WeekStart:  ws,
			DaysFasted: len(days),
			Goal:       goal,
			Met:        len(days) >= goal,
		})
	}
	return weeks
}
