package metrics

import (
	"time"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// CurrentStreak counts consecutive calendar days with a completed fast,
// ending today or, when today has none yet, yesterday. Days are taken from
// each fast's start time in now's location.
func CurrentStreak(fasts []model.FastRecord, now time.Time) int {
	days := completedDays(fasts, now.Location())
	if len(days) == 0 {
		return 0
	}

	cursor := civilDay(now, now.Location())
	if !days[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[cursor] {
			return 0
		}
	}

	streak := 0
	for days[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak returns the longest run of consecutive calendar days with a
// completed fast. It is zero exactly when no fast is completed.
func BestStreak(fasts []model.FastRecord, loc *time.Location) int {
	days := sortedDays(completedDays(fasts, loc))
	if len(days) == 0 {
		return 0
	}

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}
