package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// Stats is the aggregate summary of a set of fasts.
type Stats struct {
	Total                 int     `json:"total"`
	Completed             int     `json:"completed"`
	Partial               int     `json:"partial"`
	TotalHours            float64 `json:"total_hours"`
	CompletionRate        int     `json:"completion_rate"`
	LongestFast           float64 `json:"longest_fast"`
	AverageHours          float64 `json:"average_hours"`
	AverageCompletedHours float64 `json:"average_completed_hours"`
}

// Summarize computes the aggregate statistics for fasts.
func Summarize(fasts []model.FastRecord) Stats {
	completed := model.FilterByStatus(fasts, model.StatusCompleted)
	return Stats{
		Total:                 len(fasts),
		Completed:             len(completed),
		Partial:               len(model.FilterByStatus(fasts, model.StatusPartial)),
		TotalHours:            TotalHours(fasts),
		CompletionRate:        CompletionRate(fasts),
		LongestFast:           LongestFast(fasts),
		AverageHours:          AverageHours(fasts),
		AverageCompletedHours: AverageHours(completed),
	}
}

// TotalHours sums the recorded hours. Active records count as zero.
func TotalHours(fasts []model.FastRecord) float64 {
	var total float64
	for _, f := range fasts {
		total += f.ActualHours
	}
	return total
}

// CompletionRate returns the percentage of completed fasts, rounded.
func CompletionRate(fasts []model.FastRecord) int {
	if len(fasts) == 0 {
		return 0
	}
	completed := len(model.FilterByStatus(fasts, model.StatusCompleted))
	return int(math.Round(float64(completed) / float64(len(fasts)) * 100))
}

// LongestFast returns the largest recorded hours.
func LongestFast(fasts []model.FastRecord) float64 {
	var longest float64
	for _, f := range fasts {
		longest = math.Max(longest, f.ActualHours)
	}
	return longest
}

// AverageHours returns the mean recorded hours.
func AverageHours(fasts []model.FastRecord) float64 {
	if len(fasts) == 0 {
		return 0
	}
	return TotalHours(fasts) / float64(len(fasts))
}

// WeekdayAverages returns the mean hours of fasts grouped by the weekday they
// started on in loc, indexed by time.Weekday (Sunday first).
func WeekdayAverages(fasts []model.FastRecord, loc *time.Location) [7]float64 {
	var sums [7]float64
	var counts [7]int
	for _, f := range fasts {
		day := f.StartTime.In(loc).Weekday()
		sums[day] += f.ActualHours
		counts[day]++
	}

	var avgs [7]float64
	for i := range avgs {
		if counts[i] > 0 {
			avgs[i] = sums[i] / float64(counts[i])
		}
	}
	return avgs
}

// StartHourHistogram counts fasts by the local hour they started.
func StartHourHistogram(fasts []model.FastRecord, loc *time.Location) [24]int {
	var buckets [24]int
	for _, f := range fasts {
		buckets[f.StartTime.In(loc).Hour()]++
	}
	return buckets
}

// MethodCount is the number of fasts done with one method.
type MethodCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MethodCounts tallies fasts by method name, most used first. The record's
// name snapshot is used; cat names records that lack one.
func MethodCounts(fasts []model.FastRecord, cat *catalog.Catalog) []MethodCount {
	counts := make(map[string]int)
	for _, f := range fasts {
		name := f.MethodName
		if name == "" && cat != nil {
			name = cat.Get(f.MethodID).Name
		}
		if name == "" {
			name = f.MethodID
		}
		counts[name]++
	}

	result := make([]MethodCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, MethodCount{Name: name, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// QuickStats is the short summary shown next to the timer.
type QuickStats struct {
	Streak            int     `json:"streak"`
	CompletedFasts    int     `json:"completed_fasts"`
	AverageCompleted  float64 `json:"average_completed_hours"`
	BestStreak        int     `json:"best_streak"`
	CompletedThisWeek int     `json:"completed_this_week"`
	WeeklyGoal        int     `json:"weekly_goal"`
}

// Quick computes the quick stats over the full history.
func Quick(fasts []model.FastRecord, now time.Time, weeklyGoal int) QuickStats {
	completed := model.FilterByStatus(fasts, model.StatusCompleted)
	weekStart := WeekStart(now)
	thisWeek := model.FilterByStart(completed, weekStart, endOfDay(now))

	return QuickStats{
		Streak:            CurrentStreak(fasts, now),
		CompletedFasts:    len(completed),
		AverageCompleted:  AverageHours(completed),
		BestStreak:        BestStreak(fasts, now.Location()),
		CompletedThisWeek: countDays(thisWeek, now.Location()),
		WeeklyGoal:        weeklyGoal,
	}
}

// countDays returns the number of distinct local start dates among fasts.
func countDays(fasts []model.FastRecord, loc *time.Location) int {
	days := make(map[time.Time]bool)
	for _, f := range fasts {
		days[civilDay(f.StartTime, loc)] = true
	}
	return len(days)
}
