package metrics

import (
	"math"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/model"
)

// Score weights, in points out of 100.
const (
	CompletionWeight = 40
	StreakWeight     = 30
	AccuracyWeight   = 30

	// DefaultStreakCapDays earns the full streak share.
	DefaultStreakCapDays = 30

	maxAccuracyRatio = 1.5
)

// Score is the composite fasting score with its parts.
type Score struct {
	Value            int     `json:"value"`
	CompletionPoints float64 `json:"completion_points"`
	StreakPoints     float64 `json:"streak_points"`
	AccuracyPoints   float64 `json:"accuracy_points"`
	CompletionRate   float64 `json:"completion_rate"`
	AvgAccuracy      float64 `json:"avg_accuracy"`
}

// FastingScore scores the fasts of a period against the current streak with
// the default streak cap.
func FastingScore(fasts []model.FastRecord, streak int, cat *catalog.Catalog) Score {
	return FastingScoreWithCap(fasts, streak, DefaultStreakCapDays, cat)
}

// FastingScoreWithCap scores fasts with a custom streak cap. Accuracy uses
// each record's snapshotted target; cat is consulted only when the snapshot
// is missing.
func FastingScoreWithCap(fasts []model.FastRecord, streak, capDays int, cat *catalog.Catalog) Score {
	if capDays <= 0 {
		capDays = DefaultStreakCapDays
	}

	var s Score
	completed := model.FilterByStatus(fasts, model.StatusCompleted)

	if len(fasts) > 0 {
		s.CompletionRate = float64(len(completed)) / float64(len(fasts))
	}
	s.CompletionPoints = s.CompletionRate * CompletionWeight

	if streak > 0 {
		s.StreakPoints = math.Min(float64(streak)/float64(capDays), 1) * StreakWeight
	}

	if len(completed) > 0 {
		var sum float64
		for _, f := range completed {
			sum += Accuracy(f, cat)
		}
		s.AvgAccuracy = sum / float64(len(completed))
	}
	s.AccuracyPoints = s.AvgAccuracy * AccuracyWeight

	total := math.Round(s.CompletionPoints + s.StreakPoints + s.AccuracyPoints)
	s.Value = int(math.Max(0, math.Min(100, total)))
	return s
}

// Accuracy rates how closely a fast matched its target, from 0 to 1.
// Overshooting is penalized symmetrically up to 1.5x the target.
func Accuracy(f model.FastRecord, cat *catalog.Catalog) float64 {
	target := f.TargetHours
	if target <= 0 && cat != nil {
		target = cat.Get(f.MethodID).FastHours
	}
	if target <= 0 {
		return 0
	}

	ratio := math.Max(0, math.Min(f.ActualHours/target, maxAccuracyRatio))
	if ratio > 1 {
		return 2 - ratio
	}
	return ratio
}
