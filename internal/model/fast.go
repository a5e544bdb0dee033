package model

import (
	"math"
	"sort"
	"time"
)

// Status is the lifecycle state of a fast record.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPartial   Status = "partial"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPartial, StatusCancelled:
		return true
	}
	return false
}

// Label returns the capitalized display label.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	case StatusPartial:
		return "Partial"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// FastRecord is a single fast in the history.
// MethodName and TargetHours are snapshots taken when the fast started and are
// never re-derived from the catalog.
type FastRecord struct {
	ID          string     `json:"id"`
	MethodID    string     `json:"methodId"`
	MethodName  string     `json:"methodName"`
	TargetHours float64    `json:"targetHours"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	ActualHours float64    `json:"actualHours,omitempty"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	Manual      bool       `json:"manual,omitempty"`
}

// IsActive returns true if the record has no end time.
func (f *FastRecord) IsActive() bool {
	return f.EndTime == nil
}

// IsCompleted returns true if the target was met.
func (f *FastRecord) IsCompleted() bool {
	return f.Status == StatusCompleted
}

// Duration returns the wall-clock length of the fast, or zero while active.
func (f *FastRecord) Duration() time.Duration {
	if f.EndTime == nil {
		return 0
	}
	return f.EndTime.Sub(f.StartTime)
}

// RoundHours rounds an hour value to two decimals.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// ElapsedHours returns the difference between two instants in hours.
func ElapsedHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// Outcome computes the recorded hours and status of a fast that ran from start to end.
// Hitting the target exactly counts as completed.
func Outcome(start, end time.Time, targetHours float64) (float64, Status) {
	elapsed := ElapsedHours(start, end)
	status := StatusPartial
	if elapsed >= targetHours {
		status = StatusCompleted
	}
	return RoundHours(elapsed), status
}

// Finish sets the end time and derives ActualHours and Status from it.
func (f *FastRecord) Finish(end time.Time) {
	end = end.UTC()
	f.EndTime = &end
	f.ActualHours, f.Status = Outcome(f.StartTime, end, f.TargetHours)
}

// FastPatch holds the fields of a shallow update. Nil fields are left untouched.
type FastPatch struct {
	MethodID    *string
	MethodName  *string
	TargetHours *float64
	StartTime   *time.Time
	EndTime     *time.Time
	ActualHours *float64
	Status      *Status
	Notes       *string
	Manual      *bool
}

// Apply merges the patch into f.
func (p FastPatch) Apply(f *FastRecord) {
	if p.MethodID != nil {
		f.MethodID = *p.MethodID
	}
	if p.MethodName != nil {
		f.MethodName = *p.MethodName
	}
	if p.TargetHours != nil {
		f.TargetHours = *p.TargetHours
	}
	if p.StartTime != nil {
		f.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		end := *p.EndTime
		f.EndTime = &end
	}
	if p.ActualHours != nil {
		f.ActualHours = *p.ActualHours
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Notes != nil {
		f.Notes = *p.Notes
	}
	if p.Manual != nil {
		f.Manual = *p.Manual
	}
}

// FilterByStart returns the records whose start time lies in [start, end].
func FilterByStart(fasts []FastRecord, start, end time.Time) []FastRecord {
	var result []FastRecord
	for _, f := range fasts {
		if f.StartTime.Before(start) || f.StartTime.After(end) {
			continue
		}
		result = append(result, f)
	}
	return result
}

// FilterByStatus returns the records with the given status.
func FilterByStatus(fasts []FastRecord, status Status) []FastRecord {
	var result []FastRecord
	for _, f := range fasts {
		if f.Status == status {
			result = append(result, f)
		}
	}
	return result
}

// SortNewestFirst sorts records by start time, newest first.
func SortNewestFirst(fasts []FastRecord) {
	sort.SliceStable(fasts, func(i, j int) bool {
		return fasts[i].StartTime.After(fasts[j].StartTime)
	})
}

// SortOldestFirst sorts records by start time, oldest first.
func SortOldestFirst(fasts []FastRecord) {
	sort.SliceStable(fasts, func(i, j int) bool {
		return fasts[i].StartTime.Before(fasts[j].StartTime)
	})
}
