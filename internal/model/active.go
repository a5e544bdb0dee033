package model

import "time"

// ActiveFast is the single-slot pointer to the fast currently in progress.
// It is the only source of truth while a fast runs; history is untouched
// until the fast ends.
type ActiveFast struct {
	MethodID    string    `json:"methodId"`
	MethodName  string    `json:"methodName"`
	TargetHours float64   `json:"targetHours"`
	StartTime   time.Time `json:"startTime"`
	Status      Status    `json:"status"`
}

// NewActiveFast creates an active fast pointer starting at start.
func NewActiveFast(methodID, methodName string, targetHours float64, start time.Time) *ActiveFast {
	return &ActiveFast{
		MethodID:    methodID,
		MethodName:  methodName,
		TargetHours: targetHours,
		StartTime:   start.UTC(),
		Status:      StatusActive,
	}
}

// Elapsed returns the time since the fast started.
func (a *ActiveFast) Elapsed(now time.Time) time.Duration {
	return now.Sub(a.StartTime)
}

// Target returns the target as a duration.
func (a *ActiveFast) Target() time.Duration {
	return time.Duration(a.TargetHours * float64(time.Hour))
}

// ToRecord converts the pointer into a finished history record.
func (a *ActiveFast) ToRecord(end time.Time) FastRecord {
	rec := FastRecord{
		MethodID:    a.MethodID,
		MethodName:  a.MethodName,
		TargetHours: a.TargetHours,
		StartTime:   a.StartTime,
	}
	rec.Finish(end)
	return rec
}
