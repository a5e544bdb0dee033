package output

import (
	"time"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/metrics"
	"github.com/manav03panchal/fastpilot/internal/model"
	"github.com/manav03panchal/fastpilot/internal/timer"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ActiveOutput represents the active fast in JSON output.
type ActiveOutput struct {
	MethodID         string  `json:"method_id"`
	MethodName       string  `json:"method_name"`
	TargetHours      float64 `json:"target_hours"`
	StartTime        string  `json:"start_time"`
	ElapsedSeconds   int64   `json:"elapsed_seconds"`
	RemainingSeconds int64   `json:"remaining_seconds"`
	OvertimeSeconds  int64   `json:"overtime_seconds"`
	Progress         float64 `json:"progress"`
	GoalReached      bool    `json:"goal_reached"`
	Phase            string  `json:"phase"`
}

// NewActiveOutput creates an ActiveOutput for active at now.
func NewActiveOutput(active *model.ActiveFast, now time.Time) *ActiveOutput {
	p := timer.Compute(active, now)
	return &ActiveOutput{
		MethodID:         active.MethodID,
		MethodName:       active.MethodName,
		TargetHours:      active.TargetHours,
		StartTime:        active.StartTime.Format(time.RFC3339),
		ElapsedSeconds:   int64(p.Elapsed.Seconds()),
		RemainingSeconds: int64(p.Remaining.Seconds()),
		OvertimeSeconds:  int64(p.Overtime.Seconds()),
		Progress:         p.Fraction,
		GoalReached:      p.GoalReached,
		Phase:            p.Phase.Name,
	}
}

// FastOutput represents a history record in JSON output.
type FastOutput struct {
	ID          string  `json:"id"`
	MethodID    string  `json:"method_id"`
	MethodName  string  `json:"method_name"`
	TargetHours float64 `json:"target_hours"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time,omitempty"`
	ActualHours float64 `json:"actual_hours"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
	Manual      bool    `json:"manual"`
}

// NewFastOutput creates a FastOutput from a record.
func NewFastOutput(f *model.FastRecord) *FastOutput {
	out := &FastOutput{
		ID:          f.ID,
		MethodID:    f.MethodID,
		MethodName:  f.MethodName,
		TargetHours: f.TargetHours,
		StartTime:   f.StartTime.Format(time.RFC3339),
		ActualHours: f.ActualHours,
		Status:      string(f.Status),
		Notes:       f.Notes,
		Manual:      f.Manual,
	}
	if f.EndTime != nil {
		out.EndTime = f.EndTime.Format(time.RFC3339)
	}
	return out
}

// StatusResponse represents the status output in JSON.
type StatusResponse struct {
	Status string             `json:"status"`
	Active *ActiveOutput      `json:"active,omitempty"`
	Quick  metrics.QuickStats `json:"quick_stats"`
}

// FastResponse wraps a single record mutation.
type FastResponse struct {
	Status string      `json:"status"`
	Fast   *FastOutput `json:"fast,omitempty"`
}

// ActiveResponse wraps a start or cancel.
type ActiveResponse struct {
	Status string        `json:"status"`
	Active *ActiveOutput `json:"active,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// HistoryResponse represents the history list output in JSON.
type HistoryResponse struct {
	Fasts      []*FastOutput `json:"fasts"`
	TotalCount int           `json:"total_count"`
	ShownCount int           `json:"shown_count"`
	TotalHours float64       `json:"total_hours"`
}

// NewHistoryResponse creates a HistoryResponse.
func NewHistoryResponse(fasts []model.FastRecord, total int) *HistoryResponse {
	outputs := make([]*FastOutput, len(fasts))
	for i := range fasts {
		outputs[i] = NewFastOutput(&fasts[i])
	}
	return &HistoryResponse{
		Fasts:      outputs,
		TotalCount: total,
		ShownCount: len(fasts),
		TotalHours: metrics.TotalHours(fasts),
	}
}

// PeriodOutput represents an analytics period in JSON.
type PeriodOutput struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// StatsResponse represents the analytics output in JSON.
type StatsResponse struct {
	Period      PeriodOutput              `json:"period"`
	Summary     metrics.Stats             `json:"summary"`
	Score       metrics.Score             `json:"score"`
	Streak      int                       `json:"streak"`
	BestStreak  int                       `json:"best_streak"`
	Weekdays    [7]float64                `json:"weekday_averages"`
	StartHours  [24]int                   `json:"start_hours"`
	Methods     []metrics.MethodCount     `json:"methods"`
	Consistency []metrics.WeekConsistency `json:"consistency"`
}

// NewStatsResponse converts a report.
func NewStatsResponse(r StatsReport) *StatsResponse {
	methods := r.Methods
	if methods == nil {
		methods = []metrics.MethodCount{}
	}
	consistency := r.Consistency
	if consistency == nil {
		consistency = []metrics.WeekConsistency{}
	}
	return &StatsResponse{
		Period: PeriodOutput{
			Name:  string(r.Period),
			Label: r.Period.Label(),
			Start: r.Start.Format(time.RFC3339),
			End:   r.End.Format(time.RFC3339),
		},
		Summary:     r.Summary,
		Score:       r.Score,
		Streak:      r.Streak,
		BestStreak:  r.BestStreak,
		Weekdays:    r.Weekdays,
		StartHours:  r.StartHours,
		Methods:     methods,
		Consistency: consistency,
	}
}

// MilestonesResponse represents milestones in JSON.
type MilestonesResponse struct {
	Achieved   int                 `json:"achieved"`
	Total      int                 `json:"total"`
	Milestones []metrics.Milestone `json:"milestones"`
}

// MethodsResponse represents the catalog in JSON.
type MethodsResponse struct {
	Current string              `json:"current"`
	Groups  []MethodGroupOutput `json:"groups"`
}

// MethodGroupOutput is one catalog category.
type MethodGroupOutput struct {
	Category string           `json:"category"`
	Label    string           `json:"label"`
	Methods  []catalog.Method `json:"methods"`
}

// SettingsResponse represents settings in JSON.
type SettingsResponse struct {
	Settings model.Settings `json:"settings"`
	Method   catalog.Method `json:"method"`
}

// PrintStatus outputs status in JSON format.
func (j *JSONFormatter) PrintStatus(active *model.ActiveFast, now time.Time, quick metrics.QuickStats) error {
	resp := StatusResponse{Status: "idle", Quick: quick}
	if active != nil {
		resp.Status = "fasting"
		resp.Active = NewActiveOutput(active, now)
	}
	return j.JSON(resp)
}

// PrintStarted outputs a start in JSON format.
func (j *JSONFormatter) PrintStarted(active *model.ActiveFast, now time.Time) error {
	return j.JSON(ActiveResponse{Status: "started", Active: NewActiveOutput(active, now)})
}

// PrintCancelled outputs a cancel in JSON format.
func (j *JSONFormatter) PrintCancelled(active *model.ActiveFast, now time.Time) error {
	return j.JSON(ActiveResponse{Status: "cancelled", Active: NewActiveOutput(active, now)})
}

// PrintFast outputs a record mutation in JSON format.
func (j *JSONFormatter) PrintFast(status string, f *model.FastRecord) error {
	resp := FastResponse{Status: status}
	if f != nil {
		resp.Fast = NewFastOutput(f)
	}
	return j.JSON(resp)
}

// PrintHistory outputs history in JSON format.
func (j *JSONFormatter) PrintHistory(fasts []model.FastRecord, total int) error {
	return j.JSON(NewHistoryResponse(fasts, total))
}

// PrintStats outputs analytics in JSON format.
func (j *JSONFormatter) PrintStats(r StatsReport) error {
	return j.JSON(NewStatsResponse(r))
}

// PrintCalendar outputs a month view in JSON format.
func (j *JSONFormatter) PrintCalendar(v metrics.MonthView) error {
	return j.JSON(v)
}

// PrintMilestones outputs milestones in JSON format.
func (j *JSONFormatter) PrintMilestones(ms []metrics.Milestone) error {
	return j.JSON(MilestonesResponse{
		Achieved:   metrics.AchievedCount(ms),
		Total:      len(ms),
		Milestones: ms,
	})
}

// PrintMethods outputs the catalog in JSON format.
func (j *JSONFormatter) PrintMethods(groups []catalog.Group, currentID string) error {
	resp := MethodsResponse{Current: currentID, Groups: make([]MethodGroupOutput, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = MethodGroupOutput{
			Category: string(g.Category),
			Label:    g.Label,
			Methods:  g.Methods,
		}
	}
	return j.JSON(resp)
}

// PrintSettings outputs settings in JSON format.
func (j *JSONFormatter) PrintSettings(s model.Settings, method catalog.Method) error {
	return j.JSON(SettingsResponse{Settings: s, Method: method})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      errMsg,
		Suggestion: suggestion,
	})
}
