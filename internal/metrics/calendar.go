package metrics

import (
	"time"

	"github.com/manav03panchal/fastpilot/internal/model"
)

// DayStatus is the outcome shown for one calendar day.
type DayStatus string

const (
	DayNone      DayStatus = "none"
	DayCompleted DayStatus = "completed"
	DayPartial   DayStatus = "partial"
)

// CalendarDay is one day cell of a month grid.
type CalendarDay struct {
	Date   time.Time `json:"date"`
	Day    int       `json:"day"`
	Status DayStatus `json:"status"`
	Hours  float64   `json:"hours"`
	Fasts  int       `json:"fasts"`
	Today  bool      `json:"today"`
	Future bool      `json:"future"`
}

// MonthSummary totals the fasts started in a month.
type MonthSummary struct {
	TotalFasts  int     `json:"total_fasts"`
	Completed   int     `json:"completed"`
	TotalHours  float64 `json:"total_hours"`
	DaysFasted  int     `json:"days_fasted"`
	MonthlyGoal int     `json:"monthly_goal"`
}

// MonthView is a Sunday-first month grid. Leading is the number of blank
// cells before the 1st.
type MonthView struct {
	Year    int           `json:"year"`
	Month   time.Month    `json:"month"`
	Leading int           `json:"leading"`
	Days    []CalendarDay `json:"days"`
	Summary MonthSummary  `json:"summary"`
}

// DaysIn returns the number of days in month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonth lays out a month in now's location, assigning each fast to the
// day it started.
func BuildMonth(fasts []model.FastRecord, year int, month time.Month, now time.Time, weeklyGoal int) MonthView {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := DaysIn(year, month)
	last := time.Date(year, month, days, 0, 0, 0, 0, loc)

	monthFasts := model.FilterByStart(fasts, first, endOfDay(last))
	byDay := make(map[int][]model.FastRecord)
	for _, f := range monthFasts {
		d := f.StartTime.In(loc).Day()
		byDay[d] = append(byDay[d], f)
	}

	today := civilDay(now, loc)
	view := MonthView{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]CalendarDay, 0, days),
	}

	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		cell := CalendarDay{
			Date:   date,
			Day:    d,
			Status: dayStatus(byDay[d]),
			Hours:  TotalHours(byDay[d]),
			Fasts:  len(byDay[d]),
		}
		key := civilDay(date, loc)
		cell.Today = key.Equal(today)
		cell.Future = key.After(today)
		view.Days = append(view.Days, cell)
	}

	view.Summary = MonthSummary{
		TotalFasts:  len(monthFasts),
		Completed:   len(model.FilterByStatus(monthFasts, model.StatusCompleted)),
		TotalHours:  TotalHours(monthFasts),
		DaysFasted:  len(byDay),
		MonthlyGoal: weeklyGoal * ((days + 6) / 7),
	}
	return view
}

func dayStatus(fasts []model.FastRecord) DayStatus {
	status := DayNone
	for _, f := range fasts {
		switch f.Status {
		case model.StatusCompleted:
			return DayCompleted
		case model.StatusPartial:
			status = DayPartial
		}
	}
	return status
}
