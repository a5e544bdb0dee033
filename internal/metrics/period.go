package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/manav03panchal/fastpilot/internal/errors"
)

// Period is an analytics window ending today.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// Periods lists the supported periods in display order.
var Periods = []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll}

// ParsePeriod parses a period name.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Periods {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errors.ErrInvalidPeriod, s)
}

// Label returns a human-readable description.
func (p Period) Label() string {
	switch p {
	case PeriodWeek:
		return "Last 7 days"
	case PeriodMonth:
		return "Last month"
	case PeriodQuarter:
		return "Last 3 months"
	case PeriodYear:
		return "Last year"
	case PeriodAll:
		return "All time"
	default:
		return string(p)
	}
}

// Range returns the window from local midnight at the period's start to the
// end of now's day. "all" starts on 2020-01-01.
func (p Period) Range(now time.Time) (start, end time.Time) {
	start = startOfDay(now)
	end = endOfDay(now)

	switch p {
	case PeriodWeek:
		start = start.AddDate(0, 0, -7)
	case PeriodMonth:
		start = start.AddDate(0, -1, 0)
	case PeriodQuarter:
		start = start.AddDate(0, -3, 0)
	case PeriodYear:
		start = start.AddDate(-1, 0, 0)
	case PeriodAll:
		start = time.Date(2020, time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return start, end
}

// WeekStart returns local midnight of the Sunday starting t's week.
func WeekStart(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}
