package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// layouts are tried before natural-language parsing, in local time.
var layouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a time relative to now. It accepts "now", RFC 3339,
// "YYYY-MM-DD HH:MM", a negative offset such as "-2h30m", and natural
// language ("yesterday 8pm", "3 hours ago").
func ParseTimestamp(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now, nil
	}

	if strings.HasPrefix(input, "-") {
		d, err := ParseDuration(input[1:])
		if err != nil {
			return time.Time{}, NewTimestampError(input)
		}
		return now.Add(-d), nil
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		DefaultTimezone:     now.Location(),
		PreferredDateSource: dateparser.Past,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, NewTimestampError(input)
	}
	return result.Time, nil
}

// ParseMonth parses "YYYY-MM", "January 2024" or "Jan 2024". An empty input
// yields the month containing now.
func ParseMonth(input string, now time.Time) (int, time.Month, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.Year(), now.Month(), nil
	}

	for _, layout := range []string{"2006-01", "January 2006", "Jan 2006", "2006/01"} {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Year(), t.Month(), nil
		}
	}
	return 0, 0, NewMonthError(input)
}
