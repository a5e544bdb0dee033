// Package parser turns user-supplied times, hour counts and months into values.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// durationPattern matches expressions like "16", "16h", "16.5 hours", "16h30m".
var durationPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)?\s*(?:(\d+(?:\.\d+)?)\s*(m|min|mins|minute|minutes))?$`)

// ParseDuration parses a human-readable duration. A bare number is hours.
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, NewDurationError(input)
	}

	if d, err := time.ParseDuration(input); err == nil {
		if d <= 0 {
			return 0, NewDurationError(input)
		}
		return d, nil
	}

	matches := durationPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, NewDurationError(input)
	}

	var total time.Duration
	value, _ := strconv.ParseFloat(matches[1], 64)
	total += unitToDuration(value, strings.ToLower(matches[2]))

	if matches[3] != "" {
		value, _ := strconv.ParseFloat(matches[3], 64)
		total += unitToDuration(value, strings.ToLower(matches[4]))
	}

	if total <= 0 {
		return 0, NewDurationError(input)
	}
	return total, nil
}

// ParseHours parses a duration expression and returns fractional hours.
func ParseHours(input string) (float64, error) {
	d, err := ParseDuration(input)
	if err != nil {
		return 0, NewHoursError(input)
	}
	return d.Hours(), nil
}

func unitToDuration(value float64, unit string) time.Duration {
	switch unit {
	case "m", "min", "mins", "minute", "minutes":
		return time.Duration(value * float64(time.Minute))
	default:
		return time.Duration(value * float64(time.Hour))
	}
}
