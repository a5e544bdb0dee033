package parser

import (
	"testing"
	"time"
)

// Run with: go test ./internal/parser -fuzz=FuzzParseTimestamp -fuzztime=30s
func FuzzParseTimestamp(f *testing.F) {
	seeds := []string{
		"now",
		"2 hours ago",
		"yesterday 8pm",
		"today 7am",
		"8pm",
		"20:30",
		"2024-03-14 20:00",
		"last monday",
		"",
		string(make([]byte, 1000)),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Must never panic.
		_, _ = ParseTimestamp(input, now)
	})
}

// Run with: go test ./internal/parser -fuzz=FuzzParseDuration -fuzztime=30s
func FuzzParseDuration(f *testing.F) {
	seeds := []string{"16h", "90m", "1h30m", "16", "2.5h", "-1h", "", "h", "999999999999h"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		_, _ = ParseDuration(input)
		_, _ = ParseHours(input)
	})
}

func FuzzParseMonth(f *testing.F) {
	seeds := []string{"2024-03", "March 2024", "Mar 2024", "2024/03", "", "2024-13", "garbage"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		_, month, err := ParseMonth(input, now)
		if err != nil {
			return
		}
		if month < time.January || month > time.December {
			t.Errorf("ParseMonth(%q) returned month %d", input, month)
		}
	})
}
