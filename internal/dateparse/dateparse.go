// Package dateparse parses report date strings into calendar days.
// Reports look backward, so relative inputs resolve to past dates.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDay parses a date input and returns its day, month, and year.
// Uses the current time as the reference point.
//
// Supported formats:
//   - Exact dates: "2026-08-15"
//   - Relative days back: "-7d"
//   - Day names: "monday", "tuesday", etc. (most recent occurrence)
//   - Keywords: "today", "yesterday"
func ParseDay(input string) (day, month, year int, err error) {
	return ParseDayFrom(input, time.Now())
}

// ParseDayFrom parses a date input relative to the given reference time.
// This variant enables deterministic testing with a fixed "now".
func ParseDayFrom(input string, now time.Time) (day, month, year int, err error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return 0, 0, 0, fmt.Errorf("empty date input")
	}

	// Exact date: YYYY-MM-DD
	if t, err := time.Parse("2006-01-02", input); err == nil {
		return split(t)
	}

	switch input {
	case "today":
		return split(now)
	case "yesterday":
		return split(now.AddDate(0, 0, -1))
	}

	// Relative days back: -Nd
	if strings.HasPrefix(input, "-") && strings.HasSuffix(input, "d") && len(input) >= 3 {
		n, err := strconv.Atoi(input[1 : len(input)-1])
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("invalid relative date %q", input)
		}
		return split(now.AddDate(0, 0, -n))
	}

	// Day names resolve to the most recent occurrence, today included
	if wd, ok := weekdays[input]; ok {
		daysBack := (int(now.Weekday()) - int(wd) + 7) % 7
		return split(now.AddDate(0, 0, -daysBack))
	}

	return 0, 0, 0, fmt.Errorf("unrecognized date %q (try YYYY-MM-DD, today, yesterday, -7d, or a day name)", input)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func split(t time.Time) (day, month, year int, err error) {
	y, m, d := t.Date()
	return d, int(m), y, nil
}
