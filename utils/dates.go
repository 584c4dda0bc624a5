// utils/dates.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ClockMinutes converts an HH:mm string to minutes since midnight.
func ClockMinutes(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	return h*60 + m, nil
}

// HoursWorked returns the span between two HH:mm strings in hours,
// clamped to zero. Unparseable inputs count as zero.
func HoursWorked(start, end string) float64 {
	s, err := ClockMinutes(start)
	if err != nil {
		return 0
	}
	e, err := ClockMinutes(end)
	if err != nil {
		return 0
	}
	if e <= s {
		return 0
	}
	return float64(e-s) / 60.0
}
