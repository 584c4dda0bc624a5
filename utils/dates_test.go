package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockMinutes(t *testing.T) {
	m, err := ClockMinutes("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = ClockMinutes("25:00")
	assert.Error(t, err)
	_, err = ClockMinutes("0930")
	assert.Error(t, err)
}

func TestHoursWorked(t *testing.T) {
	assert.Equal(t, 1.5, HoursWorked("10:00", "11:30"))
	assert.Equal(t, 8.0, HoursWorked("09:00", "17:00"))

	// Clamped to zero when the span is inverted or zero
	assert.Equal(t, 0.0, HoursWorked("17:00", "09:00"))
	assert.Equal(t, 0.0, HoursWorked("10:00", "10:00"))

	// Unparseable inputs count as zero rather than poisoning a report
	assert.Equal(t, 0.0, HoursWorked("", "11:00"))
	assert.Equal(t, 0.0, HoursWorked("10:00", "bogus"))
}

func TestDaysBetween(t *testing.T) {
	loc := time.UTC
	a := time.Date(2025, 3, 1, 23, 0, 0, 0, loc)
	b := time.Date(2025, 3, 2, 1, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
}
