package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearOfMonth(t *testing.T) {
	tests := []struct {
		month    int
		expected int
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{11, 1},
		{12, 1},
		{13, 2},
		{24, 2},
		{25, 3},
		{300, 25},
		{301, 26},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("month_%d", tt.month), func(t *testing.T) {
			assert.Equal(t, tt.expected, YearOfMonth(tt.month))
		})
	}
}

func TestIsYearEnd(t *testing.T) {
	assert.False(t, IsYearEnd(0))
	assert.False(t, IsYearEnd(11))
	assert.True(t, IsYearEnd(12))
	assert.False(t, IsYearEnd(13))
	assert.True(t, IsYearEnd(300))
	assert.False(t, IsYearEnd(-12))
}

func TestMonthsInYears(t *testing.T) {
	assert.Equal(t, 0, MonthsInYears(0))
	assert.Equal(t, 300, MonthsInYears(25))
	assert.Equal(t, 1200, MonthsInYears(100))
}

func TestMonthDate(t *testing.T) {
	start := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), MonthDate(start, 1))
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), MonthDate(start, 12))
	assert.Equal(t, time.Date(2050, 2, 1, 0, 0, 0, 0, time.UTC), MonthDate(start, 300))
}

func TestMonthDate_EndOfMonthStart(t *testing.T) {
	// Anchoring on the first of the month avoids time.AddDate normalising Jan 31 + 1 month into March.
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.February, MonthDate(start, 2).Month())
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "", MonthLabel(time.Time{}, 5))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01", MonthLabel(start, 1))
	assert.Equal(t, "2025-12", MonthLabel(start, 12))
	assert.Equal(t, "2026-01", MonthLabel(start, 13))
}

func TestAddMonths(t *testing.T) {
	d := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), AddMonths(d, 12))
	assert.Equal(t, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), AddMonths(d, -1))
}
