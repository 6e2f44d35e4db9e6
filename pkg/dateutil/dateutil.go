package dateutil

import (
	"time"
)

// YearOfMonth returns the 1-based year a 1-based month index falls in (ceil(month/12)).
// Month 0 belongs to year 0.
func YearOfMonth(month int) int {
	if month <= 0 {
		return 0
	}
	return (month + 11) / 12
}

// IsYearEnd reports whether a 1-based month index closes a year.
func IsYearEnd(month int) bool {
	return month > 0 && month%12 == 0
}

// MonthsInYears converts a whole number of years into months.
func MonthsInYears(years int) int {
	return years * 12
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// MonthDate returns the calendar month of a 1-based schedule month counted from start.
// Month 1 is the month of start itself.
func MonthDate(start time.Time, month int) time.Time {
	first := BeginningOfMonth(start)
	return AddMonths(first, month-1)
}

// MonthLabel formats the calendar month of a schedule month as "2006-01".
// An empty string is returned when no start date is configured.
func MonthLabel(start time.Time, month int) string {
	if start.IsZero() {
		return ""
	}
	return MonthDate(start, month).Format("2006-01")
}

// BeginningOfMonth returns the first day of the month for a given date
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
