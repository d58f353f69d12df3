package dateutil

import (
	"fmt"
	"time"
)

// isoLayouts are the date formats accepted for scheduled entries, most specific last
var isoLayouts = []string{
	"2006-01-02",
	"2006-01",
	time.RFC3339,
}

// ParseISODate parses a calendar date in one of the accepted ISO layouts
func ParseISODate(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO date %q", value)
}

// MonthIndex returns a monotonically increasing index for the calendar month of a date
func MonthIndex(date time.Time) int {
	return date.Year()*12 + int(date.Month()) - 1
}

// MonthsBetween returns the number of calendar months from one date to another.
// Days are ignored: Jan 31 to Feb 1 is one month.
func MonthsBetween(fromDate, toDate time.Time) int {
	return MonthIndex(toDate) - MonthIndex(fromDate)
}

// SameMonth checks if two dates fall in the same calendar month
func SameMonth(a, b time.Time) bool {
	return MonthIndex(a) == MonthIndex(b)
}

// BeginningOfMonth returns the first instant of the month for a given date
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// AddMonths adds calendar months to the beginning of the month of a date.
// Anchoring on the first day avoids time.AddDate normalizing Jan 31 + 1 month into March.
func AddMonths(date time.Time, months int) time.Time {
	return BeginningOfMonth(date).AddDate(0, months, 0)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the month of a given date
func DaysInMonth(date time.Time) int {
	return BeginningOfMonth(date).AddDate(0, 1, -1).Day()
}
