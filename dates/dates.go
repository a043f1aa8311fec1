// Package dates holds the calendar arithmetic shared by cost and report
// calculations. All comparisons are date-only: the time of day and the
// location of a value are ignored once it has been truncated with Day.
package dates

import (
	"fmt"
	"time"
)

// Layout is the wire format for dates in JSON bodies, query strings and exports.
const Layout = "2006-01-02"

// Day truncates t to midnight UTC of its own calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns midnight of the first day of the given month.
func MonthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns midnight of the last day of the given month.
func MonthEnd(year, month int) time.Time {
	return MonthStart(year, month).AddDate(0, 1, -1)
}

// PrevMonth steps back one month, rolling the year over in January.
func PrevMonth(year, month int) (int, int) {
	if month <= 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// MonthIndex counts whole calendar months from the month of from to the
// given (year, month). Days are ignored.
func MonthIndex(from time.Time, year, month int) int {
	return (year-from.Year())*12 + (month - int(from.Month()))
}

// MonthsBetween counts calendar month boundaries between two dates,
// ignoring the day of month.
func MonthsBetween(from, to time.Time) int {
	return MonthIndex(from, to.Year(), int(to.Month()))
}

// ElapsedMonths is MonthsBetween plus one when the end date reaches the
// start date's day of month, so that the final month counts as a full month.
func ElapsedMonths(start, end time.Time) int {
	n := MonthsBetween(start, end)
	if end.Day() >= start.Day() {
		n++
	}
	return n
}

// Before reports whether a falls on a strictly earlier calendar date than b.
func Before(a, b time.Time) bool {
	return Day(a).Before(Day(b))
}

// Within reports whether t falls on a calendar date in [from, to].
func Within(t, from, to time.Time) bool {
	d := Day(t)
	return !d.Before(Day(from)) && !d.After(Day(to))
}

// Parse reads a YYYY-MM-DD value. An empty string yields nil.
func Parse(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}

// Format renders an optional date, empty when nil.
func Format(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(Layout)
}

// ValidateMonth checks a report month.
func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range 1-12", month)
	}
	if year < 2000 || year > 2100 {
		return fmt.Errorf("year %d out of range 2000-2100", year)
	}
	return nil
}
