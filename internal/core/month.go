package core

import "time"

// NormalizeMonth collapses any instant to the first instant of its
// calendar month in UTC, discarding day-of-month and time-of-day.
func NormalizeMonth(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first instant of the given calendar month in UTC.
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the inclusive start and exclusive end of the given
// calendar month in UTC.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = MonthStart(year, month)
	return start, start.AddDate(0, 1, 0)
}

// PreviousMonth steps one calendar month back, rolling the year when the
// month wraps from January to December.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
