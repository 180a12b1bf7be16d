package library

import "time"

// DateFormat is the wire format for all calendar dates.
const DateFormat = "2006-01-02"

// Today returns the current calendar date in UTC (midnight).
func Today() time.Time {
	return DateOnly(time.Now().UTC())
}

// DateOnly truncates t to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsFuture reports whether t falls on a later calendar date than today.
func IsFuture(t time.Time) bool {
	return DateOnly(t).After(Today())
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
