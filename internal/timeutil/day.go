package timeutil

import "time"

// SameDay reports whether a and b fall on the same local calendar date.
// This is a calendar test, not a 24-hour-window test.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same local calendar month.
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Local().Date()
	by, bm, _ := b.Local().Date()
	return ay == by && am == bm
}

// StartOfDay returns 00:00:00 local time on the day of t.
func StartOfDay(t time.Time) time.Time {
	lt := t.Local()
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay returns the last nanosecond of the day of t, local time.
func EndOfDay(t time.Time) time.Time {
	lt := t.Local()
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 59, 999999999, time.Local)
}

// MonthStart returns the first day of the month offset whole months
// from t (offset may be negative), local time.
func MonthStart(t time.Time, offset int) time.Time {
	lt := t.Local()
	return time.Date(lt.Year(), lt.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.Local)
}

// WeekStart returns the start of the local Sunday-anchored week
// containing t.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Local().Weekday()))
}

// InRange reports whether t lies in [start, end] inclusive.
func InRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
