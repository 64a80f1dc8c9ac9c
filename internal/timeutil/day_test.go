package timeutil

import (
	"testing"
	"time"
)

func TestSameDayIsCalendarBased(t *testing.T) {
	lateNight := time.Date(2024, 6, 14, 23, 50, 0, 0, time.Local)
	earlyMorning := time.Date(2024, 6, 15, 0, 10, 0, 0, time.Local)

	if SameDay(lateNight, earlyMorning) {
		t.Error("dates 20 minutes apart across midnight reported as same day")
	}
	if !SameDay(lateNight, lateNight.Add(-23*time.Hour)) {
		t.Error("times on the same date reported as different days")
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, 6, 15, 13, 45, 12, 0, time.Local)

	start := StartOfDay(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Day() != 15 {
		t.Errorf("StartOfDay = %v", start)
	}

	end := EndOfDay(at)
	if end.Hour() != 23 || end.Minute() != 59 || end.Day() != 15 {
		t.Errorf("EndOfDay = %v", end)
	}
	if !end.After(start) {
		t.Error("EndOfDay not after StartOfDay")
	}
}

func TestMonthStartOffsets(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	if got := MonthStart(at, 0); got.Month() != time.March || got.Day() != 1 {
		t.Errorf("MonthStart(0) = %v", got)
	}
	// Offsets cross year boundaries
	if got := MonthStart(at, -3); got.Month() != time.December || got.Year() != 2023 {
		t.Errorf("MonthStart(-3) = %v", got)
	}
}

func TestWeekStartIsSunday(t *testing.T) {
	// 2024-06-12 is a Wednesday
	wednesday := time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)
	ws := WeekStart(wednesday)

	if ws.Weekday() != time.Sunday {
		t.Errorf("WeekStart weekday = %v, want Sunday", ws.Weekday())
	}
	if ws.Day() != 9 {
		t.Errorf("WeekStart day = %d, want 9", ws.Day())
	}

	sunday := time.Date(2024, 6, 9, 8, 0, 0, 0, time.Local)
	if got := WeekStart(sunday); got.Day() != 9 {
		t.Errorf("WeekStart of a Sunday = %v, want same day", got)
	}
}

func TestInRangeInclusive(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local)

	if !InRange(start, start, end) || !InRange(end, start, end) {
		t.Error("bounds excluded from inclusive range")
	}
	if InRange(end.Add(time.Nanosecond), start, end) {
		t.Error("time after end included in range")
	}
	if InRange(start.Add(-time.Nanosecond), start, end) {
		t.Error("time before start included in range")
	}
}
