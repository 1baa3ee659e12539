// Package period implements week-aligned (Monday to Sunday) browsing windows.
//
// All functions are pure: the time zone of the input date is preserved and
// shifting always happens in calendar days, so a period keeps its
// 00:00:00.000 / 23:59:59.999 boundaries across daylight saving changes.
package period

import (
	"iter"
	"time"
)

// Period is an inclusive window from Monday 00:00:00.000 to Sunday 23:59:59.999.
type Period struct {
	StartDate time.Time
	EndDate   time.Time
}

// DaysInWeek is the length of every period.
const DaysInWeek = 7

// MondayIndex returns the ISO-style position of t's weekday: Monday=0 ... Sunday=6.
// time.Sunday (0) is treated as the last day of the week, not the first.
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % DaysInWeek
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Current returns the week containing date.
func Current(date time.Time) Period {
	start := StartOfDay(date).AddDate(0, 0, -MondayIndex(date))
	return Period{
		StartDate: start,
		EndDate:   endOfWeek(start),
	}
}

// Next shifts p forward by exactly seven days.
func Next(p Period) Period {
	return Period{
		StartDate: p.StartDate.AddDate(0, 0, DaysInWeek),
		EndDate:   p.EndDate.AddDate(0, 0, DaysInWeek),
	}
}

// Previous shifts p backward by exactly seven days.
func Previous(p Period) Period {
	return Period{
		StartDate: p.StartDate.AddDate(0, 0, -DaysInWeek),
		EndDate:   p.EndDate.AddDate(0, 0, -DaysInWeek),
	}
}

// Shift moves p by n weeks; negative n moves backward.
func Shift(p Period, n int) Period {
	for ; n > 0; n-- {
		p = Next(p)
	}
	for ; n < 0; n++ {
		p = Previous(p)
	}
	return p
}

// Dates yields every calendar date of p at midnight, ascending.
// The sequence is finite and can be ranged over any number of times.
func (p Period) Dates() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := StartOfDay(p.StartDate); !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Contains reports whether t falls inside p.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

func endOfWeek(monday time.Time) time.Time {
	sunday := monday.AddDate(0, 0, DaysInWeek-1)
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, int(999*time.Millisecond), sunday.Location())
}
