package domain

import "time"

// Business validation constants
const (
	MinHour        = 0
	MaxHour        = 23
	HoursInDay     = MaxHour - MinHour + 1
	MaxNoteLength  = 500
	MaxLocationLen = 255
)

// Pagination
const (
	DefaultHistoryPage  = 1
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
	MaxHistoryPage      = 100000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// IsValidHour returns true if hour is within the daily range
func IsValidHour(hour int) bool {
	return hour >= MinHour && hour <= MaxHour
}

// DateOnly отбрасывает время и зону, оставляя календарную дату в UTC
// Все даты уроков, банов и оплат сравниваются в этом виде
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
