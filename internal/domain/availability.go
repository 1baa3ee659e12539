package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-LessonService/pkg/period"
)

// Weekday is a Monday-first weekday key used in weekly availability
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// Weekdays в порядке недели, индекс совпадает с period.MondayIndex
var Weekdays = [period.DaysInWeek]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf возвращает ключ дня недели для даты (воскресенье - последний день)
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[period.MondayIndex(t)]
}

// IsValid returns true if w is one of mon..sun
func (w Weekday) IsValid() bool {
	return slices.Contains(Weekdays[:], w)
}

// WeeklyAvailability maps a weekday to the hours a teacher may teach on it
type WeeklyAvailability map[Weekday][]int

// Has returns true if hour is declared for the weekday
func (a WeeklyAvailability) Has(day Weekday, hour int) bool {
	return slices.Contains(a[day], hour)
}

// Validate checks keys, hour range and uniqueness of hours within a day
func (a WeeklyAvailability) Validate() error {
	for day, hours := range a {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidWeeklyAvailability, day)
		}
		seen := make(map[int]struct{}, len(hours))
		for _, h := range hours {
			if !IsValidHour(h) {
				return fmt.Errorf("%w: %s: hour %d out of range", ErrInvalidWeeklyAvailability, day, h)
			}
			if _, dup := seen[h]; dup {
				return fmt.Errorf("%w: %s: duplicate hour %d", ErrInvalidWeeklyAvailability, day, h)
			}
			seen[h] = struct{}{}
		}
	}
	return nil
}

// Normalized возвращает копию с отсортированными часами и без пустых дней
func (a WeeklyAvailability) Normalized() WeeklyAvailability {
	out := make(WeeklyAvailability, len(a))
	for day, hours := range a {
		if len(hours) == 0 {
			continue
		}
		sorted := slices.Clone(hours)
		slices.Sort(sorted)
		out[day] = sorted
	}
	return out
}

// EncodeWeeklyAvailability сериализует расписание для хранения
func EncodeWeeklyAvailability(a WeeklyAvailability) ([]byte, error) {
	return json.Marshal(a.Normalized())
}

// DecodeWeeklyAvailability разбирает сохранённое расписание
func DecodeWeeklyAvailability(data []byte) (WeeklyAvailability, error) {
	var a WeeklyAvailability
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeeklyAvailability, err)
	}
	if a == nil {
		a = WeeklyAvailability{}
	}
	return a, nil
}

// TeacherWeeklyAvailability is the stored weekly schedule of a teacher
type TeacherWeeklyAvailability struct {
	TeacherID int64
	Hours     WeeklyAvailability
	UpdatedAt time.Time
}

// UnavailableReason explains why a slot cannot be booked
type UnavailableReason string

const (
	ReasonNotWorkingHours       UnavailableReason = "NOT_WORKING_HOURS"
	ReasonOutsideOperatingHours UnavailableReason = "OUTSIDE_OPERATING_HOURS"
	ReasonBannedSlot            UnavailableReason = "BANNED_SLOT"
)

// Availability is the resolver's answer for a single slot
type Availability struct {
	Available bool
	Reason    UnavailableReason // пусто, если слот доступен
}

// Available доступный слот
func Available() Availability {
	return Availability{Available: true}
}

// Unavailable недоступный слот с причиной
func Unavailable(reason UnavailableReason) Availability {
	return Availability{Reason: reason}
}

// SlotAvailability availability of one (date, hour) cell of a grid
type SlotAvailability struct {
	Date time.Time
	Hour int
	Availability
}

// AvailabilityGrid availability of every hour of every day in a period, ordered by date then hour
type AvailabilityGrid struct {
	TeacherID int64
	Period    period.Period
	Slots     []SlotAvailability
}

// Lookup находит ячейку сетки по дате и часу
func (g *AvailabilityGrid) Lookup(date time.Time, hour int) (Availability, bool) {
	day := DateOnly(date)
	for _, s := range g.Slots {
		if s.Hour == hour && DateOnly(s.Date).Equal(day) {
			return s.Availability, true
		}
	}
	return Availability{}, false
}
