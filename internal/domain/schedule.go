package domain

import (
	"fmt"
	"time"
)

// BannedSlot blocks one exact (teacher, date, hour) slot regardless of weekly availability
type BannedSlot struct {
	ID        int64
	TeacherID int64
	Date      time.Time
	Hour      int
	CreatedAt time.Time
}

// OpenHours is the location-wide bound on bookable hours, both ends inclusive
type OpenHours struct {
	StartHour int
	EndHour   int
	UpdatedAt time.Time
}

// Contains returns true if hour lies within [StartHour, EndHour]
func (o *OpenHours) Contains(hour int) bool {
	return o.StartHour <= hour && hour <= o.EndHour
}

// Validate проверяет границы часов работы
func (o *OpenHours) Validate() error {
	if !IsValidHour(o.StartHour) || !IsValidHour(o.EndHour) {
		return fmt.Errorf("%w: hours must be within %d..%d", ErrInvalidOpenHours, MinHour, MaxHour)
	}
	if o.StartHour > o.EndHour {
		return fmt.Errorf("%w: start hour %d is after end hour %d", ErrInvalidOpenHours, o.StartHour, o.EndHour)
	}
	return nil
}
