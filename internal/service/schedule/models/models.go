package models

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// SetWeeklyAvailabilityRequest запрос на замену недельного расписания преподавателя
type SetWeeklyAvailabilityRequest struct {
	Actor     domain.Actor
	TeacherID int64
	Hours     domain.WeeklyAvailability
}

// BanSlotRequest запрос на запрет или снятие запрета со слота
type BanSlotRequest struct {
	Actor     domain.Actor
	TeacherID int64
	Date      time.Time
	Hour      int
}

// SetOpenHoursRequest запрос на изменение часов работы
type SetOpenHoursRequest struct {
	Actor     domain.Actor
	StartHour int
	EndHour   int
}

// ListBannedSlotsRequest запрос списка запретов за диапазон дат включительно
type ListBannedSlotsRequest struct {
	TeacherID int64
	From      time.Time
	To        time.Time
}
