package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// WeeklyAvailabilityRepository источник недельного расписания преподавателя
type WeeklyAvailabilityRepository interface {
	GetRaw(ctx context.Context, teacherID int64) ([]byte, error)
}

// BannedSlotRepository источник запретов на слоты
type BannedSlotRepository interface {
	Exists(ctx context.Context, teacherID int64, date time.Time, hour int) (bool, error)
	ListByTeacher(ctx context.Context, teacherID int64, from, to time.Time) ([]*domain.BannedSlot, error)
}

// OpenHoursRepository источник часов работы площадки
type OpenHoursRepository interface {
	Get(ctx context.Context) (*domain.OpenHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
