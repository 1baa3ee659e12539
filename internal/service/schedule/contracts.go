package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
)

// WeeklyAvailabilityRepository интерфейс репозитория недельного расписания
type WeeklyAvailabilityRepository interface {
	GetRaw(ctx context.Context, teacherID int64) ([]byte, error)
	Upsert(ctx context.Context, teacherID int64, hours []byte) error
}

// BannedSlotRepository интерфейс репозитория запретов
type BannedSlotRepository interface {
	ListByTeacher(ctx context.Context, teacherID int64, from, to time.Time) ([]*domain.BannedSlot, error)
	Create(ctx context.Context, slot *domain.BannedSlot) (*domain.BannedSlot, error)
	Delete(ctx context.Context, teacherID int64, date time.Time, hour int) error
}

// OpenHoursRepository интерфейс репозитория часов работы
type OpenHoursRepository interface {
	Get(ctx context.Context) (*domain.OpenHours, error)
	Upsert(ctx context.Context, oh *domain.OpenHours) (*domain.OpenHours, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetTeacher(ctx context.Context, teacherID int64) (*userservice.Teacher, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
