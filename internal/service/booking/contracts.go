package booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// AvailabilityResolver интерфейс проверки доступности слота
type AvailabilityResolver interface {
	Resolve(ctx context.Context, teacherID int64, date time.Time, hour int) (domain.Availability, error)
}

// CoverageChecker интерфейс проверки покрытия даты оплатой
type CoverageChecker interface {
	IsCovered(ctx context.Context, studentID int64, date time.Time) (bool, error)
}

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	FindOccupying(ctx context.Context, teacherID int64, date time.Time, hour int) (*domain.Lesson, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
