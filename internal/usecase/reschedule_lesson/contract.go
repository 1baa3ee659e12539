package reschedule_lesson

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lesson, error)
	Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
	Cancel(ctx context.Context, id int64) error
}

// BookingValidator интерфейс проверок отмены и создания
type BookingValidator interface {
	CheckCancel(actor domain.Actor, lesson *domain.Lesson) error
	CheckCreate(ctx context.Context, studentID, teacherID int64, date time.Time, hour int) error
}

// HistoryRecorder интерфейс журнала изменений уроков
type HistoryRecorder interface {
	Record(ctx context.Context, entry *domain.LessonModifyHistory) (*domain.LessonModifyHistory, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker интерфейс блокировки слота
type SlotLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// MetricsRecorder интерфейс учета исходов бронирования
type MetricsRecorder interface {
	RecordBookingDecision(operation, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
