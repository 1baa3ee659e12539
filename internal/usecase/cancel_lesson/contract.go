package cancel_lesson

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lesson, error)
	Cancel(ctx context.Context, id int64) error
}

// BookingValidator интерфейс проверки прав на отмену
type BookingValidator interface {
	CheckCancel(actor domain.Actor, lesson *domain.Lesson) error
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
