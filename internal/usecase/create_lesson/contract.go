package create_lesson

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
)

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
}

// BookingValidator интерфейс проверки слота перед созданием урока
type BookingValidator interface {
	CheckCreate(ctx context.Context, studentID, teacherID int64, date time.Time, hour int) error
}

// HistoryRecorder интерфейс журнала изменений уроков
type HistoryRecorder interface {
	Record(ctx context.Context, entry *domain.LessonModifyHistory) (*domain.LessonModifyHistory, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetStudent(ctx context.Context, studentID int64) (*userservice.Student, error)
	GetTeacher(ctx context.Context, teacherID int64) (*userservice.Teacher, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker интерфейс блокировки слота на время проверки и записи
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
