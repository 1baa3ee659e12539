package update_lesson

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// LessonRepository интерфейс репозитория уроков
type LessonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lesson, error)
	UpdateDetails(ctx context.Context, lesson *domain.Lesson) error
}

// BookingValidator интерфейс проверки прав на изменение урока
type BookingValidator interface {
	CheckUpdate(actor domain.Actor, lesson *domain.Lesson, changesDone bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
