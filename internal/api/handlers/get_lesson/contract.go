package get_lesson

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

type LessonService interface {
	GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Lesson, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
