package get_lesson_history

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

type HistoryService interface {
	Query(ctx context.Context, actor domain.Actor, filter domain.HistoryFilter, page, limit int) (*domain.HistoryPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
