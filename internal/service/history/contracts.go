package history

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// HistoryRepository интерфейс репозитория журнала изменений уроков
type HistoryRepository interface {
	Create(ctx context.Context, entry *domain.LessonModifyHistory) (*domain.LessonModifyHistory, error)
	List(ctx context.Context, filter domain.HistoryFilter, limit, offset int) ([]*domain.LessonModifyHistory, error)
	Count(ctx context.Context, filter domain.HistoryFilter) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
