package open_hours

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetOpenHours(ctx context.Context) (*domain.OpenHours, error)
	SetOpenHours(ctx context.Context, req *models.SetOpenHoursRequest) (*domain.OpenHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
