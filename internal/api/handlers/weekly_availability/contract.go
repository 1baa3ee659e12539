package weekly_availability

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeeklyAvailability(ctx context.Context, teacherID int64) (*domain.TeacherWeeklyAvailability, error)
	SetWeeklyAvailability(ctx context.Context, req *models.SetWeeklyAvailabilityRequest) (*domain.TeacherWeeklyAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
