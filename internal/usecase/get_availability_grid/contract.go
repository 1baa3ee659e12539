package get_availability_grid

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LessonService/pkg/period"
)

// AvailabilityResolver интерфейс построения сетки доступности
type AvailabilityResolver interface {
	ResolveGrid(ctx context.Context, teacherID int64, p period.Period) (*domain.AvailabilityGrid, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetTeacher(ctx context.Context, teacherID int64) (*userservice.Teacher, error)
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
