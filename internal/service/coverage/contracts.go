package coverage

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// PaymentRepository интерфейс репозитория оплат
type PaymentRepository interface {
	ListNotRefundedByStudent(ctx context.Context, studentID int64) ([]*domain.Payment, error)
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
