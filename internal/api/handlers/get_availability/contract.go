package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

type AvailabilityResolver interface {
	Resolve(ctx context.Context, teacherID int64, date time.Time, hour int) (domain.Availability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
