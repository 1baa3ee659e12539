package get_coverage

import (
	"context"
	"time"
)

type CoverageService interface {
	IsCovered(ctx context.Context, studentID int64, date time.Time) (bool, error)
	Today() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
