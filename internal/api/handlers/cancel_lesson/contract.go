package cancel_lesson

import (
	"context"

	cancelLesson "github.com/m04kA/SMC-LessonService/internal/usecase/cancel_lesson"
)

type CancelLessonUseCase interface {
	Execute(ctx context.Context, req *cancelLesson.Request) (*cancelLesson.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
