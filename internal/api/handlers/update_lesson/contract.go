package update_lesson

import (
	"context"

	updateLesson "github.com/m04kA/SMC-LessonService/internal/usecase/update_lesson"
)

type UpdateLessonUseCase interface {
	Execute(ctx context.Context, req *updateLesson.Request) (*updateLesson.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
