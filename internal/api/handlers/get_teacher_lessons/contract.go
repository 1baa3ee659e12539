package get_teacher_lessons

import (
	"context"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/internal/service/lessons/models"
)

type LessonService interface {
	ListByTeacher(ctx context.Context, req *models.ListLessonsRequest) ([]*domain.Lesson, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
