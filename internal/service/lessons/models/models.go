package models

import (
	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/period"
)

// ListLessonsRequest запрос уроков студента или преподавателя за период
type ListLessonsRequest struct {
	Actor            domain.Actor
	OwnerID          int64 // ID студента или преподавателя, в зависимости от метода
	Period           period.Period
	IncludeCancelled bool
}
