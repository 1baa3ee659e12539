package update_lesson

import (
	"github.com/m04kA/SMC-LessonService/internal/domain"
	updateLesson "github.com/m04kA/SMC-LessonService/internal/usecase/update_lesson"
)

// UpdateLessonRequest HTTP request model, отсутствующее поле не меняется
type UpdateLessonRequest struct {
	Note   *string `json:"note,omitempty" validate:"omitempty,max=500"`
	IsDone *bool   `json:"isDone,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateLessonRequest) ToUseCaseRequest(actor domain.Actor, lessonID int64) *updateLesson.Request {
	return &updateLesson.Request{
		Actor:    actor,
		LessonID: lessonID,
		Note:     r.Note,
		IsDone:   r.IsDone,
	}
}
