package reschedule_lesson

import (
	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	rescheduleLesson "github.com/m04kA/SMC-LessonService/internal/usecase/reschedule_lesson"
)

// RescheduleLessonRequest HTTP request model
type RescheduleLessonRequest struct {
	DueDate string `json:"dueDate" validate:"required"`
	DueHour int    `json:"dueHour" validate:"min=0,max=23"`
}

// RescheduleLessonResponse HTTP response model
type RescheduleLessonResponse struct {
	Cancelled *handlers.LessonResponse `json:"cancelled"`
	Created   *handlers.LessonResponse `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleLessonRequest) ToUseCaseRequest(actor domain.Actor, lessonID int64) (*rescheduleLesson.Request, error) {
	date, err := handlers.ParseDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	return &rescheduleLesson.Request{
		Actor:    actor,
		LessonID: lessonID,
		Date:     date,
		Hour:     r.DueHour,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleLesson.Response) *RescheduleLessonResponse {
	return &RescheduleLessonResponse{
		Cancelled: handlers.NewLessonResponse(resp.Cancelled),
		Created:   handlers.NewLessonResponse(resp.Created),
	}
}
