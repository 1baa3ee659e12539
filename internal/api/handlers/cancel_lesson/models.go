package cancel_lesson

import (
	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	cancelLesson "github.com/m04kA/SMC-LessonService/internal/usecase/cancel_lesson"
)

// CancelLessonResponse HTTP response model
type CancelLessonResponse struct {
	Lesson    *handlers.LessonResponse `json:"lesson"`
	HistoryID int64                    `json:"historyId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelLesson.Response) *CancelLessonResponse {
	return &CancelLessonResponse{
		Lesson:    handlers.NewLessonResponse(resp.Lesson),
		HistoryID: resp.HistoryID,
	}
}
