package create_lesson

import (
	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/domain"
	createLesson "github.com/m04kA/SMC-LessonService/internal/usecase/create_lesson"
)

// CreateLessonRequest HTTP request model
type CreateLessonRequest struct {
	StudentID int64   `json:"studentId" validate:"required,gt=0"`
	TeacherID int64   `json:"teacherId" validate:"required,gt=0"`
	Location  string  `json:"location" validate:"required,max=255"`
	DueDate   string  `json:"dueDate" validate:"required"` // "2025-03-03"
	DueHour   int     `json:"dueHour" validate:"min=0,max=23"`
	IsGrand   bool    `json:"isGrand"`
	Note      *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// CreateLessonResponse HTTP response model
type CreateLessonResponse struct {
	Lesson    *handlers.LessonResponse `json:"lesson"`
	HistoryID int64                    `json:"historyId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateLessonRequest) ToUseCaseRequest(actor domain.Actor) (*createLesson.Request, error) {
	date, err := handlers.ParseDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	return &createLesson.Request{
		Actor:     actor,
		StudentID: r.StudentID,
		TeacherID: r.TeacherID,
		Location:  r.Location,
		Date:      date,
		Hour:      r.DueHour,
		IsGrand:   r.IsGrand,
		Note:      r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createLesson.Response) *CreateLessonResponse {
	return &CreateLessonResponse{
		Lesson:    handlers.NewLessonResponse(resp.Lesson),
		HistoryID: resp.HistoryID,
	}
}
