package handlers

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// LessonResponse HTTP модель урока, общая для всех ручек уроков
type LessonResponse struct {
	ID        int64   `json:"id"`
	StudentID int64   `json:"studentId"`
	TeacherID int64   `json:"teacherId"`
	Location  string  `json:"location"`
	DueDate   string  `json:"dueDate"`
	DueHour   int     `json:"dueHour"`
	IsDone    bool    `json:"isDone"`
	IsGrand   bool    `json:"isGrand"`
	Note      *string `json:"note,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// NewLessonResponse конвертирует урок в HTTP модель
func NewLessonResponse(l *domain.Lesson) *LessonResponse {
	return &LessonResponse{
		ID:        l.ID,
		StudentID: l.StudentID,
		TeacherID: l.TeacherID,
		Location:  l.Location,
		DueDate:   l.DueDate.Format(domain.DateFormat),
		DueHour:   l.DueHour,
		IsDone:    l.IsDone,
		IsGrand:   l.IsGrand,
		Note:      l.Note,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
		UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
	}
}

// NewLessonListResponse конвертирует список уроков
func NewLessonListResponse(lessons []*domain.Lesson) []*LessonResponse {
	out := make([]*LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, NewLessonResponse(l))
	}
	return out
}
