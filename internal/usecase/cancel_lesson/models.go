package cancel_lesson

import "github.com/m04kA/SMC-LessonService/internal/domain"

// Request модель запроса на отмену урока
type Request struct {
	Actor    domain.Actor
	LessonID int64
}

// Response модель ответа с отмененным уроком
type Response struct {
	Lesson    *domain.Lesson
	HistoryID int64 // ID записи CANCEL в журнале
}
