package reschedule_lesson

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// Request модель запроса на перенос урока в другой слот того же преподавателя
type Request struct {
	Actor    domain.Actor
	LessonID int64
	Date     time.Time // Новая дата (без времени)
	Hour     int       // Новый час
}

// Response модель ответа: отмененный урок и созданный вместо него
type Response struct {
	Cancelled *domain.Lesson
	Created   *domain.Lesson
}
