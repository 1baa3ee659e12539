package create_lesson

import (
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// Request модель запроса на создание урока
type Request struct {
	Actor     domain.Actor // Кто создает урок
	StudentID int64        // ID студента
	TeacherID int64        // ID преподавателя
	Location  string       // Место проведения
	Date      time.Time    // Дата урока (без времени)
	Hour      int          // Час начала, 0..23
	IsGrand   bool         // Категория урока
	Note      *string      // Заметка (опционально)
}

// Response модель ответа с созданным уроком
type Response struct {
	Lesson    *domain.Lesson
	HistoryID int64 // ID записи CREATE в журнале
}
