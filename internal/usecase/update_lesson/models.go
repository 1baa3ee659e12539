package update_lesson

import "github.com/m04kA/SMC-LessonService/internal/domain"

// Request модель запроса на изменение заметки и отметки о проведении
// Дата и час здесь не меняются: перенос - это отмена и новая запись
type Request struct {
	Actor    domain.Actor
	LessonID int64
	Note     *string // пустая строка удаляет заметку
	IsDone   *bool
}

// Response модель ответа с обновленным уроком
type Response struct {
	Lesson *domain.Lesson
}
