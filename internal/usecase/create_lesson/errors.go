package create_lesson

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_lesson: invalid input data")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("create_lesson: lesson date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_lesson: internal error")
)
