package reschedule_lesson

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_lesson: invalid input data")

	// ErrDateInPast возвращается при переносе на прошедшую дату
	ErrDateInPast = errors.New("reschedule_lesson: lesson date is in the past")

	// ErrSameSlot возвращается при переносе в тот же слот
	ErrSameSlot = errors.New("reschedule_lesson: lesson already holds this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_lesson: internal error")
)
