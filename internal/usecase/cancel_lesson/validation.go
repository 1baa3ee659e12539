package cancel_lesson

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LessonID <= 0 {
		return fmt.Errorf("%w: lessonID must be positive", ErrInvalidInput)
	}
	if !req.Actor.IsIdentified() {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}
	return nil
}
