package update_lesson

import (
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LessonID <= 0 {
		return fmt.Errorf("%w: lessonID must be positive", ErrInvalidInput)
	}

	if req.Note == nil && req.IsDone == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
