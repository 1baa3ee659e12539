package reschedule_lesson

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LessonID <= 0 {
		return fmt.Errorf("%w: lessonID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidHour(req.Hour) {
		return fmt.Errorf("%w: hour must be within %d..%d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}

	if !req.Actor.IsIdentified() {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast true, если календарная дата урока раньше сегодняшней
func isDateInPast(date time.Time, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
