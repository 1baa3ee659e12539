package create_lesson

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.TeacherID <= 0 {
		return fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidHour(req.Hour) {
		return fmt.Errorf("%w: hour must be within %d..%d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}

	if strings.TrimSpace(req.Location) == "" || len(req.Location) > domain.MaxLocationLen {
		return fmt.Errorf("%w: location is required and must be at most %d characters", ErrInvalidInput, domain.MaxLocationLen)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// isDateInPast true, если календарная дата урока раньше сегодняшней
func isDateInPast(date time.Time, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
