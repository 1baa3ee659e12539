package history

import (
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

func validateEntry(entry *domain.LessonModifyHistory) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is required", ErrInvalidInput)
	}
	if entry.LessonID <= 0 || entry.TeacherID <= 0 {
		return fmt.Errorf("%w: lesson_id and teacher_id must be positive", ErrInvalidInput)
	}
	if !entry.ModifyType.IsValid() {
		return fmt.Errorf("%w: unknown modify type %q", ErrInvalidInput, entry.ModifyType)
	}
	if !entry.CreatedByType.IsValid() || entry.CreatedByID <= 0 {
		return fmt.Errorf("%w: author is required", ErrInvalidInput)
	}
	if !domain.IsValidHour(entry.SnapshotDueHour) {
		return fmt.Errorf("%w: snapshot hour %d out of range", ErrInvalidInput, entry.SnapshotDueHour)
	}
	return nil
}

func validateFilter(filter domain.HistoryFilter) error {
	if filter.Type != nil && !filter.Type.IsValid() {
		return fmt.Errorf("%w: unknown modify type %q", ErrInvalidInput, *filter.Type)
	}
	if filter.CreatedByType != nil && !filter.CreatedByType.IsValid() {
		return fmt.Errorf("%w: unknown actor type %q", ErrInvalidInput, *filter.CreatedByType)
	}
	return nil
}

// normalizePage нулевые значения заменяются значениями по умолчанию
func normalizePage(page, limit int) (int, int, error) {
	if page == 0 {
		page = domain.DefaultHistoryPage
	}
	if limit == 0 {
		limit = domain.DefaultHistoryLimit
	}

	// Верхняя граница держит offset = (page-1)*limit в пределах int
	if page < 1 || page > domain.MaxHistoryPage {
		return 0, 0, fmt.Errorf("%w: page must be between 1 and %d", ErrInvalidInput, domain.MaxHistoryPage)
	}
	if limit < 1 || limit > domain.MaxHistoryLimit {
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxHistoryLimit)
	}

	return page, limit, nil
}
