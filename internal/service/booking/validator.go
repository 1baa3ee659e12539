package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
)

// Validator решает, можно ли создать, изменить или отменить урок
// Сам ничего не записывает: вызывающий выполняет проверку и запись в одной транзакции
type Validator struct {
	resolver   AvailabilityResolver
	coverage   CoverageChecker
	lessonRepo LessonRepository
	logger     Logger
}

// NewValidator создает новый экземпляр валидатора бронирований
func NewValidator(
	resolver AvailabilityResolver,
	coverage CoverageChecker,
	lessonRepo LessonRepository,
	logger Logger,
) *Validator {
	return &Validator{
		resolver:   resolver,
		coverage:   coverage,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// CheckCreate проверяет слот для нового урока:
// доступность (SlotUnavailableError), оплату (ErrPaymentNotActive), занятость (ErrSlotConflict)
func (v *Validator) CheckCreate(ctx context.Context, studentID, teacherID int64, date time.Time, hour int) error {
	day := date.Format(domain.DateFormat)

	// 1. Доступность слота
	availability, err := v.resolver.Resolve(ctx, teacherID, date, hour)
	if err != nil {
		return fmt.Errorf("%w: CheckCreate - resolve: %w", ErrInternal, err)
	}
	if !availability.Available {
		v.logger.Warn("CheckCreate: teacher=%d %s %02d:00 unavailable: %s", teacherID, day, hour, availability.Reason)
		return domain.NewSlotUnavailableError(availability.Reason)
	}

	// 2. Оплата на дату урока
	covered, err := v.coverage.IsCovered(ctx, studentID, date)
	if err != nil {
		return fmt.Errorf("%w: CheckCreate - coverage: %w", ErrInternal, err)
	}
	if !covered {
		v.logger.Warn("CheckCreate: student=%d has no payment for %s", studentID, day)
		return domain.ErrPaymentNotActive
	}

	// 3. Слот не занят другим уроком (FOR UPDATE внутри транзакции)
	occupying, err := v.lessonRepo.FindOccupying(ctx, teacherID, date, hour)
	if err != nil && !errors.Is(err, lessonRepo.ErrLessonNotFound) {
		return fmt.Errorf("%w: CheckCreate - find occupying: %w", ErrInternal, err)
	}
	if occupying != nil {
		v.logger.Warn("CheckCreate: teacher=%d %s %02d:00 already taken by lesson id=%d", teacherID, day, hour, occupying.ID)
		return domain.ErrSlotConflict
	}

	return nil
}

// CheckUpdate проверяет право изменить заметку или отметку о проведении
// Отметку о проведении ставит только преподаватель урока или администратор
func (v *Validator) CheckUpdate(actor domain.Actor, lesson *domain.Lesson, changesDone bool) error {
	if !actor.CanManageLesson(lesson) {
		return domain.ErrForbidden
	}
	if !lesson.CanBeUpdated() {
		return domain.ErrNotFound
	}
	if changesDone && !actor.IsAdmin && !actor.IsTeacher(lesson.TeacherID) {
		return domain.ErrForbidden
	}
	return nil
}

// CheckCancel проверяет право отменить урок
// Отменённый или проведённый урок для отмены не существует
func (v *Validator) CheckCancel(actor domain.Actor, lesson *domain.Lesson) error {
	if !actor.CanCancelLesson(lesson) {
		return domain.ErrForbidden
	}
	if !lesson.CanBeCancelled() {
		return domain.ErrNotFound
	}
	return nil
}
