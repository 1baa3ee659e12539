package update_lesson

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
)

// UseCase use case для изменения заметки и отметки о проведении урока
// Запись в журнал не создается: журнал фиксирует только события расписания
type UseCase struct {
	lessonRepo LessonRepository
	validator  BookingValidator
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	validator BookingValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo: lessonRepo,
		validator:  validator,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case изменения урока
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateLesson: lesson=%d, note=%t, isDone=%v", req.LessonID, req.Note != nil, req.IsDone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateLesson: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Lesson

	// 2. Читаем урок с блокировкой строки и обновляем
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		lesson, err := uc.lessonRepo.GetByID(txCtx, req.LessonID)
		if err != nil {
			if errors.Is(err, lessonRepo.ErrLessonNotFound) {
				uc.logger.Warn("UpdateLesson: lesson id=%d not found", req.LessonID)
				return domain.ErrNotFound
			}
			uc.logger.Error("UpdateLesson: failed to get lesson id=%d: %v", req.LessonID, err)
			return fmt.Errorf("%w: failed to get lesson: %w", ErrInternal, err)
		}

		// 2.1. Права и состояние урока
		changesDone := req.IsDone != nil && *req.IsDone != lesson.IsDone
		if err := uc.validator.CheckUpdate(req.Actor, lesson, changesDone); err != nil {
			uc.logger.Warn("UpdateLesson: lesson id=%d (status=%s) rejected: %v", lesson.ID, lesson.Status, err)
			return err
		}

		// 2.2. Применяем изменения
		if req.Note != nil {
			lesson.Note = req.Note
			if *req.Note == "" {
				lesson.Note = nil
			}
		}
		if req.IsDone != nil {
			lesson.ApplyDone(*req.IsDone)
		}

		if err := uc.lessonRepo.UpdateDetails(txCtx, lesson); err != nil {
			if errors.Is(err, lessonRepo.ErrLessonNotFound) {
				return domain.ErrNotFound
			}
			uc.logger.Error("UpdateLesson: failed to update lesson id=%d: %v", lesson.ID, err)
			return fmt.Errorf("%w: failed to update lesson: %w", ErrInternal, err)
		}

		result = lesson
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateLesson: successfully updated lesson id=%d, status=%s", result.ID, result.Status)
	return &Response{Lesson: result}, nil
}
