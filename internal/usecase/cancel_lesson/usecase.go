package cancel_lesson

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
	"github.com/m04kA/SMC-LessonService/pkg/slotlock"
)

const operation = "cancel"

// UseCase use case для отмены урока
// Урок не удаляется: статус меняется на cancelled, в журнал пишется CANCEL со снимком слота
type UseCase struct {
	lessonRepo LessonRepository
	validator  BookingValidator
	history    HistoryRecorder
	txManager  TransactionManager
	locker     SlotLocker
	metrics    MetricsRecorder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	validator BookingValidator,
	history HistoryRecorder,
	txManager TransactionManager,
	locker SlotLocker,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessonRepo: lessonRepo,
		validator:  validator,
		history:    history,
		txManager:  txManager,
		locker:     locker,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет use case отмены урока
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.RecordBookingDecision(operation, domain.Outcome(err, ErrInvalidInput))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelLesson: lesson=%d", req.LessonID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelLesson: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем урок, чтобы узнать его слот
	lesson, err := uc.getLesson(ctx, req.LessonID)
	if err != nil {
		return nil, err
	}

	// 3. Блокируем слот урока
	release, err := uc.locker.Acquire(ctx, slotlock.SlotKey(lesson.TeacherID, lesson.DueDate, lesson.DueHour))
	if err != nil {
		if errors.Is(err, slotlock.ErrLockTimeout) {
			uc.logger.Warn("CancelLesson: slot is busy: %v", err)
			return nil, domain.ErrSlotConflict
		}
		uc.logger.Error("CancelLesson: failed to lock slot: %v", err)
		return nil, fmt.Errorf("%w: failed to lock slot: %w", ErrInternal, err)
	}
	defer release()

	var result *Response

	// 4. Отмена и запись CANCEL в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем урок с блокировкой строки
		locked, err := uc.getLesson(txCtx, req.LessonID)
		if err != nil {
			return err
		}

		// 4.2. Права и состояние: повторная отмена дает NotFound, а не вторую запись CANCEL
		if err := uc.validator.CheckCancel(req.Actor, locked); err != nil {
			uc.logger.Warn("CancelLesson: lesson id=%d (status=%s) rejected: %v", locked.ID, locked.Status, err)
			return err
		}

		// 4.3. Меняем статус
		if err := uc.lessonRepo.Cancel(txCtx, locked.ID); err != nil {
			if errors.Is(err, lessonRepo.ErrCannotCancel) {
				uc.logger.Warn("CancelLesson: lesson id=%d already cancelled", locked.ID)
				return domain.ErrNotFound
			}
			uc.logger.Error("CancelLesson: failed to cancel lesson id=%d: %v", locked.ID, err)
			return fmt.Errorf("%w: failed to cancel lesson: %w", ErrInternal, err)
		}
		locked.Status = domain.LessonStatusCancelled

		// 4.4. Запись CANCEL со снимком даты и часа
		entry, err := uc.history.Record(txCtx, domain.NewHistoryEntry(locked, domain.ModifyTypeCancel, req.Actor))
		if err != nil {
			uc.logger.Error("CancelLesson: failed to record history: %v", err)
			return fmt.Errorf("%w: failed to record history: %w", ErrInternal, err)
		}

		result = &Response{Lesson: locked, HistoryID: entry.ID}
		return nil
	})

	if err != nil {
		if lessonRepo.IsConflictError(err) {
			uc.logger.Warn("CancelLesson: serialization conflict: %v", err)
			return nil, domain.ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CancelLesson: successfully cancelled lesson id=%d", result.Lesson.ID)
	return result, nil
}

func (uc *UseCase) getLesson(ctx context.Context, id int64) (*domain.Lesson, error) {
	lesson, err := uc.lessonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			uc.logger.Warn("CancelLesson: lesson id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		uc.logger.Error("CancelLesson: failed to get lesson id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get lesson: %w", ErrInternal, err)
	}
	return lesson, nil
}
