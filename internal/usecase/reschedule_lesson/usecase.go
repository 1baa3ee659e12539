package reschedule_lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
	"github.com/m04kA/SMC-LessonService/pkg/slotlock"
)

const operation = "reschedule"

// UseCase use case для переноса урока
// Перенос - это отмена старого урока и создание нового в одной транзакции,
// журнал получает CANCEL и затем CREATE
type UseCase struct {
	lessonRepo   LessonRepository
	validator    BookingValidator
	history      HistoryRecorder
	txManager    TransactionManager
	locker       SlotLocker
	metrics      MetricsRecorder
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonRepo LessonRepository,
	validator BookingValidator,
	history HistoryRecorder,
	txManager TransactionManager,
	locker SlotLocker,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		lessonRepo:   lessonRepo,
		validator:    validator,
		history:      history,
		txManager:    txManager,
		locker:       locker,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса урока
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.RecordBookingDecision(operation, domain.Outcome(err, ErrInvalidInput, ErrDateInPast, ErrSameSlot))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleLesson: lesson=%d, new date=%s, hour=%d",
		req.LessonID, req.Date.Format(domain.DateFormat), req.Hour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleLesson: validation failed: %v", err)
		return nil, err
	}
	date := domain.DateOnly(req.Date)

	if isDateInPast(date, uc.timeProvider.Now().In(uc.location)) {
		uc.logger.Warn("RescheduleLesson: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 2. Читаем урок, чтобы узнать старый слот
	current, err := uc.getLesson(ctx, req.LessonID)
	if err != nil {
		return nil, err
	}
	if current.DueDate.Equal(date) && current.DueHour == req.Hour {
		return nil, ErrSameSlot
	}

	// 3. Блокируем старый и новый слоты в едином порядке
	release, err := slotlock.AcquireAll(ctx, uc.locker,
		slotlock.SlotKey(current.TeacherID, current.DueDate, current.DueHour),
		slotlock.SlotKey(current.TeacherID, date, req.Hour),
	)
	if err != nil {
		if errors.Is(err, slotlock.ErrLockTimeout) {
			uc.logger.Warn("RescheduleLesson: slot is busy: %v", err)
			return nil, domain.ErrSlotConflict
		}
		uc.logger.Error("RescheduleLesson: failed to lock slots: %v", err)
		return nil, fmt.Errorf("%w: failed to lock slots: %w", ErrInternal, err)
	}
	defer release()

	var result *Response

	// 4. Отмена, проверка нового слота и создание в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		old, err := uc.getLesson(txCtx, req.LessonID)
		if err != nil {
			return err
		}

		// 4.1. Перенести может тот, кто может отменить
		if err := uc.validator.CheckCancel(req.Actor, old); err != nil {
			uc.logger.Warn("RescheduleLesson: lesson id=%d (status=%s) rejected: %v", old.ID, old.Status, err)
			return err
		}

		// 4.2. Отменяем старый урок
		if err := uc.lessonRepo.Cancel(txCtx, old.ID); err != nil {
			if errors.Is(err, lessonRepo.ErrCannotCancel) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("%w: failed to cancel lesson: %w", ErrInternal, err)
		}
		old.Status = domain.LessonStatusCancelled

		if _, err := uc.history.Record(txCtx, domain.NewHistoryEntry(old, domain.ModifyTypeCancel, req.Actor)); err != nil {
			return fmt.Errorf("%w: failed to record cancel: %w", ErrInternal, err)
		}

		// 4.3. Новый слот проходит те же проверки, что и при создании
		if err := uc.validator.CheckCreate(txCtx, old.StudentID, old.TeacherID, date, req.Hour); err != nil {
			return err
		}

		created, err := uc.lessonRepo.Create(txCtx, &domain.Lesson{
			StudentID: old.StudentID,
			TeacherID: old.TeacherID,
			Location:  old.Location,
			DueDate:   date,
			DueHour:   req.Hour,
			IsGrand:   old.IsGrand,
			Note:      old.Note,
			Status:    domain.LessonStatusActive,
		})
		if err != nil {
			if errors.Is(err, lessonRepo.ErrSlotTaken) {
				return domain.ErrSlotConflict
			}
			return fmt.Errorf("%w: failed to create lesson: %w", ErrInternal, err)
		}

		if _, err := uc.history.Record(txCtx, domain.NewHistoryEntry(created, domain.ModifyTypeCreate, req.Actor)); err != nil {
			return fmt.Errorf("%w: failed to record create: %w", ErrInternal, err)
		}

		result = &Response{Cancelled: old, Created: created}
		return nil
	})

	if err != nil {
		if lessonRepo.IsConflictError(err) {
			return nil, domain.ErrSlotConflict
		}
		uc.logger.Warn("RescheduleLesson: lesson id=%d not moved: %v", req.LessonID, err)
		return nil, err
	}

	uc.logger.Info("RescheduleLesson: lesson id=%d moved to lesson id=%d", result.Cancelled.ID, result.Created.ID)
	return result, nil
}

func (uc *UseCase) getLesson(ctx context.Context, id int64) (*domain.Lesson, error) {
	lesson, err := uc.lessonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			uc.logger.Warn("RescheduleLesson: lesson id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		uc.logger.Error("RescheduleLesson: failed to get lesson id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get lesson: %w", ErrInternal, err)
	}
	return lesson, nil
}
