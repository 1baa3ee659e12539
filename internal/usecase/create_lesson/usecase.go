package create_lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
	userClient "github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LessonService/pkg/slotlock"
)

const operation = "create"

// UseCase use case для создания урока
type UseCase struct {
	lessonRepo   LessonRepository
	validator    BookingValidator
	history      HistoryRecorder
	userClient   UserServiceClient
	txManager    TransactionManager
	locker       SlotLocker
	metrics      MetricsRecorder
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором определяется "сегодня"
func NewUseCase(
	lessonRepo LessonRepository,
	validator BookingValidator,
	history HistoryRecorder,
	userClient UserServiceClient,
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
		userClient:   userClient,
		txManager:    txManager,
		locker:       locker,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания урока
// Проверка слота, запись урока и запись CREATE в журнал выполняются в одной
// сериализуемой транзакции под блокировкой слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.RecordBookingDecision(operation, domain.Outcome(err, ErrInvalidInput, ErrDateInPast))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateLesson: student=%d, teacher=%d, date=%s, hour=%d",
		req.StudentID, req.TeacherID, req.Date.Format(domain.DateFormat), req.Hour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateLesson: validation failed: %v", err)
		return nil, err
	}
	date := domain.DateOnly(req.Date)

	// 2. Проверяем права: студент записывается сам, преподаватель к себе, администратор кого угодно
	if !req.Actor.CanBookFor(req.StudentID, req.TeacherID) {
		uc.logger.Warn("CreateLesson: actor may not book student=%d with teacher=%d", req.StudentID, req.TeacherID)
		return nil, domain.ErrForbidden
	}

	// 3. Дата не в прошлом (по часовому поясу площадки)
	now := uc.timeProvider.Now().In(uc.location)
	if isDateInPast(date, now) {
		uc.logger.Warn("CreateLesson: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. Проверяем существование студента и преподавателя
	if err := uc.ensureParticipants(ctx, req.StudentID, req.TeacherID); err != nil {
		return nil, err
	}

	// 5. Блокируем слот на время проверки и записи
	release, err := uc.locker.Acquire(ctx, slotlock.SlotKey(req.TeacherID, date, req.Hour))
	if err != nil {
		if errors.Is(err, slotlock.ErrLockTimeout) {
			uc.logger.Warn("CreateLesson: slot is busy: %v", err)
			return nil, domain.ErrSlotConflict
		}
		uc.logger.Error("CreateLesson: failed to lock slot: %v", err)
		return nil, fmt.Errorf("%w: failed to lock slot: %w", ErrInternal, err)
	}
	defer release()

	var result *Response

	// 6. Проверка, запись урока и журнала в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Доступность, оплата, занятость слота
		if err := uc.validator.CheckCreate(txCtx, req.StudentID, req.TeacherID, date, req.Hour); err != nil {
			return err
		}

		// 6.2. Сохраняем урок
		created, err := uc.lessonRepo.Create(txCtx, &domain.Lesson{
			StudentID: req.StudentID,
			TeacherID: req.TeacherID,
			Location:  req.Location,
			DueDate:   date,
			DueHour:   req.Hour,
			IsGrand:   req.IsGrand,
			Note:      req.Note,
			Status:    domain.LessonStatusActive,
		})
		if err != nil {
			if errors.Is(err, lessonRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateLesson: slot taken concurrently")
				return domain.ErrSlotConflict
			}
			uc.logger.Error("CreateLesson: failed to create lesson: %v", err)
			return fmt.Errorf("%w: failed to create lesson: %w", ErrInternal, err)
		}

		// 6.3. Запись CREATE в журнал
		entry, err := uc.history.Record(txCtx, domain.NewHistoryEntry(created, domain.ModifyTypeCreate, req.Actor))
		if err != nil {
			uc.logger.Error("CreateLesson: failed to record history: %v", err)
			return fmt.Errorf("%w: failed to record history: %w", ErrInternal, err)
		}

		result = &Response{Lesson: created, HistoryID: entry.ID}
		return nil
	})

	if err != nil {
		if lessonRepo.IsConflictError(err) {
			uc.logger.Warn("CreateLesson: serialization conflict: %v", err)
			return nil, domain.ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateLesson: successfully created lesson id=%d", result.Lesson.ID)
	return result, nil
}

// ensureParticipants проверяет через UserService, что студент и преподаватель существуют
func (uc *UseCase) ensureParticipants(ctx context.Context, studentID, teacherID int64) error {
	student, err := uc.userClient.GetStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, userClient.ErrNotFound) {
			uc.logger.Warn("CreateLesson: student id=%d not found", studentID)
			return domain.ErrNotFound
		}
		uc.logger.Error("CreateLesson: failed to get student id=%d: %v", studentID, err)
		return fmt.Errorf("%w: failed to get student: %w", ErrInternal, err)
	}
	if !student.IsActive {
		uc.logger.Warn("CreateLesson: student id=%d is not active", studentID)
		return domain.ErrForbidden
	}

	if _, err := uc.userClient.GetTeacher(ctx, teacherID); err != nil {
		if errors.Is(err, userClient.ErrNotFound) {
			uc.logger.Warn("CreateLesson: teacher id=%d not found", teacherID)
			return domain.ErrNotFound
		}
		uc.logger.Error("CreateLesson: failed to get teacher id=%d: %v", teacherID, err)
		return fmt.Errorf("%w: failed to get teacher: %w", ErrInternal, err)
	}

	return nil
}
