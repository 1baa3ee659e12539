package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/availability"
	bannedSlotRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/bannedslot"
	openHoursRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/openhours"
	userClient "github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LessonService/internal/service/schedule/models"
)

// Service администрирование расписания: недельная доступность, запреты и часы работы
// Запись доступна только администраторам, чтение всем
type Service struct {
	weeklyRepo    WeeklyAvailabilityRepository
	bannedRepo    BannedSlotRepository
	openHoursRepo OpenHoursRepository
	userClient    UserServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	weeklyRepo WeeklyAvailabilityRepository,
	bannedRepo BannedSlotRepository,
	openHoursRepo OpenHoursRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		weeklyRepo:    weeklyRepo,
		bannedRepo:    bannedRepo,
		openHoursRepo: openHoursRepo,
		userClient:    userClient,
		logger:        logger,
	}
}

// GetWeeklyAvailability возвращает недельное расписание преподавателя
// Несохранённое расписание возвращается пустым
func (s *Service) GetWeeklyAvailability(ctx context.Context, teacherID int64) (*domain.TeacherWeeklyAvailability, error) {
	if teacherID <= 0 {
		return nil, fmt.Errorf("%w: teacher_id must be positive", ErrInvalidInput)
	}

	raw, err := s.weeklyRepo.GetRaw(ctx, teacherID)
	if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
		return &domain.TeacherWeeklyAvailability{TeacherID: teacherID, Hours: domain.WeeklyAvailability{}}, nil
	}
	if err != nil {
		s.logger.Error("GetWeeklyAvailability: teacher=%d: %v", teacherID, err)
		return nil, fmt.Errorf("%w: GetWeeklyAvailability - repository error: %w", ErrInternal, err)
	}

	hours, err := domain.DecodeWeeklyAvailability(raw)
	if err != nil {
		s.logger.Warn("GetWeeklyAvailability: teacher=%d has unreadable availability: %v", teacherID, err)
		hours = domain.WeeklyAvailability{}
	}

	return &domain.TeacherWeeklyAvailability{TeacherID: teacherID, Hours: hours.Normalized()}, nil
}

// SetWeeklyAvailability полностью заменяет недельное расписание преподавателя
// Некорректная структура отклоняется при записи, а не при чтении
func (s *Service) SetWeeklyAvailability(ctx context.Context, req *models.SetWeeklyAvailabilityRequest) (*domain.TeacherWeeklyAvailability, error) {
	s.logger.Info("SetWeeklyAvailability: teacher=%d", req.TeacherID)

	// 1. Проверяем права доступа
	if !req.Actor.IsAdmin {
		s.logger.Warn("SetWeeklyAvailability: actor is not an admin")
		return nil, domain.ErrForbidden
	}

	// 2. Валидируем расписание
	if req.TeacherID <= 0 {
		return nil, fmt.Errorf("%w: teacher_id must be positive", ErrInvalidInput)
	}
	if err := req.Hours.Validate(); err != nil {
		s.logger.Warn("SetWeeklyAvailability: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Проверяем существование преподавателя
	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	// 4. Сохраняем
	raw, err := domain.EncodeWeeklyAvailability(req.Hours)
	if err != nil {
		return nil, fmt.Errorf("%w: SetWeeklyAvailability - encode: %w", ErrInternal, err)
	}

	if err := s.weeklyRepo.Upsert(ctx, req.TeacherID, raw); err != nil {
		s.logger.Error("SetWeeklyAvailability: teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: SetWeeklyAvailability - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("SetWeeklyAvailability: teacher=%d saved", req.TeacherID)
	return &domain.TeacherWeeklyAvailability{TeacherID: req.TeacherID, Hours: req.Hours.Normalized()}, nil
}

// BanSlot запрещает конкретный слот преподавателя
// Уже существующие уроки на этом слоте не затрагиваются
func (s *Service) BanSlot(ctx context.Context, req *models.BanSlotRequest) (*domain.BannedSlot, error) {
	s.logger.Info("BanSlot: teacher=%d date=%s hour=%d", req.TeacherID, req.Date.Format(domain.DateFormat), req.Hour)

	if err := s.checkBanRequest(req); err != nil {
		return nil, err
	}

	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	created, err := s.bannedRepo.Create(ctx, &domain.BannedSlot{
		TeacherID: req.TeacherID,
		Date:      domain.DateOnly(req.Date),
		Hour:      req.Hour,
	})
	if err != nil {
		if errors.Is(err, bannedSlotRepo.ErrAlreadyBanned) {
			s.logger.Warn("BanSlot: slot already banned")
			return nil, ErrAlreadyBanned
		}
		s.logger.Error("BanSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: BanSlot - repository error: %w", ErrInternal, err)
	}

	return created, nil
}

// UnbanSlot снимает запрет со слота
func (s *Service) UnbanSlot(ctx context.Context, req *models.BanSlotRequest) error {
	s.logger.Info("UnbanSlot: teacher=%d date=%s hour=%d", req.TeacherID, req.Date.Format(domain.DateFormat), req.Hour)

	if err := s.checkBanRequest(req); err != nil {
		return err
	}

	err := s.bannedRepo.Delete(ctx, req.TeacherID, req.Date, req.Hour)
	if err != nil {
		if errors.Is(err, bannedSlotRepo.ErrBannedSlotNotFound) {
			return domain.ErrNotFound
		}
		s.logger.Error("UnbanSlot: repository error: %v", err)
		return fmt.Errorf("%w: UnbanSlot - repository error: %w", ErrInternal, err)
	}

	return nil
}

// ListBannedSlots возвращает запреты преподавателя за диапазон дат включительно
func (s *Service) ListBannedSlots(ctx context.Context, req *models.ListBannedSlotsRequest) ([]*domain.BannedSlot, error) {
	if req.TeacherID <= 0 {
		return nil, fmt.Errorf("%w: teacher_id must be positive", ErrInvalidInput)
	}
	if domain.DateOnly(req.From).After(domain.DateOnly(req.To)) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	slots, err := s.bannedRepo.ListByTeacher(ctx, req.TeacherID, req.From, req.To)
	if err != nil {
		s.logger.Error("ListBannedSlots: teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: ListBannedSlots - repository error: %w", ErrInternal, err)
	}

	return slots, nil
}

// GetOpenHours возвращает часы работы площадки
func (s *Service) GetOpenHours(ctx context.Context) (*domain.OpenHours, error) {
	oh, err := s.openHoursRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, openHoursRepo.ErrOpenHoursNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("GetOpenHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetOpenHours - repository error: %w", ErrInternal, err)
	}
	return oh, nil
}

// SetOpenHours изменяет часы работы площадки
func (s *Service) SetOpenHours(ctx context.Context, req *models.SetOpenHoursRequest) (*domain.OpenHours, error) {
	s.logger.Info("SetOpenHours: %d..%d", req.StartHour, req.EndHour)

	if !req.Actor.IsAdmin {
		s.logger.Warn("SetOpenHours: actor is not an admin")
		return nil, domain.ErrForbidden
	}

	oh := &domain.OpenHours{StartHour: req.StartHour, EndHour: req.EndHour}
	if err := oh.Validate(); err != nil {
		s.logger.Warn("SetOpenHours: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.openHoursRepo.Upsert(ctx, oh)
	if err != nil {
		s.logger.Error("SetOpenHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: SetOpenHours - repository error: %w", ErrInternal, err)
	}

	return saved, nil
}

func (s *Service) checkBanRequest(req *models.BanSlotRequest) error {
	if !req.Actor.IsAdmin {
		s.logger.Warn("checkBanRequest: actor is not an admin")
		return domain.ErrForbidden
	}
	if req.TeacherID <= 0 {
		return fmt.Errorf("%w: teacher_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !domain.IsValidHour(req.Hour) {
		return fmt.Errorf("%w: hour must be within %d..%d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}
	return nil
}

func (s *Service) ensureTeacher(ctx context.Context, teacherID int64) error {
	_, err := s.userClient.GetTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, userClient.ErrNotFound) {
			s.logger.Warn("ensureTeacher: teacher id=%d not found", teacherID)
			return domain.ErrNotFound
		}
		s.logger.Error("ensureTeacher: failed to get teacher id=%d: %v", teacherID, err)
		return fmt.Errorf("%w: failed to get teacher: %w", ErrInternal, err)
	}
	return nil
}
