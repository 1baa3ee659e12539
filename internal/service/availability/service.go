package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/availability"
	openHoursRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/openhours"
	"github.com/m04kA/SMC-LessonService/pkg/period"
)

// Service отвечает на вопрос "можно ли занять слот (teacher, date, hour)"
// Состояние между запросами не кэшируется, каждый ответ строится по текущим данным
type Service struct {
	weeklyRepo    WeeklyAvailabilityRepository
	bannedRepo    BannedSlotRepository
	openHoursRepo OpenHoursRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	weeklyRepo WeeklyAvailabilityRepository,
	bannedRepo BannedSlotRepository,
	openHoursRepo OpenHoursRepository,
	logger Logger,
) *Service {
	return &Service{
		weeklyRepo:    weeklyRepo,
		bannedRepo:    bannedRepo,
		openHoursRepo: openHoursRepo,
		logger:        logger,
	}
}

// Resolve проверяет слот в фиксированном порядке: часы работы, расписание преподавателя, запреты
// Первая неудачная проверка определяет причину
func (s *Service) Resolve(ctx context.Context, teacherID int64, date time.Time, hour int) (domain.Availability, error) {
	src := &lazySources{svc: s, teacherID: teacherID}

	result, err := evaluate(ctx, src, date, hour)
	if err != nil {
		s.logger.Error("Resolve: teacher=%d date=%s hour=%d: %v", teacherID, date.Format(domain.DateFormat), hour, err)
		return domain.Availability{}, err
	}

	return result, nil
}

// ResolveGrid строит доступность для каждого часа каждого дня периода
// Данные загружаются один раз, проверка каждой ячейки та же, что и в Resolve
func (s *Service) ResolveGrid(ctx context.Context, teacherID int64, p period.Period) (*domain.AvailabilityGrid, error) {
	src, err := s.prefetch(ctx, teacherID, p)
	if err != nil {
		s.logger.Error("ResolveGrid: teacher=%d period=%s..%s: %v", teacherID,
			p.StartDate.Format(domain.DateFormat), p.EndDate.Format(domain.DateFormat), err)
		return nil, err
	}

	grid := &domain.AvailabilityGrid{
		TeacherID: teacherID,
		Period:    p,
		Slots:     make([]domain.SlotAvailability, 0, period.DaysInWeek*domain.HoursInDay),
	}

	for date := range p.Dates() {
		for hour := domain.MinHour; hour <= domain.MaxHour; hour++ {
			result, err := evaluate(ctx, src, date, hour)
			if err != nil {
				return nil, err
			}
			grid.Slots = append(grid.Slots, domain.SlotAvailability{Date: date, Hour: hour, Availability: result})
		}
	}

	return grid, nil
}

// IsWithinOperatingHours true, если час в пределах часов работы площадки
// Без настроенных часов работы любой час отклоняется
func (s *Service) IsWithinOperatingHours(ctx context.Context, hour int) (bool, error) {
	oh, err := s.loadOpenHours(ctx)
	if err != nil {
		return false, err
	}
	return oh != nil && oh.Contains(hour), nil
}

// IsTeacherAvailable true, если час объявлен в недельном расписании преподавателя
func (s *Service) IsTeacherAvailable(ctx context.Context, teacherID int64, weekday domain.Weekday, hour int) (bool, error) {
	weekly, err := s.loadWeekly(ctx, teacherID)
	if err != nil {
		return false, err
	}
	return weekly.Has(weekday, hour), nil
}

// IsBanned true, если на слот есть запрет
func (s *Service) IsBanned(ctx context.Context, teacherID int64, date time.Time, hour int) (bool, error) {
	banned, err := s.bannedRepo.Exists(ctx, teacherID, date, hour)
	if err != nil {
		return false, fmt.Errorf("%w: IsBanned - repository error: %w", ErrInternal, err)
	}
	return banned, nil
}

// loadOpenHours возвращает nil, если часы работы не настроены
func (s *Service) loadOpenHours(ctx context.Context) (*domain.OpenHours, error) {
	oh, err := s.openHoursRepo.Get(ctx)
	if errors.Is(err, openHoursRepo.ErrOpenHoursNotFound) {
		s.logger.Warn("loadOpenHours: open hours are not configured, rejecting all hours")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loadOpenHours - repository error: %w", ErrInternal, err)
	}
	return oh, nil
}

// loadWeekly возвращает пустое расписание, если оно не сохранено или не разбирается
func (s *Service) loadWeekly(ctx context.Context, teacherID int64) (domain.WeeklyAvailability, error) {
	raw, err := s.weeklyRepo.GetRaw(ctx, teacherID)
	if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
		return domain.WeeklyAvailability{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loadWeekly - repository error: %w", ErrInternal, err)
	}

	weekly, err := domain.DecodeWeeklyAvailability(raw)
	if err != nil {
		s.logger.Warn("loadWeekly: teacher=%d has unreadable weekly availability, treating as empty: %v", teacherID, err)
		return domain.WeeklyAvailability{}, nil
	}

	return weekly, nil
}

func (s *Service) prefetch(ctx context.Context, teacherID int64, p period.Period) (*prefetchedSources, error) {
	oh, err := s.loadOpenHours(ctx)
	if err != nil {
		return nil, err
	}

	weekly, err := s.loadWeekly(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	slots, err := s.bannedRepo.ListByTeacher(ctx, teacherID, p.StartDate, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: prefetch - banned slots: %w", ErrInternal, err)
	}

	banned := make(map[bannedKey]struct{}, len(slots))
	for _, b := range slots {
		banned[keyOf(b.Date, b.Hour)] = struct{}{}
	}

	return &prefetchedSources{oh: oh, weeklyHours: weekly, banned: banned}, nil
}
