package get_availability_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	userClient "github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LessonService/pkg/period"
)

// UseCase use case для получения недельной сетки доступности преподавателя
type UseCase struct {
	resolver     AvailabilityResolver
	userClient   UserServiceClient
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver AvailabilityResolver, userClient UserServiceClient, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		resolver:     resolver,
		userClient:   userClient,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailabilityGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Неделя: от переданной даты или от сегодняшней в часовом поясе площадки
	date := req.Date
	if date.IsZero() {
		date = uc.timeProvider.Now().In(uc.location)
	}
	p := period.Shift(period.Current(domain.DateOnly(date)), req.Offset)

	uc.logger.Info("GetAvailabilityGrid: teacher=%d, week=%s..%s",
		req.TeacherID, p.StartDate.Format(domain.DateFormat), p.EndDate.Format(domain.DateFormat))

	// 3. Преподаватель должен существовать
	if _, err := uc.userClient.GetTeacher(ctx, req.TeacherID); err != nil {
		if errors.Is(err, userClient.ErrNotFound) {
			uc.logger.Warn("GetAvailabilityGrid: teacher id=%d not found", req.TeacherID)
			return nil, domain.ErrNotFound
		}
		uc.logger.Error("GetAvailabilityGrid: failed to get teacher id=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get teacher: %w", ErrInternal, err)
	}

	// 4. Сетка
	grid, err := uc.resolver.ResolveGrid(ctx, req.TeacherID, p)
	if err != nil {
		uc.logger.Error("GetAvailabilityGrid: failed to resolve grid: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve grid: %w", ErrInternal, err)
	}

	return buildResponse(grid), nil
}

// buildResponse группирует ячейки сетки по дням, порядок ячеек сохраняется
func buildResponse(grid *domain.AvailabilityGrid) *Response {
	resp := &Response{
		TeacherID: grid.TeacherID,
		StartDate: grid.Period.StartDate,
		EndDate:   grid.Period.EndDate,
		Days:      make([]Day, 0, period.DaysInWeek),
	}

	for _, cell := range grid.Slots {
		if n := len(resp.Days); n == 0 || !resp.Days[n-1].Date.Equal(cell.Date) {
			resp.Days = append(resp.Days, Day{Date: cell.Date, Slots: make([]Slot, 0, domain.HoursInDay)})
		}
		day := &resp.Days[len(resp.Days)-1]
		day.Slots = append(day.Slots, Slot{
			Hour:      cell.Hour,
			Available: cell.Available,
			Reason:    string(cell.Reason),
		})
	}

	return resp
}
