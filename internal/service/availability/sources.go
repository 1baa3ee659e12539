package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// slotSources данные для проверки слотов одного преподавателя
type slotSources interface {
	openHours(ctx context.Context) (*domain.OpenHours, error)
	weekly(ctx context.Context) (domain.WeeklyAvailability, error)
	isBanned(ctx context.Context, date time.Time, hour int) (bool, error)
}

// evaluate единая проверка слота для Resolve и ResolveGrid
func evaluate(ctx context.Context, src slotSources, date time.Time, hour int) (domain.Availability, error) {
	oh, err := src.openHours(ctx)
	if err != nil {
		return domain.Availability{}, err
	}
	if oh == nil || !oh.Contains(hour) {
		return domain.Unavailable(domain.ReasonOutsideOperatingHours), nil
	}

	weekly, err := src.weekly(ctx)
	if err != nil {
		return domain.Availability{}, err
	}
	if !weekly.Has(domain.WeekdayOf(date), hour) {
		return domain.Unavailable(domain.ReasonNotWorkingHours), nil
	}

	banned, err := src.isBanned(ctx, date, hour)
	if err != nil {
		return domain.Availability{}, err
	}
	if banned {
		return domain.Unavailable(domain.ReasonBannedSlot), nil
	}

	return domain.Available(), nil
}

// lazySources загружает данные по мере надобности, не более одного раза за запрос
type lazySources struct {
	svc       *Service
	teacherID int64

	ohLoaded     bool
	oh           *domain.OpenHours
	weeklyLoaded bool
	weeklyHours  domain.WeeklyAvailability
}

func (l *lazySources) openHours(ctx context.Context) (*domain.OpenHours, error) {
	if !l.ohLoaded {
		oh, err := l.svc.loadOpenHours(ctx)
		if err != nil {
			return nil, err
		}
		l.oh, l.ohLoaded = oh, true
	}
	return l.oh, nil
}

func (l *lazySources) weekly(ctx context.Context) (domain.WeeklyAvailability, error) {
	if !l.weeklyLoaded {
		weekly, err := l.svc.loadWeekly(ctx, l.teacherID)
		if err != nil {
			return nil, err
		}
		l.weeklyHours, l.weeklyLoaded = weekly, true
	}
	return l.weeklyHours, nil
}

func (l *lazySources) isBanned(ctx context.Context, date time.Time, hour int) (bool, error) {
	return l.svc.IsBanned(ctx, l.teacherID, date, hour)
}

type bannedKey struct {
	date time.Time
	hour int
}

func keyOf(date time.Time, hour int) bannedKey {
	return bannedKey{date: domain.DateOnly(date), hour: hour}
}

// prefetchedSources данные, загруженные заранее на весь период
type prefetchedSources struct {
	oh          *domain.OpenHours
	weeklyHours domain.WeeklyAvailability
	banned      map[bannedKey]struct{}
}

func (p *prefetchedSources) openHours(context.Context) (*domain.OpenHours, error) {
	return p.oh, nil
}

func (p *prefetchedSources) weekly(context.Context) (domain.WeeklyAvailability, error) {
	return p.weeklyHours, nil
}

func (p *prefetchedSources) isBanned(_ context.Context, date time.Time, hour int) (bool, error) {
	_, ok := p.banned[keyOf(date, hour)]
	return ok, nil
}
