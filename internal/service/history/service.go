package history

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// Service журнал изменений уроков: только добавление и чтение
type Service struct {
	repo   HistoryRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса истории
func NewService(repo HistoryRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record добавляет запись в журнал
// Вызывается внутри транзакции изменения урока, ошибка откатывает всю операцию
func (s *Service) Record(ctx context.Context, entry *domain.LessonModifyHistory) (*domain.LessonModifyHistory, error) {
	if err := validateEntry(entry); err != nil {
		s.logger.Warn("Record: invalid entry: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Record: lesson=%d type=%s: %v", entry.LessonID, entry.ModifyType, err)
		return nil, fmt.Errorf("%w: Record - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Record: lesson=%d type=%s by %s=%d", created.LessonID, created.ModifyType,
		created.CreatedByType, created.CreatedByID)
	return created, nil
}

// Query возвращает страницу журнала, новые записи первыми
// Администратор видит всё, преподаватель только свои уроки, студент только свои
func (s *Service) Query(ctx context.Context, actor domain.Actor, filter domain.HistoryFilter, page, limit int) (*domain.HistoryPage, error) {
	// 1. Валидация фильтра и пагинации
	if err := validateFilter(filter); err != nil {
		s.logger.Warn("Query: invalid filter: %v", err)
		return nil, err
	}

	page, limit, err := normalizePage(page, limit)
	if err != nil {
		s.logger.Warn("Query: invalid pagination: %v", err)
		return nil, err
	}

	// 2. Ограничиваем выборку правами пользователя
	scoped, err := scopeFilter(actor, filter)
	if err != nil {
		s.logger.Warn("Query: actor is not allowed to read filter %+v", filter)
		return nil, err
	}

	// 3. Читаем страницу и общее количество
	offset := (page - 1) * limit

	items, err := s.repo.List(ctx, scoped, limit, offset)
	if err != nil {
		s.logger.Error("Query: list failed: %v", err)
		return nil, fmt.Errorf("%w: Query - list: %w", ErrInternal, err)
	}

	total, err := s.repo.Count(ctx, scoped)
	if err != nil {
		s.logger.Error("Query: count failed: %v", err)
		return nil, fmt.Errorf("%w: Query - count: %w", ErrInternal, err)
	}

	return &domain.HistoryPage{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// scopeFilter подставляет собственный ID не-администратора в фильтр
func scopeFilter(actor domain.Actor, filter domain.HistoryFilter) (domain.HistoryFilter, error) {
	if actor.IsAdmin {
		return filter, nil
	}

	switch {
	case actor.TeacherID != nil:
		if filter.TeacherID != nil && *filter.TeacherID != *actor.TeacherID {
			return filter, domain.ErrForbidden
		}
		filter.TeacherID = actor.TeacherID
	case actor.StudentID != nil:
		if filter.StudentID != nil && *filter.StudentID != *actor.StudentID {
			return filter, domain.ErrForbidden
		}
		filter.StudentID = actor.StudentID
	default:
		return filter, domain.ErrForbidden
	}

	return filter, nil
}
