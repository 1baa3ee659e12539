package lessons

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
	"github.com/m04kA/SMC-LessonService/internal/service/lessons/models"
)

// Service чтение уроков с проверкой прав доступа
type Service struct {
	lessonRepo LessonRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса уроков
func NewService(lessonRepo LessonRepository, logger Logger) *Service {
	return &Service{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// GetByID получает урок по ID
// Видят студент-владелец, преподаватель урока и администратор
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Lesson, error) {
	s.logger.Info("GetByID: fetching lesson id=%d", id)

	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, lessonRepo.ErrLessonNotFound) {
			s.logger.Warn("GetByID: lesson id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("GetByID: repository error for lesson id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	if !actor.CanManageLesson(lesson) {
		s.logger.Warn("GetByID: access denied to lesson id=%d", id)
		return nil, domain.ErrForbidden
	}

	return lesson, nil
}

// ListByStudent уроки студента за период
// Отменённые уроки включаются только по запросу
func (s *Service) ListByStudent(ctx context.Context, req *models.ListLessonsRequest) ([]*domain.Lesson, error) {
	s.logger.Info("ListByStudent: student=%d includeCancelled=%t", req.OwnerID, req.IncludeCancelled)

	if req.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: student_id must be positive", ErrInvalidInput)
	}
	if !req.Actor.IsAdmin && !req.Actor.IsStudent(req.OwnerID) {
		s.logger.Warn("ListByStudent: access denied to student=%d", req.OwnerID)
		return nil, domain.ErrForbidden
	}

	return s.list(ctx, "ListByStudent", domain.LessonsFilter{
		StudentID:        &req.OwnerID,
		StartDate:        &req.Period.StartDate,
		EndDate:          &req.Period.EndDate,
		IncludeCancelled: req.IncludeCancelled,
	})
}

// ListByTeacher уроки преподавателя за период
func (s *Service) ListByTeacher(ctx context.Context, req *models.ListLessonsRequest) ([]*domain.Lesson, error) {
	s.logger.Info("ListByTeacher: teacher=%d includeCancelled=%t", req.OwnerID, req.IncludeCancelled)

	if req.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: teacher_id must be positive", ErrInvalidInput)
	}
	if !req.Actor.IsAdmin && !req.Actor.IsTeacher(req.OwnerID) {
		s.logger.Warn("ListByTeacher: access denied to teacher=%d", req.OwnerID)
		return nil, domain.ErrForbidden
	}

	return s.list(ctx, "ListByTeacher", domain.LessonsFilter{
		TeacherID:        &req.OwnerID,
		StartDate:        &req.Period.StartDate,
		EndDate:          &req.Period.EndDate,
		IncludeCancelled: req.IncludeCancelled,
	})
}

func (s *Service) list(ctx context.Context, op string, filter domain.LessonsFilter) ([]*domain.Lesson, error) {
	lessons, err := s.lessonRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}

	s.logger.Info("%s: fetched %d lessons", op, len(lessons))
	return lessons, nil
}
