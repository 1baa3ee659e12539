package coverage

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-LessonService/internal/domain"
)

// Service проверяет, покрыта ли дата оплатой студента
type Service struct {
	paymentRepo  PaymentRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса покрытия оплатой
// location задаёт часовой пояс, в котором определяется "сегодня"
func NewService(paymentRepo PaymentRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}

	return &Service{
		paymentRepo:  paymentRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// IsCovered true, если хотя бы одна невозвращённая оплата покрывает календарную дату
func (s *Service) IsCovered(ctx context.Context, studentID int64, date time.Time) (bool, error) {
	if studentID <= 0 {
		return false, fmt.Errorf("%w: student_id must be positive", ErrInvalidInput)
	}

	payments, err := s.paymentRepo.ListNotRefundedByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("IsCovered: failed to list payments for student=%d: %v", studentID, err)
		return false, fmt.Errorf("%w: IsCovered - repository error: %w", ErrInternal, err)
	}

	for _, p := range payments {
		if p.Covers(date) {
			return true, nil
		}
	}

	s.logger.Info("IsCovered: student=%d has no payment covering %s (checked %d)",
		studentID, date.Format(domain.DateFormat), len(payments))
	return false, nil
}

// IsCoveredNow проверяет покрытие на сегодняшнюю дату в настроенном часовом поясе
func (s *Service) IsCoveredNow(ctx context.Context, studentID int64) (bool, error) {
	return s.IsCovered(ctx, studentID, s.Today())
}

// Today текущая календарная дата в настроенном часовом поясе
func (s *Service) Today() time.Time {
	return domain.DateOnly(s.timeProvider.Now().In(s.location))
}
