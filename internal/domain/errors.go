package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotUnavailable слот отклонён проверкой доступности (причина в SlotUnavailableError)
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrPaymentNotActive у студента нет оплаты, покрывающей дату урока
	ErrPaymentNotActive = errors.New("payment not active")

	// ErrSlotConflict слот уже занят другим уроком
	ErrSlotConflict = errors.New("slot conflict")

	// ErrNotFound урок, студент или преподаватель не найден
	ErrNotFound = errors.New("not found")

	// ErrForbidden у пользователя нет прав на операцию
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidWeeklyAvailability некорректное недельное расписание
	ErrInvalidWeeklyAvailability = errors.New("invalid weekly availability")

	// ErrInvalidOpenHours некорректные часы работы
	ErrInvalidOpenHours = errors.New("invalid open hours")
)

// SlotUnavailableError carries the reason the resolver rejected a slot
type SlotUnavailableError struct {
	Reason UnavailableReason
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSlotUnavailable, e.Reason)
}

// Is позволяет проверять errors.Is(err, ErrSlotUnavailable)
func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

// NewSlotUnavailableError создает ошибку недоступного слота
func NewSlotUnavailableError(reason UnavailableReason) error {
	return &SlotUnavailableError{Reason: reason}
}

// Исходы операций бронирования для метрик
const (
	OutcomeOK               = "ok"
	OutcomeSlotUnavailable  = "slot_unavailable"
	OutcomePaymentNotActive = "payment_not_active"
	OutcomeSlotConflict     = "slot_conflict"
	OutcomeNotFound         = "not_found"
	OutcomeForbidden        = "forbidden"
	OutcomeRejected         = "rejected"
	OutcomeError            = "error"
)

// Outcome сводит ошибку операции к метке исхода
// Неизвестные ошибки считаются внутренними, кроме отмеченных как rejected вызывающим
func Outcome(err error, rejected ...error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrSlotUnavailable):
		return OutcomeSlotUnavailable
	case errors.Is(err, ErrPaymentNotActive):
		return OutcomePaymentNotActive
	case errors.Is(err, ErrSlotConflict):
		return OutcomeSlotConflict
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrForbidden):
		return OutcomeForbidden
	}
	for _, r := range rejected {
		if errors.Is(err, r) {
			return OutcomeRejected
		}
	}
	return OutcomeError
}
