package domain

import "time"

// Payment is a student's payment with an optional coverage window
type Payment struct {
	ID                int64
	StudentID         int64
	PaymentAmount     float64
	StartDate         *time.Time
	EndDate           *time.Time
	IsStartDateNonSet bool // покрытие без нижней границы
	Refunded          bool
	RefundedAmount    float64
	CreatedAt         time.Time
}

// Covers returns true if the payment covers the calendar date
// Без EndDate платеж ничего не покрывает
func (p *Payment) Covers(date time.Time) bool {
	if p.Refunded || p.EndDate == nil {
		return false
	}

	day := DateOnly(date)
	if DateOnly(*p.EndDate).Before(day) {
		return false
	}

	if p.IsStartDateNonSet {
		return true
	}

	return p.StartDate != nil && !DateOnly(*p.StartDate).After(day)
}
