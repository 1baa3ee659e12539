package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LessonService/pkg/psqlbuilder"
)

// Repository репозиторий оплат (только чтение, оплаты ведёт платёжный контур)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оплат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListNotRefundedByStudent возвращает невозвращённые оплаты студента
func (r *Repository) ListNotRefundedByStudent(ctx context.Context, studentID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"student_id",
		"payment_amount",
		"start_date",
		"end_date",
		"is_start_date_non_set",
		"refunded",
		"refunded_amount",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"student_id": studentID, "refunded": false}).
		OrderBy("end_date DESC NULLS LAST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListNotRefundedByStudent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNotRefundedByStudent - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var startDate, endDate sql.NullTime

		if err := rows.Scan(
			&p.ID,
			&p.StudentID,
			&p.PaymentAmount,
			&startDate,
			&endDate,
			&p.IsStartDateNonSet,
			&p.Refunded,
			&p.RefundedAmount,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListNotRefundedByStudent - scan row: %w", ErrScanRow, err)
		}

		if startDate.Valid {
			d := domain.DateOnly(startDate.Time)
			p.StartDate = &d
		}
		if endDate.Valid {
			d := domain.DateOnly(endDate.Time)
			p.EndDate = &d
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNotRefundedByStudent - rows error: %w", ErrScanRow, err)
	}

	return payments, nil
}
