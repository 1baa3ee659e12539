package bannedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LessonService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий запретов на конкретные слоты преподавателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запретов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет, запрещён ли слот (teacher, date, hour)
func (r *Repository) Exists(ctx context.Context, teacherID int64, date time.Time, hour int) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("banned_slots").
		Where(squirrel.Eq{
			"teacher_id": teacherID,
			"date":       domain.DateOnly(date),
			"hour":       hour,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan: %w", ErrScanRow, err)
	}

	return true, nil
}

// ListByTeacher возвращает запреты преподавателя в диапазоне дат включительно
func (r *Repository) ListByTeacher(ctx context.Context, teacherID int64, from, to time.Time) ([]*domain.BannedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "teacher_id", "date", "hour", "created_at").
		From("banned_slots").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		Where(squirrel.GtOrEq{"date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"date": domain.DateOnly(to)}).
		OrderBy("date ASC", "hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTeacher - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTeacher - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BannedSlot, 0)
	for rows.Next() {
		var slot domain.BannedSlot
		if err := rows.Scan(&slot.ID, &slot.TeacherID, &slot.Date, &slot.Hour, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByTeacher - scan row: %w", ErrScanRow, err)
		}
		slot.Date = domain.DateOnly(slot.Date)
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTeacher - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// Create запрещает слот
func (r *Repository) Create(ctx context.Context, slot *domain.BannedSlot) (*domain.BannedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("banned_slots").
		Columns("teacher_id", "date", "hour").
		Values(slot.TeacherID, domain.DateOnly(slot.Date), slot.Hour).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrAlreadyBanned
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return slot, nil
}

// Delete снимает запрет со слота
func (r *Repository) Delete(ctx context.Context, teacherID int64, date time.Time, hour int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("banned_slots").
		Where(squirrel.Eq{
			"teacher_id": teacherID,
			"date":       domain.DateOnly(date),
			"hour":       hour,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBannedSlotNotFound
	}

	return nil
}
