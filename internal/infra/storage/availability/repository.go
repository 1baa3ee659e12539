package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LessonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LessonService/pkg/psqlbuilder"
)

// Repository хранит недельное расписание преподавателей
// Расписание лежит в колонке hours как закодированный JSON, разбор делает сервис
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRaw возвращает сохранённое расписание преподавателя без разбора
func (r *Repository) GetRaw(ctx context.Context, teacherID int64) ([]byte, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("hours").
		From("weekly_availability").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRaw - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRaw - scan hours: %w", ErrScanRow, err)
	}

	return raw, nil
}

// Upsert сохраняет расписание преподавателя, заменяя предыдущее
func (r *Repository) Upsert(ctx context.Context, teacherID int64, hours []byte) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_availability").
		Columns("teacher_id", "hours").
		Values(teacherID, hours).
		Suffix("ON CONFLICT (teacher_id) DO UPDATE SET hours = EXCLUDED.hours, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
