package openhours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LessonService/pkg/psqlbuilder"
)

// singletonID единственная строка таблицы open_hours
const singletonID = 1

// Repository репозиторий часов работы площадки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает часы работы, ErrOpenHoursNotFound если они не настроены
func (r *Repository) Get(ctx context.Context) (*domain.OpenHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_hour", "end_hour", "updated_at").
		From("open_hours").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var oh domain.OpenHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(&oh.StartHour, &oh.EndHour, &oh.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOpenHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan open hours: %w", ErrExecQuery, err)
	}

	return &oh, nil
}

// Upsert сохраняет часы работы
func (r *Repository) Upsert(ctx context.Context, oh *domain.OpenHours) (*domain.OpenHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("open_hours").
		Columns("id", "start_hour", "end_hour").
		Values(singletonID, oh.StartHour, oh.EndHour).
		Suffix("ON CONFLICT (id) DO UPDATE SET start_hour = EXCLUDED.start_hour, end_hour = EXCLUDED.end_hour, updated_at = NOW() RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&oh.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return oh, nil
}
