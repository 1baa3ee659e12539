package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LessonService/pkg/psqlbuilder"
)

const table = "lesson_modify_history"

// Repository журнал изменений уроков, только добавление записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал
// Вызывается в той же транзакции, что и изменение урока
func (r *Repository) Create(ctx context.Context, entry *domain.LessonModifyHistory) (*domain.LessonModifyHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"student_id",
			"teacher_id",
			"lesson_id",
			"snapshot_due_date",
			"snapshot_due_hour",
			"modify_type",
			"created_by_type",
			"created_by_id",
		).
		Values(
			entry.StudentID,
			entry.TeacherID,
			entry.LessonID,
			entry.SnapshotDueDate,
			entry.SnapshotDueHour,
			entry.ModifyType,
			entry.CreatedByType,
			entry.CreatedByID,
		).
		Suffix("RETURNING id, modified_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.ModifiedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return entry, nil
}

// List возвращает записи по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.HistoryFilter, limit, offset int) ([]*domain.LessonModifyHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(
		"id",
		"student_id",
		"teacher_id",
		"lesson_id",
		"snapshot_due_date",
		"snapshot_due_hour",
		"modify_type",
		"created_by_type",
		"created_by_id",
		"modified_at",
	).From(table), filter).
		OrderBy("modified_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.LessonModifyHistory, 0)
	for rows.Next() {
		var entry domain.LessonModifyHistory
		var studentID sql.NullInt64

		if err := rows.Scan(
			&entry.ID,
			&studentID,
			&entry.TeacherID,
			&entry.LessonID,
			&entry.SnapshotDueDate,
			&entry.SnapshotDueHour,
			&entry.ModifyType,
			&entry.CreatedByType,
			&entry.CreatedByID,
			&entry.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}

		if studentID.Valid {
			entry.StudentID = &studentID.Int64
		}
		entry.SnapshotDueDate = domain.DateOnly(entry.SnapshotDueDate)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}

// Count считает записи по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.HistoryFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %w", ErrScanRow, err)
	}

	return total, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.HistoryFilter) squirrel.SelectBuilder {
	if filter.StudentID != nil {
		b = b.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}
	if filter.TeacherID != nil {
		b = b.Where(squirrel.Eq{"teacher_id": *filter.TeacherID})
	}
	if filter.Type != nil {
		b = b.Where(squirrel.Eq{"modify_type": *filter.Type})
	}
	if filter.CreatedByType != nil {
		b = b.Where(squirrel.Eq{"created_by_type": *filter.CreatedByType})
	}
	return b
}
