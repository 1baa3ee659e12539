package lesson

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

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

var lessonColumns = []string{
	"id",
	"student_id",
	"teacher_id",
	"location",
	"due_date",
	"due_hour",
	"is_done",
	"is_grand",
	"note",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с уроками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уроков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый урок
// Уникальный индекс (teacher_id, due_date, due_hour) по незавершённым урокам
// гарантирует, что второй урок в тот же слот не будет записан
func (r *Repository) Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lessons").
		Columns(
			"student_id",
			"teacher_id",
			"location",
			"due_date",
			"due_hour",
			"is_done",
			"is_grand",
			"note",
			"status",
		).
		Values(
			lesson.StudentID,
			lesson.TeacherID,
			lesson.Location,
			lesson.DueDate,
			lesson.DueHour,
			lesson.IsDone,
			lesson.IsGrand,
			noteValue(lesson.Note),
			lesson.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&lesson.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSlotConflict(err) {
			return nil, fmt.Errorf("%w: Create - teacher=%d date=%s hour=%d: %w",
				ErrSlotTaken, lesson.TeacherID, lesson.DueDate.Format(domain.DateFormat), lesson.DueHour, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	lesson.CreatedAt = createdAt.Time
	lesson.UpdatedAt = updatedAt.Time

	return lesson, nil
}

// GetByID получает урок по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	lesson, err := scanLesson(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lesson: %w", ErrScanRow, err)
	}

	return lesson, nil
}

// FindOccupying ищет незавершённый урок, занимающий слот преподавателя
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) FindOccupying(ctx context.Context, teacherID int64, date time.Time, hour int) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{
			"teacher_id": teacherID,
			"due_date":   domain.DateOnly(date),
			"due_hour":   hour,
		}).
		Where(squirrel.NotEq{"status": domain.LessonStatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOccupying - build select query: %v", ErrBuildQuery, err)
	}

	lesson, err := scanLesson(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOccupying - scan lesson: %w", ErrScanRow, err)
	}

	return lesson, nil
}

// List получает уроки по фильтру, отсортированные по дате и часу
func (r *Repository) List(ctx context.Context, filter domain.LessonsFilter) ([]*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		OrderBy("due_date ASC", "due_hour ASC")

	if filter.StudentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}
	if filter.TeacherID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"teacher_id": *filter.TeacherID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"due_date": domain.DateOnly(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"due_date": domain.DateOnly(*filter.EndDate)})
	}
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.LessonStatusCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	lessons := make([]*domain.Lesson, 0)
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return lessons, nil
}

// UpdateDetails обновляет заметку, отметку о проведении и статус урока
func (r *Repository) UpdateDetails(ctx context.Context, lesson *domain.Lesson) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lessons").
		Set("note", noteValue(lesson.Note)).
		Set("is_done", lesson.IsDone).
		Set("status", lesson.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lesson.ID}).
		Where(squirrel.NotEq{"status": domain.LessonStatusCancelled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLessonNotFound
	}

	return nil
}

// Cancel переводит урок в статус cancelled
// Отменить можно только предложенный или активный урок, повторная отмена возвращает ErrCannotCancel
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lessons").
		Set("status", domain.LessonStatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": []domain.LessonStatus{domain.LessonStatusProposed, domain.LessonStatusActive},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// noteValue колонка note NOT NULL: отсутствие заметки хранится пустой строкой
func noteValue(note *string) string {
	if note == nil {
		return ""
	}
	return *note
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLesson(row rowScanner) (*domain.Lesson, error) {
	var lesson domain.Lesson
	var note sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&lesson.ID,
		&lesson.StudentID,
		&lesson.TeacherID,
		&lesson.Location,
		&lesson.DueDate,
		&lesson.DueHour,
		&lesson.IsDone,
		&lesson.IsGrand,
		&note,
		&lesson.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if note.Valid && note.String != "" {
		lesson.Note = &note.String
	}
	lesson.DueDate = domain.DateOnly(lesson.DueDate)
	lesson.CreatedAt = createdAt.Time
	lesson.UpdatedAt = updatedAt.Time

	return &lesson, nil
}

// isSlotConflict нарушение уникальности слота или конфликт сериализуемой транзакции
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgUniqueViolation || pqErr.Code == pgSerializationFailure
}

// IsConflictError true, если ошибка означает проигранную гонку за слот:
// занятый слот или откат сериализуемой транзакции (в том числе при commit)
func IsConflictError(err error) bool {
	return errors.Is(err, ErrSlotTaken) || isSlotConflict(err)
}
