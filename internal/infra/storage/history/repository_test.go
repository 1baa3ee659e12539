package history

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LessonService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO lesson_modify_history .* RETURNING id, modified_at`).
		WithArgs(int64(1), int64(2), int64(7), sqlmock.AnyArg(), 10, domain.ModifyTypeCreate, domain.ActorTypeStudent, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "modified_at"}).AddRow(int64(100), now))

	entry, err := repo.Create(context.Background(), &domain.LessonModifyHistory{
		StudentID:       ptr.Ptr[int64](1),
		TeacherID:       2,
		LessonID:        7,
		SnapshotDueDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		SnapshotDueHour: 10,
		ModifyType:      domain.ModifyTypeCreate,
		CreatedByType:   domain.ActorTypeStudent,
		CreatedByID:     1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), entry.ID)
	assert.Equal(t, now, entry.ModifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppliesFiltersAndOrder(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	filter := domain.HistoryFilter{
		TeacherID:     ptr.Ptr[int64](2),
		Type:          ptr.Ptr(domain.ModifyTypeCancel),
		CreatedByType: ptr.Ptr(domain.ActorTypeTeacher),
	}

	mock.ExpectQuery(`FROM lesson_modify_history WHERE teacher_id = \$1 AND modify_type = \$2 AND created_by_type = \$3 ORDER BY modified_at DESC, id DESC LIMIT 10 OFFSET 20`).
		WithArgs(int64(2), domain.ModifyTypeCancel, domain.ActorTypeTeacher).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "student_id", "teacher_id", "lesson_id", "snapshot_due_date", "snapshot_due_hour",
			"modify_type", "created_by_type", "created_by_id", "modified_at",
		}).
			AddRow(int64(2), int64(1), int64(2), int64(7), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), 10, "CANCEL", "TEACHER", int64(2), now).
			AddRow(int64(1), nil, int64(2), int64(8), time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), 11, "CANCEL", "TEACHER", int64(2), now.Add(-time.Hour)))

	entries, err := repo.List(context.Background(), filter, 10, 20)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), *entries[0].StudentID)
	assert.Nil(t, entries[1].StudentID)
	assert.Equal(t, domain.ModifyTypeCancel, entries[0].ModifyType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM lesson_modify_history WHERE student_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background(), domain.HistoryFilter{StudentID: ptr.Ptr[int64](1)})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
