package history

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	"github.com/m04kA/SMC-LessonService/pkg/ptr"
)

type stubRepo struct {
	created    []*domain.LessonModifyHistory
	lastFilter domain.HistoryFilter
	lastLimit  int
	lastOffset int
	items      []*domain.LessonModifyHistory
	total      int
	err        error
}

func (s *stubRepo) Create(_ context.Context, entry *domain.LessonModifyHistory) (*domain.LessonModifyHistory, error) {
	if s.err != nil {
		return nil, s.err
	}
	entry.ID = int64(len(s.created) + 1)
	entry.ModifiedAt = time.Now()
	s.created = append(s.created, entry)
	return entry, nil
}

func (s *stubRepo) List(_ context.Context, filter domain.HistoryFilter, limit, offset int) ([]*domain.LessonModifyHistory, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFilter, s.lastLimit, s.lastOffset = filter, limit, offset
	return s.items, nil
}

func (s *stubRepo) Count(context.Context, domain.HistoryFilter) (int, error) {
	return s.total, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validEntry() *domain.LessonModifyHistory {
	return &domain.LessonModifyHistory{
		StudentID:       ptr.Ptr(int64(1)),
		TeacherID:       2,
		LessonID:        10,
		SnapshotDueDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		SnapshotDueHour: 11,
		ModifyType:      domain.ModifyTypeCreate,
		CreatedByType:   domain.ActorTypeStudent,
		CreatedByID:     1,
	}
}

func TestRecord(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})

	created, err := svc.Record(context.Background(), validEntry())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Len(t, repo.created, 1)
}

func TestRecordRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *domain.LessonModifyHistory)
	}{
		{name: "unknown type", mutate: func(e *domain.LessonModifyHistory) { e.ModifyType = "DELETE" }},
		{name: "unknown author type", mutate: func(e *domain.LessonModifyHistory) { e.CreatedByType = "ADMIN" }},
		{name: "no author", mutate: func(e *domain.LessonModifyHistory) { e.CreatedByID = 0 }},
		{name: "no lesson", mutate: func(e *domain.LessonModifyHistory) { e.LessonID = 0 }},
		{name: "bad hour", mutate: func(e *domain.LessonModifyHistory) { e.SnapshotDueHour = 24 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := NewService(repo, nopLogger{})

			entry := validEntry()
			tt.mutate(entry)

			_, err := svc.Record(context.Background(), entry)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.created)
		})
	}
}

func TestRecordRepositoryError(t *testing.T) {
	svc := NewService(&stubRepo{err: errors.New("tx aborted")}, nopLogger{})

	_, err := svc.Record(context.Background(), validEntry())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestQueryDefaultsAndOffset(t *testing.T) {
	repo := &stubRepo{total: 45}
	svc := NewService(repo, nopLogger{})
	admin := domain.Actor{IsAdmin: true, TeacherID: ptr.Ptr(int64(9))}

	page, err := svc.Query(context.Background(), admin, domain.HistoryFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHistoryPage, page.Page)
	assert.Equal(t, domain.DefaultHistoryLimit, page.Limit)
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 0, repo.lastOffset)

	_, err = svc.Query(context.Background(), admin, domain.HistoryFilter{}, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, 20, repo.lastOffset)
	assert.Nil(t, repo.lastFilter.TeacherID)
}

func TestQueryRejectsPageOutOfRange(t *testing.T) {
	admin := domain.Actor{IsAdmin: true, TeacherID: ptr.Ptr(int64(9))}

	for _, page := range []int{-1, domain.MaxHistoryPage + 1, math.MaxInt} {
		repo := &stubRepo{}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Query(context.Background(), admin, domain.HistoryFilter{}, page, domain.MaxHistoryLimit)
		assert.ErrorIs(t, err, ErrInvalidInput, "page %d", page)
		assert.Zero(t, repo.lastLimit)
	}

	repo := &stubRepo{}
	svc := NewService(repo, nopLogger{})
	_, err := svc.Query(context.Background(), admin, domain.HistoryFilter{}, domain.MaxHistoryPage, domain.MaxHistoryLimit)
	require.NoError(t, err)
	assert.Equal(t, (domain.MaxHistoryPage-1)*domain.MaxHistoryLimit, repo.lastOffset)
}

func TestQueryScopesByActor(t *testing.T) {
	t.Run("teacher sees own lessons", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Query(context.Background(), domain.Actor{TeacherID: ptr.Ptr(int64(2))}, domain.HistoryFilter{}, 1, 10)
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.TeacherID)
		assert.Equal(t, int64(2), *repo.lastFilter.TeacherID)
	})

	t.Run("student sees own lessons", func(t *testing.T) {
		repo := &stubRepo{}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Query(context.Background(), domain.Actor{StudentID: ptr.Ptr(int64(1))},
			domain.HistoryFilter{TeacherID: ptr.Ptr(int64(2))}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), *repo.lastFilter.StudentID)
		assert.Equal(t, int64(2), *repo.lastFilter.TeacherID)
	})

	t.Run("student asks for another student", func(t *testing.T) {
		svc := NewService(&stubRepo{}, nopLogger{})

		_, err := svc.Query(context.Background(), domain.Actor{StudentID: ptr.Ptr(int64(1))},
			domain.HistoryFilter{StudentID: ptr.Ptr(int64(5))}, 1, 10)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("teacher asks for another teacher", func(t *testing.T) {
		svc := NewService(&stubRepo{}, nopLogger{})

		_, err := svc.Query(context.Background(), domain.Actor{TeacherID: ptr.Ptr(int64(2))},
			domain.HistoryFilter{TeacherID: ptr.Ptr(int64(3))}, 1, 10)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := NewService(&stubRepo{}, nopLogger{})

		_, err := svc.Query(context.Background(), domain.Actor{}, domain.HistoryFilter{}, 1, 10)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestQueryInvalidInput(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})
	admin := domain.Actor{IsAdmin: true, TeacherID: ptr.Ptr(int64(9))}
	badType := domain.ModifyType("MOVE")

	_, err := svc.Query(context.Background(), admin, domain.HistoryFilter{Type: &badType}, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Query(context.Background(), admin, domain.HistoryFilter{}, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Query(context.Background(), admin, domain.HistoryFilter{}, 1, domain.MaxHistoryLimit+1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
