package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
	"github.com/m04kA/SMC-LessonService/pkg/ptr"
)

type stubResolver struct {
	result domain.Availability
	err    error
}

func (s *stubResolver) Resolve(context.Context, int64, time.Time, int) (domain.Availability, error) {
	return s.result, s.err
}

type stubCoverage struct {
	covered bool
	calls   int
}

func (s *stubCoverage) IsCovered(context.Context, int64, time.Time) (bool, error) {
	s.calls++
	return s.covered, nil
}

type stubLessons struct {
	occupying *domain.Lesson
	calls     int
}

func (s *stubLessons) FindOccupying(context.Context, int64, time.Time, int) (*domain.Lesson, error) {
	s.calls++
	if s.occupying == nil {
		return nil, lessonRepo.ErrLessonNotFound
	}
	return s.occupying, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func TestCheckCreate(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		v := NewValidator(&stubResolver{result: domain.Available()}, &stubCoverage{covered: true}, &stubLessons{}, nopLogger{})
		assert.NoError(t, v.CheckCreate(context.Background(), 1, 2, monday, 11))
	})

	t.Run("unavailable slot carries reason and skips other checks", func(t *testing.T) {
		coverage := &stubCoverage{covered: true}
		lessons := &stubLessons{}
		v := NewValidator(&stubResolver{result: domain.Unavailable(domain.ReasonBannedSlot)}, coverage, lessons, nopLogger{})

		err := v.CheckCreate(context.Background(), 1, 2, monday, 11)
		require.ErrorIs(t, err, domain.ErrSlotUnavailable)

		var unavailable *domain.SlotUnavailableError
		require.True(t, errors.As(err, &unavailable))
		assert.Equal(t, domain.ReasonBannedSlot, unavailable.Reason)
		assert.Zero(t, coverage.calls)
		assert.Zero(t, lessons.calls)
	})

	t.Run("no payment", func(t *testing.T) {
		lessons := &stubLessons{}
		v := NewValidator(&stubResolver{result: domain.Available()}, &stubCoverage{}, lessons, nopLogger{})

		assert.ErrorIs(t, v.CheckCreate(context.Background(), 1, 2, monday, 11), domain.ErrPaymentNotActive)
		assert.Zero(t, lessons.calls)
	})

	t.Run("slot taken", func(t *testing.T) {
		lessons := &stubLessons{occupying: &domain.Lesson{ID: 5, Status: domain.LessonStatusActive}}
		v := NewValidator(&stubResolver{result: domain.Available()}, &stubCoverage{covered: true}, lessons, nopLogger{})

		assert.ErrorIs(t, v.CheckCreate(context.Background(), 1, 2, monday, 11), domain.ErrSlotConflict)
	})

	t.Run("resolver failure", func(t *testing.T) {
		v := NewValidator(&stubResolver{err: errors.New("db down")}, &stubCoverage{}, &stubLessons{}, nopLogger{})

		assert.ErrorIs(t, v.CheckCreate(context.Background(), 1, 2, monday, 11), ErrInternal)
	})
}

func TestCheckCancel(t *testing.T) {
	v := NewValidator(nil, nil, nil, nopLogger{})
	owner := domain.Actor{StudentID: ptr.Ptr(int64(1))}

	active := &domain.Lesson{ID: 1, StudentID: 1, TeacherID: 2, Status: domain.LessonStatusActive}
	assert.NoError(t, v.CheckCancel(owner, active))
	assert.NoError(t, v.CheckCancel(domain.Actor{IsAdmin: true, TeacherID: ptr.Ptr(int64(9))}, active))
	assert.ErrorIs(t, v.CheckCancel(domain.Actor{TeacherID: ptr.Ptr(int64(2))}, active), domain.ErrForbidden)
	assert.ErrorIs(t, v.CheckCancel(domain.Actor{StudentID: ptr.Ptr(int64(3))}, active), domain.ErrForbidden)

	cancelled := &domain.Lesson{ID: 1, StudentID: 1, TeacherID: 2, Status: domain.LessonStatusCancelled}
	assert.ErrorIs(t, v.CheckCancel(owner, cancelled), domain.ErrNotFound)
	assert.ErrorIs(t, v.CheckCancel(domain.Actor{StudentID: ptr.Ptr(int64(3))}, cancelled), domain.ErrForbidden)

	done := &domain.Lesson{ID: 1, StudentID: 1, TeacherID: 2, Status: domain.LessonStatusDone}
	assert.ErrorIs(t, v.CheckCancel(owner, done), domain.ErrNotFound)
}

func TestCheckUpdate(t *testing.T) {
	v := NewValidator(nil, nil, nil, nopLogger{})
	lesson := &domain.Lesson{ID: 1, StudentID: 1, TeacherID: 2, Status: domain.LessonStatusActive}
	student := domain.Actor{StudentID: ptr.Ptr(int64(1))}
	teacher := domain.Actor{TeacherID: ptr.Ptr(int64(2))}

	assert.NoError(t, v.CheckUpdate(student, lesson, false))
	assert.ErrorIs(t, v.CheckUpdate(student, lesson, true), domain.ErrForbidden)
	assert.NoError(t, v.CheckUpdate(teacher, lesson, true))
	assert.ErrorIs(t, v.CheckUpdate(domain.Actor{StudentID: ptr.Ptr(int64(5))}, lesson, false), domain.ErrForbidden)

	cancelled := &domain.Lesson{ID: 1, StudentID: 1, TeacherID: 2, Status: domain.LessonStatusCancelled}
	assert.ErrorIs(t, v.CheckUpdate(teacher, cancelled, false), domain.ErrNotFound)
}
