package create_lesson

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	lessonRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/lesson"
	"github.com/m04kA/SMC-LessonService/internal/integrations/userservice"
	"github.com/m04kA/SMC-LessonService/internal/service/booking"
	"github.com/m04kA/SMC-LessonService/pkg/ptr"
	"github.com/m04kA/SMC-LessonService/pkg/slotlock"
	"github.com/m04kA/SMC-LessonService/pkg/txmanager"
)

// lessonStore хранилище уроков в памяти с той же уникальностью слота, что и в БД
type lessonStore struct {
	mu      sync.Mutex
	lessons []*domain.Lesson
	creates int
	findErr error
}

func (s *lessonStore) Create(_ context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creates++
	for _, l := range s.lessons {
		if l.IsOccupying() && l.TeacherID == lesson.TeacherID && l.DueDate.Equal(lesson.DueDate) && l.DueHour == lesson.DueHour {
			return nil, lessonRepo.ErrSlotTaken
		}
	}
	created := *lesson
	created.ID = int64(len(s.lessons) + 1)
	s.lessons = append(s.lessons, &created)
	return &created, nil
}

func (s *lessonStore) FindOccupying(_ context.Context, teacherID int64, date time.Time, hour int) (*domain.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, l := range s.lessons {
		if l.IsOccupying() && l.TeacherID == teacherID && l.DueDate.Equal(domain.DateOnly(date)) && l.DueHour == hour {
			return l, nil
		}
	}
	return nil, lessonRepo.ErrLessonNotFound
}

type historyStore struct {
	mu      sync.Mutex
	entries []*domain.LessonModifyHistory
	err     error
}

func (h *historyStore) Record(_ context.Context, entry *domain.LessonModifyHistory) (*domain.LessonModifyHistory, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return nil, h.err
	}
	entry.ID = int64(len(h.entries) + 1)
	h.entries = append(h.entries, entry)
	return entry, nil
}

type stubResolver struct {
	result domain.Availability
}

func (s *stubResolver) Resolve(context.Context, int64, time.Time, int) (domain.Availability, error) {
	return s.result, nil
}

type stubCoverage struct {
	covered bool
}

func (s *stubCoverage) IsCovered(context.Context, int64, time.Time) (bool, error) {
	return s.covered, nil
}

type stubUsers struct {
	inactive bool
}

func (s *stubUsers) GetStudent(_ context.Context, id int64) (*userservice.Student, error) {
	if id == 404 {
		return nil, userservice.ErrNotFound
	}
	return &userservice.Student{ID: id, IsActive: !s.inactive}, nil
}

func (s *stubUsers) GetTeacher(_ context.Context, id int64) (*userservice.Teacher, error) {
	if id == 404 {
		return nil, userservice.ErrNotFound
	}
	return &userservice.Teacher{ID: id}, nil
}

// inlineTx выполняет функцию без транзакции
type inlineTx struct {
	err error
}

func (t *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return t.err
}

// noLock не блокирует ничего, остается только уникальность в хранилище
type noLock struct{}

func (noLock) Acquire(context.Context, string) (func(), error) { return func() {}, nil }

type timeoutLock struct{}

func (timeoutLock) Acquire(context.Context, string) (func(), error) { return nil, slotlock.ErrLockTimeout }

type recordedMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *recordedMetrics) RecordBookingDecision(_, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = map[string]int{}
	}
	m.outcomes[outcome]++
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	lessons  *lessonStore
	history  *historyStore
	metrics  *recordedMetrics
	resolver *stubResolver
	coverage *stubCoverage
	users    *stubUsers
	tx       *inlineTx
}

func newFixture(locker SlotLocker) *fixture {
	f := &fixture{
		lessons:  &lessonStore{},
		history:  &historyStore{},
		metrics:  &recordedMetrics{},
		resolver: &stubResolver{result: domain.Available()},
		coverage: &stubCoverage{covered: true},
		users:    &stubUsers{},
		tx:       &inlineTx{},
	}
	validator := booking.NewValidator(f.resolver, f.coverage, f.lessons, nopLogger{})
	f.uc = NewUseCase(f.lessons, validator, f.history, f.users, f.tx, locker, f.metrics, time.UTC, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func studentRequest() *Request {
	return &Request{
		Actor:     domain.Actor{StudentID: ptr.Ptr(int64(1))},
		StudentID: 1,
		TeacherID: 2,
		Location:  "Room 1",
		Date:      monday,
		Hour:      11,
	}
}

func TestCreateLessonSuccess(t *testing.T) {
	f := newFixture(slotlock.NewLocalLocker(time.Second))

	resp, err := f.uc.Execute(context.Background(), studentRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.LessonStatusActive, resp.Lesson.Status)
	assert.Equal(t, monday, resp.Lesson.DueDate)
	require.Len(t, f.history.entries, 1)

	entry := f.history.entries[0]
	assert.Equal(t, domain.ModifyTypeCreate, entry.ModifyType)
	assert.Equal(t, domain.ActorTypeStudent, entry.CreatedByType)
	assert.Equal(t, int64(1), entry.CreatedByID)
	assert.Equal(t, resp.Lesson.ID, entry.LessonID)
	assert.Equal(t, 11, entry.SnapshotDueHour)
	assert.Equal(t, 1, f.metrics.outcomes[domain.OutcomeOK])
}

func TestCreateLessonByAdminIsAttributedToTeacherAccount(t *testing.T) {
	f := newFixture(slotlock.NewLocalLocker(time.Second))
	req := studentRequest()
	req.Actor = domain.Actor{IsAdmin: true, TeacherID: ptr.Ptr(int64(9))}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ActorTypeTeacher, f.history.entries[0].CreatedByType)
	assert.Equal(t, int64(9), f.history.entries[0].CreatedByID)
}

func TestCreateLessonWithoutPaymentPersistsNothing(t *testing.T) {
	f := newFixture(slotlock.NewLocalLocker(time.Second))
	f.coverage.covered = false

	_, err := f.uc.Execute(context.Background(), studentRequest())
	assert.ErrorIs(t, err, domain.ErrPaymentNotActive)
	assert.Zero(t, f.lessons.creates)
	assert.Empty(t, f.history.entries)
	assert.Equal(t, 1, f.metrics.outcomes[domain.OutcomePaymentNotActive])
}

func TestCreateLessonUnavailableSlot(t *testing.T) {
	f := newFixture(slotlock.NewLocalLocker(time.Second))
	f.resolver.result = domain.Unavailable(domain.ReasonOutsideOperatingHours)

	_, err := f.uc.Execute(context.Background(), studentRequest())

	var unavailable *domain.SlotUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, domain.ReasonOutsideOperatingHours, unavailable.Reason)
	assert.Zero(t, f.lessons.creates)
}

func TestCreateLessonRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *fixture, r *Request)
		wantErr error
	}{
		{name: "hour out of range", mutate: func(_ *fixture, r *Request) { r.Hour = 24 }, wantErr: ErrInvalidInput},
		{name: "no location", mutate: func(_ *fixture, r *Request) { r.Location = " " }, wantErr: ErrInvalidInput},
		{name: "date in past", mutate: func(_ *fixture, r *Request) { r.Date = monday.AddDate(0, 0, -3) }, wantErr: ErrDateInPast},
		{name: "booking for another student", mutate: func(_ *fixture, r *Request) { r.StudentID = 5 }, wantErr: domain.ErrForbidden},
		{name: "unknown teacher", mutate: func(_ *fixture, r *Request) {
			r.Actor = domain.Actor{IsAdmin: true, TeacherID: ptr.Ptr(int64(9))}
			r.TeacherID = 404
		}, wantErr: domain.ErrNotFound},
		{name: "inactive student", mutate: func(f *fixture, _ *Request) { f.users.inactive = true }, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(slotlock.NewLocalLocker(time.Second))
			req := studentRequest()
			tt.mutate(f, req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.lessons.creates)
		})
	}
}

func TestCreateLessonLockTimeoutIsConflict(t *testing.T) {
	f := newFixture(timeoutLock{})

	_, err := f.uc.Execute(context.Background(), studentRequest())
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestCreateLessonCommitSerializationFailureIsConflict(t *testing.T) {
	f := newFixture(noLock{})
	f.tx.err = fmt.Errorf("%w: %w", txmanager.ErrCommitTx, &pq.Error{Code: "40001"})

	_, err := f.uc.Execute(context.Background(), studentRequest())
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
	assert.Equal(t, 1, f.metrics.outcomes[domain.OutcomeSlotConflict])
}

func TestCreateLessonSerializationFailureInsideTransactionIsConflict(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "occupancy check",
			setup: func(f *fixture) {
				f.lessons.findErr = fmt.Errorf("%w: FindOccupying - scan lesson: %w", lessonRepo.ErrScanRow, serialization)
			},
		},
		{
			name: "history record",
			setup: func(f *fixture) {
				f.history.err = fmt.Errorf("history.service: Record - repository error: %w", serialization)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(noLock{})
			tt.setup(f)

			_, err := f.uc.Execute(context.Background(), studentRequest())

			assert.ErrorIs(t, err, domain.ErrSlotConflict)
			assert.Empty(t, f.history.entries)
		})
	}
}

func TestConcurrentCreatesOnSameSlot(t *testing.T) {
	lockers := map[string]SlotLocker{
		"with slot lock":          slotlock.NewLocalLocker(5 * time.Second),
		"storage uniqueness only": noLock{},
	}

	for name, locker := range lockers {
		t.Run(name, func(t *testing.T) {
			const n = 20
			f := newFixture(locker)

			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				conflicts int
			)

			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := f.uc.Execute(context.Background(), studentRequest())

					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes++
					case errors.Is(err, domain.ErrSlotConflict):
						conflicts++
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, 1, successes)
			assert.Equal(t, n-1, conflicts)
			assert.Len(t, f.lessons.lessons, 1)
			assert.Len(t, f.history.entries, 1)
		})
	}
}
