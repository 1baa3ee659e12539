package slotlock

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить за отведённое время
	ErrLockTimeout = errors.New("slotlock: timed out waiting for lock")
)

// Locker взаимное исключение по ключу
// release всегда не nil при err == nil и должен быть вызван ровно один раз
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// SlotKey ключ блокировки слота преподавателя (teacherID, дата, час)
func SlotKey(teacherID int64, date time.Time, hour int) string {
	return fmt.Sprintf("slot:%d:%s:%02d", teacherID, date.Format("2006-01-02"), hour)
}

// AcquireAll получает блокировки по всем ключам в отсортированном порядке,
// чтобы два запроса с пересекающимися наборами ключей не взаимоблокировались
func AcquireAll(ctx context.Context, locker Locker, keys ...string) (func(), error) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	releases := make([]func(), 0, len(sorted))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, key := range sorted {
		release, err := locker.Acquire(ctx, key)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}

	return releaseAll, nil
}

// LocalLocker блокировки в памяти процесса (для одного инстанса и тестов)
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*localSlot
	wait  time.Duration
}

type localSlot struct {
	sem  chan struct{}
	refs int
}

// NewLocalLocker создает in-process locker; wait <= 0 означает ожидание до отмены контекста
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		slots: make(map[string]*localSlot),
		wait:  wait,
	}
}

// Acquire блокирует ключ, ожидая его освобождения
func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(), error) {
	slot := l.ref(key)

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	select {
	case slot.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key)
		return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-slot.sem
			l.unref(key)
		})
	}, nil
}

func (l *LocalLocker) ref(key string) *localSlot {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = &localSlot{sem: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	return slot
}

func (l *LocalLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		return
	}
	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, key)
	}
}
