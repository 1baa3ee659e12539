package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript удаляет ключ, только если он всё ещё принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const defaultRetryInterval = 25 * time.Millisecond

// RedisLocker распределённая блокировка слота между инстансами сервиса
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
}

// NewRedisLocker подключается к Redis и проверяет соединение
func NewRedisLocker(addr, password string, db int, ttl, wait time.Duration) (*RedisLocker, error) {
	const op = "slotlock.NewRedisLocker"

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
		retry:  defaultRetryInterval,
	}, nil
}

// Acquire ставит ключ через SET NX PX и повторяет попытки, пока не истечёт wait или контекст
func (r *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	const op = "slotlock.RedisLocker.Acquire"

	lockKey := fmt.Sprintf("lock:%s", key)
	token := uuid.NewString()

	waitCtx := ctx
	if r.wait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, r.wait)
		defer cancel()
	}

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(waitCtx, lockKey, token, r.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			return func() {
				// Отпускаем даже если контекст запроса уже отменён
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, r.client, []string{lockKey}, token).Err()
			}, nil
		}

		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, waitCtx.Err())
		case <-ticker.C:
		}
	}
}

// Close закрывает соединение с Redis
func (r *RedisLocker) Close() error {
	return r.client.Close()
}
