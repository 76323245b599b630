package adapter

import (
	"context"
	"fmt"
	"time"

	"lingua-progress/internal/cache"
	"lingua-progress/internal/domain"
	"lingua-progress/internal/util"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds our token.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

const lockRetryInterval = 50 * time.Millisecond

// RedisUserLocker implements domain.UserLocker with SET NX PX.
type RedisUserLocker struct {
	client   redis.Cmdable
	ttl      time.Duration
	wait     time.Duration
	newToken func() string
}

// NewRedisUserLocker creates a locker whose locks expire after ttl. Lock
// keeps retrying for up to wait before giving up with domain.ErrUserBusy.
func NewRedisUserLocker(client redis.Cmdable, ttl, wait time.Duration) *RedisUserLocker {
	return &RedisUserLocker{
		client:   client,
		ttl:      ttl,
		wait:     wait,
		newToken: util.NewULID,
	}
}

// Lock acquires the per-user lock.
func (l *RedisUserLocker) Lock(ctx context.Context, userID int64) (func(ctx context.Context) error, error) {
	key := cache.UserLockKey(userID)
	token := l.newToken()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock for user %d: %w", userID, err)
		}
		if ok {
			break
		}
		if !time.Now().Before(deadline) {
			return nil, domain.ErrUserBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	unlock := func(ctx context.Context) error {
		if err := l.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock for user %d: %w", userID, err)
		}
		return nil
	}
	return unlock, nil
}

var _ domain.UserLocker = (*RedisUserLocker)(nil)
