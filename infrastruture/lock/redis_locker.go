package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultExpiry = 8 * time.Second
	defaultTries  = 8
)

var ErrLockLost = errors.New("lock expired before release")

// RedisLocker hands out redsync mutexes so edits to one key are serialized
// across every editor instance sharing the Redis server.
type RedisLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
	tries  int
}

// NewRedisLocker creates a RedisLocker. Non-positive tries fall back to the default.
func NewRedisLocker(client *redis.Client, tries int) *RedisLocker {
	if tries <= 0 {
		tries = defaultTries
	}

	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		expiry: defaultExpiry,
		tries:  tries,
	}
}

// Lock acquires the mutex for key, retrying until the tries run out or ctx ends.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func() error, error) {
	mutex := l.locker.NewMutex(key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(l.tries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() error {
		ok, err := mutex.Unlock()
		if err != nil {
			return err
		}
		if !ok {
			return ErrLockLost
		}
		return nil
	}, nil
}
