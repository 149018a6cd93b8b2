package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const lockRetryInterval = 100 * time.Millisecond

// Locker hands out distributed locks so concurrent instances do not
// export the same ledger at once.
type Locker struct {
	locker *redislock.Client
	wait   time.Duration
}

var _ portsrepo.Locker = (*Locker)(nil)

func NewLocker(client redis.UniversalClient, wait time.Duration) *Locker {
	return &Locker{locker: redislock.New(client), wait: wait}
}

func (l *Locker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	retries := int(l.wait / lockRetryInterval)
	opts := &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(lockRetryInterval), retries),
	}
	lock, err := l.locker.Obtain(ctx, "lock:"+key, ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, portsrepo.ErrLockNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, nil
}
