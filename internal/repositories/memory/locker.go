package memory

import (
	"context"
	"sync"
	"time"

	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
)

const lockPollInterval = 25 * time.Millisecond

// Locker is an in-process keyed lock with expiry. Obtain waits up to
// the configured wait for a held key to be released.
type Locker struct {
	mu    sync.Mutex
	held  map[string]lease
	wait  time.Duration
	now   func() time.Time
	token uint64
}

type lease struct {
	token   uint64
	expires time.Time
}

var _ portsrepo.Locker = (*Locker)(nil)

func NewLocker(wait time.Duration) *Locker {
	return &Locker{held: make(map[string]lease), wait: wait, now: time.Now}
}

func (l *Locker) tryObtain(key string, ttl time.Duration) (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if cur, ok := l.held[key]; ok && cur.expires.After(now) {
		return 0, false
	}
	l.token++
	l.held[key] = lease{token: l.token, expires: now.Add(ttl)}
	return l.token, true
}

func (l *Locker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	deadline := time.Now().Add(l.wait)
	for {
		if token, ok := l.tryObtain(key, ttl); ok {
			return func(context.Context) error {
				l.mu.Lock()
				defer l.mu.Unlock()
				if cur, ok := l.held[key]; ok && cur.token == token {
					delete(l.held, key)
				}
				return nil
			}, nil
		}
		if !time.Now().Before(deadline) {
			return nil, portsrepo.ErrLockNotObtained
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockPollInterval):
		}
	}
}
