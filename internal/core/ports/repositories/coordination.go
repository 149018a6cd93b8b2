package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrLockNotObtained is returned when another holder owns the lock.
var ErrLockNotObtained = errors.New("lock not obtained")

// SessionStore remembers revoked session ids until their tokens expire.
type SessionStore interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// Locker hands out short-lived named locks.
type Locker interface {
	// Obtain returns a release func, or ErrLockNotObtained.
	Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error)
}
