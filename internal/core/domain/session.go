package domain

import "time"

// Session is an authenticated browser or API session bound to one user.
type Session struct {
	ID        string    `json:"-"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

// Remaining is the lifetime left at now, never negative.
func (s Session) Remaining(now time.Time) time.Duration {
	d := s.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
