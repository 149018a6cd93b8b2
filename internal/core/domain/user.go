package domain

import "time"

// User is a staff member who can sign in.
type User struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasRole reports whether the user passes the role gate for required.
func (u User) HasRole(required Role) bool {
	return Authorize(u.Role, required)
}
