package dto

import (
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

// LoginRequest is accepted as a form post or as JSON.
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// RegisterRequest creates a user. Role defaults to USER.
type RegisterRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role"`
}

// GoogleLoginRequest carries a Google ID token obtained by the browser.
type GoogleLoginRequest struct {
	IDToken string `form:"id_token" json:"idToken" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToLoginResponse converts an issued session.
func ToLoginResponse(s *domain.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      ToUserResponse(&s.User),
	}
}
