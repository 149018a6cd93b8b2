package services

import (
	"context"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

// Authenticator signs users in and out.
type Authenticator interface {
	// Authenticate checks an email/password pair and opens a session.
	Authenticate(ctx context.Context, email, password string) (*domain.Session, error)

	// AuthenticateGoogle opens a session for the owner of a verified Google ID token.
	AuthenticateGoogle(ctx context.Context, idToken string) (*domain.Session, error)

	// Logout revokes the session until its token would have expired.
	Logout(ctx context.Context, session domain.Session) error

	// GoogleEnabled reports whether Google sign-in is configured.
	GoogleEnabled() bool
}

// SessionResolver turns a presented token back into a live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// UserRegistrar creates users.
type UserRegistrar interface {
	// Register creates a user. actor is nil for anonymous self-registration.
	Register(ctx context.Context, email, password string, role domain.Role, actor *domain.User) (*domain.User, error)
}

// AuthSvcFacade combines all authentication interfaces.
type AuthSvcFacade interface {
	Authenticator
	SessionResolver
	UserRegistrar
}
