package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/metrics"
	"github.com/SscSPs/tax_compliance_app/internal/platform/config"
	"github.com/SscSPs/tax_compliance_app/internal/utils"
	"github.com/SscSPs/tax_compliance_app/internal/utils/validation"
	"github.com/google/uuid"
	"google.golang.org/api/idtoken"
)

// IDTokenValidator verifies a Google ID token for an audience.
type IDTokenValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

type googleIDTokenValidator struct{}

func (googleIDTokenValidator) Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, idToken, audience)
}

// authService issues, resolves and revokes sessions and registers users.
type authService struct {
	BaseService
	cfg       *config.Config
	userRepo  portsrepo.UserRepositoryFacade
	sessions  portsrepo.SessionStore
	validator IDTokenValidator
	now       func() time.Time
}

// AuthOption configures the auth service.
type AuthOption func(*authService)

// WithIDTokenValidator replaces the Google ID token validator.
func WithIDTokenValidator(v IDTokenValidator) AuthOption {
	return func(s *authService) {
		s.validator = v
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) AuthOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates the session manager and credential store front.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, sessions portsrepo.SessionStore, options ...AuthOption) portssvc.AuthSvcFacade {
	svc := &authService{
		cfg:       cfg,
		userRepo:  userRepo,
		sessions:  sessions,
		validator: googleIDTokenValidator{},
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) GoogleEnabled() bool {
	return s.cfg.GoogleClientID != ""
}

var dummyPasswordHash = sync.OnceValue(func() string {
	hash, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		panic(fmt.Sprintf("failed to hash placeholder password: %v", err))
	}
	return hash
})

func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same bcrypt work as a wrong password so timing does not reveal accounts.
			utils.CheckPasswordHash(password, dummyPasswordHash())
			return nil, s.rejectLogin(ctx, "password", "unknown email")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, s.rejectLogin(ctx, "password", "wrong password")
	}
	return s.issue(ctx, user, "password")
}

func (s *authService) AuthenticateGoogle(ctx context.Context, idToken string) (*domain.Session, error) {
	if !s.GoogleEnabled() {
		return nil, fmt.Errorf("google sign-in is not configured: %w", apperrors.ErrNotFound)
	}
	payload, err := s.validator.Validate(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogDebug(ctx, "Google ID token rejected", slog.String("error", err.Error()))
		return nil, s.rejectLogin(ctx, "google", "invalid id token")
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return nil, s.rejectLogin(ctx, "google", "email not verified")
	}

	// Existing users only; accounts are provisioned by registration.
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, s.rejectLogin(ctx, "google", "no user for google email")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return s.issue(ctx, user, "google")
}

func (s *authService) rejectLogin(ctx context.Context, method, reason string) error {
	metrics.AuthAttempts.WithLabelValues(method, "failure").Inc()
	s.LogInfo(ctx, "Login rejected", slog.String("method", method), slog.String("reason", reason))
	return apperrors.ErrInvalidCredentials
}

func (s *authService) issue(ctx context.Context, user *domain.User, method string) (*domain.Session, error) {
	sessionID, err := utils.NewSessionID()
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := utils.GenerateJWT(user.UserID, sessionID, user.Email, string(user.Role),
		s.cfg.JWTSecret, s.cfg.SessionTTL, s.cfg.JWTIssuer, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("user_id", user.UserID))
		return nil, err
	}

	metrics.AuthAttempts.WithLabelValues(method, "success").Inc()
	s.Audit(ctx, "LOGIN", "method="+method, user.Email)
	return &domain.Session{ID: sessionID, Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

func (s *authService) Logout(ctx context.Context, session domain.Session) error {
	remaining := session.Remaining(s.now())
	if session.ID == "" || remaining == 0 {
		return nil
	}
	if err := s.sessions.Revoke(ctx, session.ID, remaining); err != nil {
		s.LogError(ctx, err, "Failed to revoke session")
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.Audit(ctx, "LOGOUT", "", session.User.Email)
	return nil
}

func (s *authService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthenticated, err)
	}
	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: session revoked", apperrors.ErrUnauthenticated)
	}

	// The stored role wins over the one in the token.
	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", apperrors.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return &domain.Session{
		ID:        claims.ID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      *user,
	}, nil
}

type registration struct {
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8"`
}

func (s *authService) Register(ctx context.Context, email, password string, role domain.Role, actor *domain.User) (*domain.User, error) {
	reg := registration{Email: strings.TrimSpace(email), Password: password}
	if err := validation.Struct(reg); err != nil {
		return nil, err
	}

	if role == domain.RoleNone {
		role = domain.RoleUser
	}
	parsed, ok := domain.ParseRole(string(role))
	if !ok {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	if parsed != domain.RoleUser && (actor == nil || actor.Role != domain.RoleAdmin) {
		return nil, fmt.Errorf("only an admin may assign role %s: %w", parsed, apperrors.ErrForbidden)
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, reg.Email); err == nil {
		return nil, fmt.Errorf("user %q already exists: %w", reg.Email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         parsed,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	by := ""
	if actor != nil {
		by = actor.Email
	}
	s.Audit(ctx, "REGISTER_USER", fmt.Sprintf("email=%s role=%s", user.Email, user.Role), by)
	return &user, nil
}
