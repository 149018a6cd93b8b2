package middleware

import (
	"context"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the resolved session.
const sessionKey = contextKey("session")

// WithSession stores session in ctx.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromCtx returns the resolved session, if any.
func SessionFromCtx(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok && s != nil
}

// GetSessionFromContext retrieves the resolved session from the Gin request.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	return SessionFromCtx(c.Request.Context())
}

// GetUserFromContext retrieves the signed-in user from the Gin request.
func GetUserFromContext(c *gin.Context) (domain.User, bool) {
	s, ok := GetSessionFromContext(c)
	if !ok {
		return domain.User{}, false
	}
	return s.User, true
}
