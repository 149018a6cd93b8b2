package middleware

import (
	"log/slog"
	"strings"

	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionToken extracts the session token from the Authorization header or,
// failing that, from the session cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// SessionMiddleware resolves the caller's session, when one is presented,
// and stores it with an enriched logger in the request context. Anonymous
// and invalid sessions pass through; the role gate decides what they reach.
func SessionMiddleware(resolver portssvc.SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx)

		session, err := resolver.Resolve(ctx, token)
		if err != nil {
			logger.Info("Ignoring invalid session", slog.String("error", err.Error()))
			c.Next()
			return
		}

		enriched := logger.With(
			slog.String("user_id", session.User.UserID),
			slog.String("user", session.User.Email),
			slog.String("role", string(session.User.Role)),
		)
		ctx = WithSession(ctx, session)
		ctx = WithLogger(ctx, enriched)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
