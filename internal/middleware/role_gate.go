package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/SscSPs/tax_compliance_app/internal/metrics"
	"github.com/gin-gonic/gin"
)

// LoginPath is where denied browser requests are sent.
const LoginPath = "/auth/login"

const (
	msgLoginRequired = "Please log in to access this page."
	msgAccessDenied  = "Access denied: insufficient permissions."
)

// WantsJSON reports whether the caller is an API client rather than a browser.
func WantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	if strings.EqualFold(c.GetHeader("X-Requested-With"), "XMLHttpRequest") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(c.GetHeader("Authorization")), "bearer ")
}

// RequireLogin only admits requests carrying a live session.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSessionFromContext(c); !ok {
			denyUnauthenticated(c)
			return
		}
		c.Next()
	}
}

// RequireRole admits a request when the session user passes the role gate
// for required. It must run after SessionMiddleware.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			denyUnauthenticated(c)
			return
		}
		if !user.HasRole(required) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role gate denied request",
				slog.String("required_role", string(required)))
			metrics.AccessDenied.WithLabelValues("forbidden").Inc()
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgAccessDenied})
				return
			}
			AddFlash(c, "danger", msgAccessDenied)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func denyUnauthenticated(c *gin.Context) {
	metrics.AccessDenied.WithLabelValues("unauthenticated").Inc()
	if WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgLoginRequired})
		return
	}
	AddFlash(c, "info", msgLoginRequired)
	target := LoginPath
	if c.Request.Method == http.MethodGet {
		target += "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
