package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/SscSPs/tax_compliance_app/internal/middleware"
	"github.com/SscSPs/tax_compliance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const msgInvalidLogin = "Invalid email or password."

// authHandler handles sign-in, sign-out and registration.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cookieName  string
	secure      bool
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: as,
		cookieName:  cfg.SessionCookieName,
		secure:      cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade) error {
	h := newAuthHandler(authService, cfg)

	ipLimiter, err := middleware.NewIPRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limiter: %w", err)
	}
	limit := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.GET("/login", h.loginForm)
		auth.POST("/login", limit, h.login)
		auth.POST("/google", limit, h.loginGoogle)
		auth.POST("/register", h.register)
		auth.GET("/logout", h.logout)
		auth.GET("/me", middleware.RequireLogin(), h.me)
	}
	return nil
}

func (h *authHandler) setSessionCookie(c *gin.Context, s *domain.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, s.Token, int(s.Remaining(time.Now()).Seconds()), "/", "", h.secure, true)
}

func (h *authHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
}

// loginForm godoc
// @Summary Login form
// @Description Describes the login form and returns pending flash messages.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.FormResponse
// @Router /auth/login [get]
func (h *authHandler) loginForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormResponse{
		Title:  "Login",
		Action: "/auth/login",
		Method: "POST",
		Fields: []dto.FormField{
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
		Flashes: middleware.PopFlashes(c),
	})
}

// login godoc
// @Summary User login
// @Description Authenticates a user, sets the session cookie and returns the session token.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		middleware.AddFlash(c, "danger", msgInvalidLogin)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password are required"})
		return
	}

	session, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			middleware.AddFlash(c, "danger", msgInvalidLogin)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgInvalidLogin})
			return
		}
		respondError(c, err, "Login failed")
		return
	}

	h.setSessionCookie(c, session)
	logger.Info("User logged in", slog.String("user_id", session.User.UserID))
	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}

// loginGoogle godoc
// @Summary Google sign-in
// @Description Exchanges a Google ID token for a session. Only existing users may sign in.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Google sign-in disabled"
// @Router /auth/google [post]
func (h *authHandler) loginGoogle(c *gin.Context) {
	if !h.authService.GoogleEnabled() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Google sign-in is not enabled"})
		return
	}
	var req dto.GoogleLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "idToken is required"})
		return
	}

	session, err := h.authService.AuthenticateGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err, "Google sign-in failed")
		return
	}
	h.setSessionCookie(c, session)
	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}

// register godoc
// @Summary Register a user
// @Description Creates a user. Creating an ADMIN requires an ADMIN session.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param user body dto.RegisterRequest true "New user"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User already exists"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	var actor *domain.User
	if u, ok := middleware.GetUserFromContext(c); ok {
		actor = &u
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, domain.Role(strings.TrimSpace(req.Role)), actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "User already exists"})
			return
		}
		respondError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// logout godoc
// @Summary Log out
// @Description Revokes the current session and clears the cookie.
// @Tags auth
// @Success 302
// @Router /auth/logout [get]
func (h *authHandler) logout(c *gin.Context) {
	if session, ok := middleware.GetSessionFromContext(c); ok {
		if err := h.authService.Logout(c.Request.Context(), *session); err != nil {
			respondError(c, err, "Failed to log out")
			return
		}
	}
	h.clearSessionCookie(c)

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}
	middleware.AddFlash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user, _ := middleware.GetUserFromContext(c)
	c.JSON(http.StatusOK, dto.ToUserResponse(&user))
}
